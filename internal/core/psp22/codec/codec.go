// Package codec 实现 PSP22 调度桥的参数编解码
//
// 线路格式为 SCALE：
//   - AssetID：u32 小端 4 字节
//   - AccountID：32 字节原始数据
//   - Balance：u128 小端 16 字节
//   - 名称/符号：Vec<u8>（compact 长度前缀）
//   - 精度：单字节
//
// 解码是严格的：缓冲区不足或存在多余字节都视为失败。
package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/spacemeshos/go-scale"

	"github.com/weisyn/assetbridge/pkg/types"
)

var (
	// ErrTrailingBytes 请求解码后仍有剩余字节
	ErrTrailingBytes = errors.New("请求存在多余字节")

	// ErrOutputTooLarge 编码结果超过调用方提供的输出容量
	ErrOutputTooLarge = errors.New("输出超过缓冲区容量")
)

// Decode 将 input 严格解码为 v
func Decode(input []byte, v scale.Decodable) error {
	n, err := v.DecodeScale(scale.NewDecoder(bytes.NewReader(input)))
	if err != nil {
		return fmt.Errorf("解码%T失败: %w", v, err)
	}
	if n != len(input) {
		return fmt.Errorf("%w: 已消费%d字节, 输入%d字节", ErrTrailingBytes, n, len(input))
	}
	return nil
}

// Encode 将 v 编码为字节
func Encode(v scale.Encodable) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := v.EncodeScale(scale.NewEncoder(&buf)); err != nil {
		return nil, fmt.Errorf("编码%T失败: %w", v, err)
	}
	return buf.Bytes(), nil
}

// WriteOutput 检查编码结果是否能放入容量为 capacity 的输出缓冲区
// 超出时返回 ErrOutputTooLarge，不做截断
func WriteOutput(encoded []byte, capacity uint32) ([]byte, error) {
	if uint64(len(encoded)) > uint64(capacity) {
		return nil, fmt.Errorf("%w: 需要%d字节, 容量%d字节", ErrOutputTooLarge, len(encoded), capacity)
	}
	return encoded, nil
}

// ============================================================================
//                              定长字段编解码
// ============================================================================

func encodeAsset(e *scale.Encoder, id types.AssetID) (int, error) {
	var raw [4]byte
	binary.LittleEndian.PutUint32(raw[:], uint32(id))
	return scale.EncodeByteArray(e, raw[:])
}

func decodeAsset(d *scale.Decoder) (types.AssetID, int, error) {
	var raw [4]byte
	n, err := scale.DecodeByteArray(d, raw[:])
	if err != nil {
		return 0, n, fmt.Errorf("asset: %w", err)
	}
	return types.AssetID(binary.LittleEndian.Uint32(raw[:])), n, nil
}

func encodeAccount(e *scale.Encoder, id types.AccountID) (int, error) {
	return scale.EncodeByteArray(e, id[:])
}

func decodeAccount(d *scale.Decoder) (types.AccountID, int, error) {
	var id types.AccountID
	n, err := scale.DecodeByteArray(d, id[:])
	if err != nil {
		return id, n, fmt.Errorf("account: %w", err)
	}
	return id, n, nil
}

func encodeBalance(e *scale.Encoder, b types.Balance) (int, error) {
	raw := b.LE()
	return scale.EncodeByteArray(e, raw[:])
}

func decodeBalance(d *scale.Decoder) (types.Balance, int, error) {
	var raw [types.BalanceLength]byte
	n, err := scale.DecodeByteArray(d, raw[:])
	if err != nil {
		return types.Balance{}, n, fmt.Errorf("balance: %w", err)
	}
	b, err := types.BalanceFromLE(raw[:])
	return b, n, err
}

// fieldWriter 顺序编码多个字段并累加写入字节数
type fieldWriter struct {
	e   *scale.Encoder
	n   int
	err error
}

func (w *fieldWriter) do(fn func(*scale.Encoder) (int, error)) {
	if w.err != nil {
		return
	}
	n, err := fn(w.e)
	w.n += n
	w.err = err
}

func (w *fieldWriter) asset(id types.AssetID) {
	w.do(func(e *scale.Encoder) (int, error) { return encodeAsset(e, id) })
}

func (w *fieldWriter) account(id types.AccountID) {
	w.do(func(e *scale.Encoder) (int, error) { return encodeAccount(e, id) })
}

func (w *fieldWriter) balance(b types.Balance) {
	w.do(func(e *scale.Encoder) (int, error) { return encodeBalance(e, b) })
}

// fieldReader 顺序解码多个字段，遇到第一个错误后停止
type fieldReader struct {
	d   *scale.Decoder
	n   int
	err error
}

func (r *fieldReader) asset(dst *types.AssetID) {
	if r.err != nil {
		return
	}
	v, n, err := decodeAsset(r.d)
	r.n += n
	r.err = err
	*dst = v
}

func (r *fieldReader) account(dst *types.AccountID) {
	if r.err != nil {
		return
	}
	v, n, err := decodeAccount(r.d)
	r.n += n
	r.err = err
	*dst = v
}

func (r *fieldReader) balance(dst *types.Balance) {
	if r.err != nil {
		return
	}
	v, n, err := decodeBalance(r.d)
	r.n += n
	r.err = err
	*dst = v
}
