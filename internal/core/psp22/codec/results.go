package codec

import (
	"fmt"

	"github.com/spacemeshos/go-scale"

	"github.com/weisyn/assetbridge/pkg/types"
)

// BalanceResult 余额类结果（总供应量、余额、授权额度）
type BalanceResult struct {
	Value types.Balance
}

func (r *BalanceResult) EncodeScale(e *scale.Encoder) (int, error) {
	return encodeBalance(e, r.Value)
}

func (r *BalanceResult) DecodeScale(d *scale.Decoder) (int, error) {
	v, n, err := decodeBalance(d)
	r.Value = v
	return n, err
}

// BytesResult 名称/符号结果，编码为 Vec<u8>
type BytesResult struct {
	Value []byte
}

func (r *BytesResult) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteSlice(e, r.Value)
}

func (r *BytesResult) DecodeScale(d *scale.Decoder) (int, error) {
	v, n, err := scale.DecodeByteSlice(d)
	if err != nil {
		return n, fmt.Errorf("bytes: %w", err)
	}
	r.Value = v
	return n, nil
}

// DecimalsResult 精度结果，编码为单字节
type DecimalsResult struct {
	Value uint8
}

func (r *DecimalsResult) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, []byte{r.Value})
}

func (r *DecimalsResult) DecodeScale(d *scale.Decoder) (int, error) {
	var raw [1]byte
	n, err := scale.DecodeByteArray(d, raw[:])
	if err != nil {
		return n, fmt.Errorf("decimals: %w", err)
	}
	r.Value = raw[0]
	return n, nil
}

// EncodeBalance 编码余额结果
func EncodeBalance(b types.Balance) []byte {
	raw := b.LE()
	return raw[:]
}

// EncodeBytes 编码 Vec<u8> 结果
func EncodeBytes(v []byte) ([]byte, error) {
	return Encode(&BytesResult{Value: v})
}

// EncodeDecimals 编码精度结果
func EncodeDecimals(v uint8) []byte {
	return []byte{v}
}

// DecodeBytes 解码 Vec<u8> 结果，常用于客户端/CLI 展示
func DecodeBytes(out []byte) ([]byte, error) {
	var r BytesResult
	if err := Decode(out, &r); err != nil {
		return nil, err
	}
	return r.Value, nil
}

// DecodeBalance 解码余额结果
func DecodeBalance(out []byte) (types.Balance, error) {
	var r BalanceResult
	if err := Decode(out, &r); err != nil {
		return types.Balance{}, err
	}
	return r.Value, nil
}
