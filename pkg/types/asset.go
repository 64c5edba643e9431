package types

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// ============================================================================
//                              资产账本基础类型
// ============================================================================

// AssetID 资产标识（u32，小端 4 字节编码）
type AssetID uint32

// AccountIDLength 账户标识字节长度
const AccountIDLength = 32

// BalanceLength 余额编码字节长度（u128）
const BalanceLength = 16

// AccountID 账户标识（32 字节原始公钥）
type AccountID [AccountIDLength]byte

// ErrBalanceOutOfRange 数值超出 u128 表示范围
var ErrBalanceOutOfRange = errors.New("余额超出u128范围")

// ParseAccountHex 解析 0x 前缀（可省略）的十六进制账户
func ParseAccountHex(s string) (AccountID, error) {
	var id AccountID
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X"))
	if err != nil {
		return id, fmt.Errorf("解析账户十六进制失败: %w", err)
	}
	if len(raw) != AccountIDLength {
		return id, fmt.Errorf("账户长度错误: 期望%d字节, 实际%d字节", AccountIDLength, len(raw))
	}
	copy(id[:], raw)
	return id, nil
}

// String 返回 0x 前缀的十六进制表示
func (a AccountID) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Bytes 返回账户字节切片副本
func (a AccountID) Bytes() []byte {
	out := make([]byte, AccountIDLength)
	copy(out, a[:])
	return out
}

// Balance 资产余额
//
// 内部使用 256 位字存储，取值范围限制在 [0, 2^128)。
// 零值即为 0。
type Balance struct {
	v uint256.Int
}

// maxBalance u128 上限（2^128 - 1）
var maxBalance = func() uint256.Int {
	var m uint256.Int
	m[0] = ^uint64(0)
	m[1] = ^uint64(0)
	return m
}()

// NewBalance 由 uint64 构造余额
func NewBalance(v uint64) Balance {
	var b Balance
	b.v.SetUint64(v)
	return b
}

// BalanceFromWords 由低/高两个 64 位字构造余额
func BalanceFromWords(lo, hi uint64) Balance {
	var b Balance
	b.v[0] = lo
	b.v[1] = hi
	return b
}

// MaxBalance 返回 u128 最大值
func MaxBalance() Balance {
	return Balance{v: maxBalance}
}

// BalanceFromBig 由 big.Int 构造余额
func BalanceFromBig(x *big.Int) (Balance, error) {
	if x == nil || x.Sign() < 0 {
		return Balance{}, ErrBalanceOutOfRange
	}
	v, overflow := uint256.FromBig(x)
	if overflow || v.BitLen() > 128 {
		return Balance{}, ErrBalanceOutOfRange
	}
	return Balance{v: *v}, nil
}

// ParseBalance 解析十进制余额字符串
func ParseBalance(s string) (Balance, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Balance{}, fmt.Errorf("解析余额失败: %w", err)
	}
	if v.BitLen() > 128 {
		return Balance{}, ErrBalanceOutOfRange
	}
	return Balance{v: *v}, nil
}

// BalanceFromLE 从 16 字节小端编码解析余额
func BalanceFromLE(raw []byte) (Balance, error) {
	if len(raw) != BalanceLength {
		return Balance{}, fmt.Errorf("余额编码长度错误: 期望%d字节, 实际%d字节", BalanceLength, len(raw))
	}
	return BalanceFromWords(
		binary.LittleEndian.Uint64(raw[0:8]),
		binary.LittleEndian.Uint64(raw[8:16]),
	), nil
}

// LE 返回 16 字节小端编码
func (b Balance) LE() [BalanceLength]byte {
	var out [BalanceLength]byte
	binary.LittleEndian.PutUint64(out[0:8], b.v[0])
	binary.LittleEndian.PutUint64(out[8:16], b.v[1])
	return out
}

// Add 加法，结果超出 u128 时 ok 为 false
func (b Balance) Add(o Balance) (Balance, bool) {
	var sum uint256.Int
	sum.Add(&b.v, &o.v)
	if sum.Gt(&maxBalance) {
		return Balance{}, false
	}
	return Balance{v: sum}, true
}

// SaturatingAdd 饱和加法
func (b Balance) SaturatingAdd(o Balance) Balance {
	if sum, ok := b.Add(o); ok {
		return sum
	}
	return MaxBalance()
}

// Sub 减法，下溢时 ok 为 false
func (b Balance) Sub(o Balance) (Balance, bool) {
	if b.v.Lt(&o.v) {
		return Balance{}, false
	}
	var diff uint256.Int
	diff.Sub(&b.v, &o.v)
	return Balance{v: diff}, true
}

// Cmp 比较，返回 -1/0/1
func (b Balance) Cmp(o Balance) int {
	return b.v.Cmp(&o.v)
}

// IsZero 是否为零
func (b Balance) IsZero() bool {
	return b.v.IsZero()
}

// Big 转换为 big.Int
func (b Balance) Big() *big.Int {
	return b.v.ToBig()
}

// String 十进制表示
func (b Balance) String() string {
	return b.v.Dec()
}

// MarshalText 以十进制字符串序列化
func (b Balance) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText 从十进制字符串反序列化
func (b *Balance) UnmarshalText(text []byte) error {
	v, err := ParseBalance(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}
