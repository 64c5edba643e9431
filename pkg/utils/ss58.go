package utils

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"

	"github.com/weisyn/assetbridge/pkg/types"
)

// SS58 地址格式（Substrate 账户的 base58check 变体）
//
//	base58( prefix(1~2字节) || account(32字节) || checksum(2字节) )
//	checksum = blake2b-512("SS58PRE" || prefix || account)[:2]

// DefaultSS58Prefix 通用 Substrate 网络前缀
const DefaultSS58Prefix uint16 = 42

const (
	ss58ChecksumLength = 2
	maxSS58Prefix      = 16383
)

var ss58Preimage = []byte("SS58PRE")

var (
	// ErrInvalidSS58 地址格式错误
	ErrInvalidSS58 = errors.New("无效的SS58地址")
	// ErrSS58Checksum 校验和不匹配
	ErrSS58Checksum = errors.New("SS58地址校验和不匹配")
)

// EncodeSS58 将账户编码为 SS58 地址
func EncodeSS58(account types.AccountID, prefix uint16) (string, error) {
	if prefix > maxSS58Prefix {
		return "", fmt.Errorf("%w: 前缀超出范围 %d", ErrInvalidSS58, prefix)
	}
	payload := append(encodeSS58Prefix(prefix), account[:]...)
	sum := ss58Checksum(payload)
	return base58.Encode(append(payload, sum[:ss58ChecksumLength]...)), nil
}

// DecodeSS58 解析 SS58 地址，返回账户与网络前缀
func DecodeSS58(address string) (types.AccountID, uint16, error) {
	var account types.AccountID

	raw, err := base58.Decode(address)
	if err != nil {
		return account, 0, fmt.Errorf("%w: %v", ErrInvalidSS58, err)
	}
	if len(raw) == 0 {
		return account, 0, ErrInvalidSS58
	}

	prefix, prefixLen, err := decodeSS58Prefix(raw)
	if err != nil {
		return account, 0, err
	}
	if len(raw) != prefixLen+types.AccountIDLength+ss58ChecksumLength {
		return account, 0, fmt.Errorf("%w: 长度%d", ErrInvalidSS58, len(raw))
	}

	body := raw[:prefixLen+types.AccountIDLength]
	sum := ss58Checksum(body)
	if !bytes.Equal(sum[:ss58ChecksumLength], raw[len(body):]) {
		return account, 0, ErrSS58Checksum
	}
	copy(account[:], body[prefixLen:])
	return account, prefix, nil
}

// ParseAccount 解析账户，支持 0x 十六进制与 SS58
func ParseAccount(s string) (types.AccountID, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return types.ParseAccountHex(s)
	}
	account, _, err := DecodeSS58(s)
	return account, err
}

func ss58Checksum(payload []byte) [blake2b.Size]byte {
	return blake2b.Sum512(append(append([]byte{}, ss58Preimage...), payload...))
}

func encodeSS58Prefix(prefix uint16) []byte {
	if prefix < 64 {
		return []byte{byte(prefix)}
	}
	first := byte((prefix&0x00fc)>>2) | 0x40
	second := byte(prefix>>8) | byte((prefix&0x03)<<6)
	return []byte{first, second}
}

func decodeSS58Prefix(raw []byte) (uint16, int, error) {
	switch {
	case raw[0] < 64:
		return uint16(raw[0]), 1, nil
	case raw[0] < 128:
		if len(raw) < 2 {
			return 0, 0, ErrInvalidSS58
		}
		lower := (raw[0] << 2) | (raw[1] >> 6)
		upper := raw[1] & 0x3f
		return uint16(lower) | uint16(upper)<<8, 2, nil
	default:
		return 0, 0, fmt.Errorf("%w: 保留前缀 0x%02x", ErrInvalidSS58, raw[0])
	}
}
