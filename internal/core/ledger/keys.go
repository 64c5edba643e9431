package ledger

import (
	"encoding/binary"

	"github.com/weisyn/assetbridge/pkg/types"
)

// 存储键前缀
const (
	assetPrefix     = "ledger:asset:"
	supplyPrefix    = "ledger:supply:"
	balancePrefix   = "ledger:balance:"
	allowancePrefix = "ledger:allowance:"

	metadataCachePrefix = "ledger:meta:"
)

func assetKey(asset types.AssetID) []byte {
	return appendAsset([]byte(assetPrefix), asset)
}

func supplyKey(asset types.AssetID) []byte {
	return appendAsset([]byte(supplyPrefix), asset)
}

func balanceKey(asset types.AssetID, who types.AccountID) []byte {
	key := appendAsset([]byte(balancePrefix), asset)
	return append(key, who[:]...)
}

// allowanceKey owner 授权给 spender 的额度
func allowanceKey(asset types.AssetID, owner, spender types.AccountID) []byte {
	key := appendAsset([]byte(allowancePrefix), asset)
	key = append(key, owner[:]...)
	return append(key, spender[:]...)
}

func metadataCacheKey(asset types.AssetID) string {
	return string(appendAsset([]byte(metadataCachePrefix), asset))
}

// 大端序保证按资产ID有序扫描
func appendAsset(prefix []byte, asset types.AssetID) []byte {
	return binary.BigEndian.AppendUint32(prefix, uint32(asset))
}

func assetFromKey(key []byte) (types.AssetID, bool) {
	if len(key) != len(assetPrefix)+4 {
		return 0, false
	}
	return types.AssetID(binary.BigEndian.Uint32(key[len(assetPrefix):])), true
}
