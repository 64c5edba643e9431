package badger

import (
	"time"

	"github.com/weisyn/assetbridge/pkg/utils"
)

// getDefaultPath 获取默认数据库路径
func getDefaultPath() string {
	return utils.ResolveDataPath("./data/badger")
}

const (
	// defaultInMemory 默认落盘
	defaultInMemory = false

	// defaultSyncWrites 账本数据需要强一致，默认同步写入
	defaultSyncWrites = true

	// defaultMemTableSize 64MB
	defaultMemTableSize = 64 << 20

	// defaultCacheTTL 元数据缓存 10 分钟
	defaultCacheTTL = 10 * time.Minute
)
