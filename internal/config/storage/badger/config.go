package badger

import (
	"path/filepath"
	"time"

	configtypes "github.com/weisyn/assetbridge/pkg/types"
	"github.com/weisyn/assetbridge/pkg/utils"
)

// BadgerOptions BadgerDB存储配置选项
type BadgerOptions struct {
	// === 基础配置 ===
	Path       string `json:"path"`        // 数据库存储路径
	InMemory   bool   `json:"in_memory"`   // 纯内存模式（测试和一次性调用）
	SyncWrites bool   `json:"sync_writes"` // 是否同步写入

	// === 基础性能配置 ===
	MemTableSize int64 `json:"mem_table_size"` // 内存表大小

	// === 缓存配置 ===
	CacheTTL time.Duration `json:"cache_ttl"` // 资产元数据缓存 TTL
}

// Config BadgerDB配置实现
type Config struct {
	options *BadgerOptions
}

// New 创建BadgerDB配置实现
func New(userConfig interface{}) *Config {
	defaultOptions := createDefaultBadgerOptions()
	if userConfig != nil {
		applyUserConfig(defaultOptions, userConfig)
	}
	return &Config{
		options: defaultOptions,
	}
}

// NewFromOptions 从BadgerOptions创建配置实现
func NewFromOptions(options *BadgerOptions) *Config {
	return &Config{
		options: options,
	}
}

func createDefaultBadgerOptions() *BadgerOptions {
	return &BadgerOptions{
		Path:         getDefaultPath(),
		InMemory:     defaultInMemory,
		SyncWrites:   defaultSyncWrites,
		MemTableSize: defaultMemTableSize,
		CacheTTL:     defaultCacheTTL,
	}
}

// applyUserConfig 应用用户配置覆盖默认值
// 数据目录为 {data_path}/badger/
func applyUserConfig(options *BadgerOptions, userConfig interface{}) {
	storageConfig, ok := userConfig.(*configtypes.UserStorageConfig)
	if !ok || storageConfig == nil {
		return
	}
	if storageConfig.DataPath != nil {
		options.Path = utils.ResolveDataPath(filepath.Join(*storageConfig.DataPath, "badger"))
	}
	if storageConfig.InMemory != nil {
		options.InMemory = *storageConfig.InMemory
	}
	if storageConfig.SyncWrites != nil {
		options.SyncWrites = *storageConfig.SyncWrites
	}
	if storageConfig.CacheTTL != nil && *storageConfig.CacheTTL > 0 {
		options.CacheTTL = time.Duration(*storageConfig.CacheTTL) * time.Second
	}
}

// GetOptions 获取完整的BadgerDB配置选项
func (c *Config) GetOptions() *BadgerOptions {
	return c.options
}

// GetPath 获取数据库路径
func (c *Config) GetPath() string {
	return c.options.Path
}

// IsInMemory 是否纯内存模式
func (c *Config) IsInMemory() bool {
	return c.options.InMemory
}

// IsSyncWritesEnabled 是否启用同步写入
func (c *Config) IsSyncWritesEnabled() bool {
	return c.options.SyncWrites
}

// GetMemTableSize 获取内存表大小
func (c *Config) GetMemTableSize() int64 {
	return c.options.MemTableSize
}

// GetCacheTTL 获取元数据缓存 TTL
func (c *Config) GetCacheTTL() time.Duration {
	return c.options.CacheTTL
}
