// Package wasm 提供沙箱运行时配置
package wasm

import (
	"time"

	configtypes "github.com/weisyn/assetbridge/pkg/types"
)

// WasmOptions WASM 运行时配置选项
type WasmOptions struct {
	MaxMemoryPages     uint32        `json:"max_memory_pages"`     // 单实例最大内存页数
	ExecutionTimeout   time.Duration `json:"execution_timeout"`    // 单次执行超时，0 表示不限制
	HostModule         string        `json:"host_module"`          // 宿主函数所在模块名
	EnableCompileCache bool          `json:"enable_compile_cache"` // 按代码哈希缓存编译结果
}

// Config WASM 配置实现
type Config struct {
	options *WasmOptions
}

// New 创建 WASM 配置
func New(userConfig interface{}) *Config {
	defaultOptions := createDefaultWasmOptions()
	if userConfig != nil {
		applyUserConfig(defaultOptions, userConfig)
	}
	return &Config{options: defaultOptions}
}

func createDefaultWasmOptions() *WasmOptions {
	return &WasmOptions{
		MaxMemoryPages:     defaultMaxMemoryPages,
		ExecutionTimeout:   defaultExecutionTimeout,
		HostModule:         defaultHostModule,
		EnableCompileCache: defaultEnableCompileCache,
	}
}

func applyUserConfig(options *WasmOptions, userConfig interface{}) {
	wasmConfig, ok := userConfig.(*configtypes.UserWasmConfig)
	if !ok || wasmConfig == nil {
		return
	}
	if wasmConfig.MaxMemoryPages != nil && *wasmConfig.MaxMemoryPages > 0 {
		options.MaxMemoryPages = uint32(*wasmConfig.MaxMemoryPages)
	}
	if wasmConfig.ExecutionTimeoutMs != nil && *wasmConfig.ExecutionTimeoutMs >= 0 {
		options.ExecutionTimeout = time.Duration(*wasmConfig.ExecutionTimeoutMs) * time.Millisecond
	}
	if wasmConfig.HostModule != nil && *wasmConfig.HostModule != "" {
		options.HostModule = *wasmConfig.HostModule
	}
	if wasmConfig.EnableCompileCache != nil {
		options.EnableCompileCache = *wasmConfig.EnableCompileCache
	}
}

// GetOptions 获取完整配置选项
func (c *Config) GetOptions() *WasmOptions {
	return c.options
}
