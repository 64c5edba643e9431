// Package types provides configuration type definitions.
package types

// AppConfig 应用程序根配置
// 只包含JSON配置文件解析所需的结构，不包含任何内部字段
// 默认值和完整配置结构在 internal/config/*/defaults.go 和 internal/config/*/config.go 中定义
type AppConfig struct {
	// 应用程序基本信息
	AppName *string `json:"app_name,omitempty"` // 应用名称
	DataDir *string `json:"data_dir,omitempty"` // 数据目录路径

	// 日志配置
	Log *UserLogConfig `json:"log,omitempty"`

	// 资产桥配置 - 对应配置文件中的 bridge 字段
	Bridge *UserBridgeConfig `json:"bridge,omitempty"`

	// 存储配置
	Storage *UserStorageConfig `json:"storage,omitempty"`

	// WASM 运行时配置
	Wasm *UserWasmConfig `json:"wasm,omitempty"`

	// 事件总线配置
	Event *UserEventConfig `json:"event,omitempty"`
}

// UserLogConfig 用户日志配置
type UserLogConfig struct {
	Level     *string `json:"level,omitempty"`      // 日志级别
	FilePath  *string `json:"file_path,omitempty"`  // 日志文件路径
	ToConsole *bool   `json:"to_console,omitempty"` // 是否输出到控制台
}

// UserBridgeConfig 用户资产桥配置
// 权重单位与账本基准权重一致（ref_time）
type UserBridgeConfig struct {
	TransferWeight  *uint64 `json:"transfer_weight,omitempty"`   // 转账基准权重
	ApproveWeight   *uint64 `json:"approve_weight,omitempty"`    // 授权基准权重
	DefaultGasLimit *uint64 `json:"default_gas_limit,omitempty"` // CLI 调用默认权重预算
	MaxInputSize    *uint32 `json:"max_input_size,omitempty"`    // 单次调用输入上限
	MaxOutputSize   *uint32 `json:"max_output_size,omitempty"`   // 单次调用输出缓冲区上限
	EnableMetrics   *bool   `json:"enable_metrics,omitempty"`    // 是否注册 Prometheus 指标
}

// UserStorageConfig 用户存储配置
type UserStorageConfig struct {
	DataPath   *string `json:"data_path,omitempty"`   // BadgerDB 数据目录
	InMemory   *bool   `json:"in_memory,omitempty"`   // 是否纯内存模式
	SyncWrites *bool   `json:"sync_writes,omitempty"` // 是否同步写盘
	CacheTTL   *int    `json:"cache_ttl,omitempty"`   // 元数据缓存 TTL（秒）
}

// UserWasmConfig 用户 WASM 运行时配置
type UserWasmConfig struct {
	MaxMemoryPages     *int    `json:"max_memory_pages,omitempty"`     // 单实例最大内存页数（64KiB/页）
	ExecutionTimeoutMs *int    `json:"execution_timeout_ms,omitempty"` // 单次执行超时（毫秒）
	HostModule         *string `json:"host_module,omitempty"`          // 宿主模块名
	EnableCompileCache *bool   `json:"enable_compile_cache,omitempty"` // 是否缓存编译结果
}

// UserEventConfig 用户事件配置
type UserEventConfig struct {
	Enabled *bool `json:"enabled,omitempty"` // 是否启用事件系统
}

// 配置辅助函数
// 这些函数帮助创建指针类型的配置值，区分"未设置"和"设置为零值"

// BoolPtr 创建bool指针，用于明确表示用户设置了该值
func BoolPtr(v bool) *bool {
	return &v
}

// IntPtr 创建int指针，用于明确表示用户设置了该值
func IntPtr(v int) *int {
	return &v
}

// StringPtr 创建string指针，用于明确表示用户设置了该值
func StringPtr(v string) *string {
	return &v
}

// UInt64Ptr 创建uint64指针，用于明确表示用户设置了该值
func UInt64Ptr(v uint64) *uint64 {
	return &v
}
