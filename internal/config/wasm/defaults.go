package wasm

import "time"

const (
	// defaultMaxMemoryPages 256 页（16MiB）
	defaultMaxMemoryPages uint32 = 256

	// defaultExecutionTimeout 单次执行 5 秒
	defaultExecutionTimeout = 5 * time.Second

	// defaultHostModule 宿主函数模块名
	defaultHostModule = "env"

	defaultEnableCompileCache = true
)
