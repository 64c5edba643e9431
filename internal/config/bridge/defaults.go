package bridge

// 调度桥默认配置值
const (
	// 资产模块基准权重（ref_time）
	defaultTransferWeight uint64 = 53_462_000
	defaultApproveWeight  uint64 = 34_786_000

	// defaultGasLimit 默认预算可覆盖约 100 次转账
	defaultGasLimit uint64 = 6_000_000_000

	// defaultMaxInputSize 最大请求 transfer_from 为 84 字节
	defaultMaxInputSize uint32 = 1 << 10

	// defaultMaxOutputSize 单次调用输出上限 16KiB
	defaultMaxOutputSize uint32 = 16 << 10

	defaultEnableMetrics = true
)
