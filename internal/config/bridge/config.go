// Package bridge 提供 PSP22 调度桥配置
package bridge

import (
	configtypes "github.com/weisyn/assetbridge/pkg/types"
)

// BridgeOptions 调度桥配置选项
type BridgeOptions struct {
	// === 权重配置 ===
	TransferWeight uint64 `json:"transfer_weight"` // transfer/transfer_from 基准权重
	ApproveWeight  uint64 `json:"approve_weight"`  // approve 基准权重

	// === 调用限制 ===
	DefaultGasLimit uint64 `json:"default_gas_limit"` // CLI/宿主未指定时的权重预算
	MaxInputSize    uint32 `json:"max_input_size"`    // 宿主接受的输入上限
	MaxOutputSize   uint32 `json:"max_output_size"`   // 宿主分配的输出缓冲区上限

	// === 可观测性 ===
	EnableMetrics bool `json:"enable_metrics"` // 是否注册 Prometheus 指标
}

// Config 调度桥配置实现
type Config struct {
	options *BridgeOptions
}

// New 创建调度桥配置
func New(userConfig interface{}) *Config {
	defaultOptions := createDefaultBridgeOptions()
	if userConfig != nil {
		applyUserConfig(defaultOptions, userConfig)
	}
	return &Config{options: defaultOptions}
}

func createDefaultBridgeOptions() *BridgeOptions {
	return &BridgeOptions{
		TransferWeight:  defaultTransferWeight,
		ApproveWeight:   defaultApproveWeight,
		DefaultGasLimit: defaultGasLimit,
		MaxInputSize:    defaultMaxInputSize,
		MaxOutputSize:   defaultMaxOutputSize,
		EnableMetrics:   defaultEnableMetrics,
	}
}

func applyUserConfig(options *BridgeOptions, userConfig interface{}) {
	bridgeConfig, ok := userConfig.(*configtypes.UserBridgeConfig)
	if !ok || bridgeConfig == nil {
		return
	}
	if bridgeConfig.TransferWeight != nil {
		options.TransferWeight = *bridgeConfig.TransferWeight
	}
	if bridgeConfig.ApproveWeight != nil {
		options.ApproveWeight = *bridgeConfig.ApproveWeight
	}
	if bridgeConfig.DefaultGasLimit != nil {
		options.DefaultGasLimit = *bridgeConfig.DefaultGasLimit
	}
	if bridgeConfig.MaxInputSize != nil && *bridgeConfig.MaxInputSize > 0 {
		options.MaxInputSize = *bridgeConfig.MaxInputSize
	}
	if bridgeConfig.MaxOutputSize != nil && *bridgeConfig.MaxOutputSize > 0 {
		options.MaxOutputSize = *bridgeConfig.MaxOutputSize
	}
	if bridgeConfig.EnableMetrics != nil {
		options.EnableMetrics = *bridgeConfig.EnableMetrics
	}
}

// GetOptions 获取完整配置选项
func (c *Config) GetOptions() *BridgeOptions {
	return c.options
}
