// Package event 提供事件总线配置
package event

import (
	configtypes "github.com/weisyn/assetbridge/pkg/types"
)

// EventOptions 事件系统配置选项
type EventOptions struct {
	Enabled bool `json:"enabled"` // 是否启用事件系统
}

// Config 事件配置实现
type Config struct {
	options *EventOptions
}

// New 创建事件配置
func New(userConfig interface{}) *Config {
	defaultOptions := &EventOptions{Enabled: defaultEnabled}
	if eventConfig, ok := userConfig.(*configtypes.UserEventConfig); ok && eventConfig != nil {
		if eventConfig.Enabled != nil {
			defaultOptions.Enabled = *eventConfig.Enabled
		}
	}
	return &Config{options: defaultOptions}
}

// GetOptions 获取完整配置选项
func (c *Config) GetOptions() *EventOptions {
	return c.options
}

// IsEnabled 是否启用
func (c *Config) IsEnabled() bool {
	return c.options.Enabled
}

// NewFromOptions 从已解析的选项创建配置
func NewFromOptions(options *EventOptions) *Config {
	if options == nil {
		return New(nil)
	}
	return &Config{options: options}
}
