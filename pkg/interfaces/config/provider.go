// Package config provides configuration provider interfaces.
package config

import (
	bridgeconfig "github.com/weisyn/assetbridge/internal/config/bridge"
	eventconfig "github.com/weisyn/assetbridge/internal/config/event"
	logconfig "github.com/weisyn/assetbridge/internal/config/log"
	badgerconfig "github.com/weisyn/assetbridge/internal/config/storage/badger"
	wasmconfig "github.com/weisyn/assetbridge/internal/config/wasm"
)

// Provider 配置提供者接口
type Provider interface {
	// GetAppName 获取应用名称
	GetAppName() string

	// GetLog 获取日志配置
	GetLog() *logconfig.LogOptions

	// GetBridge 获取调度桥配置
	GetBridge() *bridgeconfig.BridgeOptions

	// GetBadger 获取BadgerDB存储配置
	GetBadger() *badgerconfig.BadgerOptions

	// GetWasm 获取沙箱运行时配置
	GetWasm() *wasmconfig.WasmOptions

	// GetEvent 获取事件配置
	GetEvent() *eventconfig.EventOptions
}
