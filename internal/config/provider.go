package config

import (
	"github.com/weisyn/assetbridge/internal/config/bridge"
	"github.com/weisyn/assetbridge/internal/config/event"
	"github.com/weisyn/assetbridge/internal/config/log"
	"github.com/weisyn/assetbridge/internal/config/storage/badger"
	"github.com/weisyn/assetbridge/internal/config/wasm"
	"github.com/weisyn/assetbridge/pkg/interfaces/config"
	"github.com/weisyn/assetbridge/pkg/types"
)

const defaultAppName = "assetbridge"

// Provider 实现配置提供者接口
type Provider struct {
	appConfig *types.AppConfig
}

// 编译时校验
var _ config.Provider = (*Provider)(nil)

// NewProvider 创建配置提供者
func NewProvider(appConfig *types.AppConfig) config.Provider {
	return &Provider{
		appConfig: appConfig,
	}
}

// GetAppName 获取应用名称
func (p *Provider) GetAppName() string {
	if p.appConfig != nil && p.appConfig.AppName != nil && *p.appConfig.AppName != "" {
		return *p.appConfig.AppName
	}
	return defaultAppName
}

// GetLog 获取日志配置
func (p *Provider) GetLog() *log.LogOptions {
	var userLogConfig *types.UserLogConfig
	if p.appConfig != nil {
		userLogConfig = p.appConfig.Log
	}
	return log.New(userLogConfig).GetOptions()
}

// GetBridge 获取调度桥配置
func (p *Provider) GetBridge() *bridge.BridgeOptions {
	var userBridgeConfig *types.UserBridgeConfig
	if p.appConfig != nil {
		userBridgeConfig = p.appConfig.Bridge
	}
	return bridge.New(userBridgeConfig).GetOptions()
}

// GetBadger 获取BadgerDB存储配置
// 未单独配置存储路径时，使用 data_dir 作为根目录
func (p *Provider) GetBadger() *badger.BadgerOptions {
	var userStorageConfig *types.UserStorageConfig
	if p.appConfig != nil {
		userStorageConfig = p.appConfig.Storage
		if p.appConfig.DataDir != nil && (userStorageConfig == nil || userStorageConfig.DataPath == nil) {
			merged := types.UserStorageConfig{}
			if userStorageConfig != nil {
				merged = *userStorageConfig
			}
			merged.DataPath = p.appConfig.DataDir
			userStorageConfig = &merged
		}
	}
	return badger.New(userStorageConfig).GetOptions()
}

// GetWasm 获取沙箱运行时配置
func (p *Provider) GetWasm() *wasm.WasmOptions {
	var userWasmConfig *types.UserWasmConfig
	if p.appConfig != nil {
		userWasmConfig = p.appConfig.Wasm
	}
	return wasm.New(userWasmConfig).GetOptions()
}

// GetEvent 获取事件配置
func (p *Provider) GetEvent() *event.EventOptions {
	var userEventConfig *types.UserEventConfig
	if p.appConfig != nil {
		userEventConfig = p.appConfig.Event
	}
	return event.New(userEventConfig).GetOptions()
}
