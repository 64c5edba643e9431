package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	config "github.com/weisyn/assetbridge/internal/config"
	"github.com/weisyn/assetbridge/internal/core/hostabi"
	"github.com/weisyn/assetbridge/internal/core/infrastructure/event"
	log "github.com/weisyn/assetbridge/internal/core/infrastructure/log"
	"github.com/weisyn/assetbridge/internal/core/infrastructure/storage"
	"github.com/weisyn/assetbridge/internal/core/ledger"
	"github.com/weisyn/assetbridge/internal/core/psp22"
	configiface "github.com/weisyn/assetbridge/pkg/interfaces/config"
)

// Bootstrap 应用引导程序
type Bootstrap struct {
	opts *options
}

// NewBootstrap 创建引导程序
func NewBootstrap(opts *options) *Bootstrap {
	return &Bootstrap{opts: opts}
}

// SetupInfrastructureLayer 配置与日志
func (b *Bootstrap) SetupInfrastructureLayer() []fx.Option {
	return []fx.Option{
		fx.Provide(func() configiface.AppOptions { return b.opts }),
		config.Module(), // 1. 配置(不依赖其他)
		log.Module(),    // 2. 日志(依赖配置)
	}
}

// SetupCommunicationLayer 事件与存储
func (b *Bootstrap) SetupCommunicationLayer() []fx.Option {
	return []fx.Option{
		event.Module(),   // 事件(依赖配置)
		storage.Module(), // 存储(依赖配置和日志)
	}
}

// SetupBusinessLayer 账本、调度桥与沙箱绑定
//
// 顺序：账本 -> 调度桥 -> 宿主绑定
func (b *Bootstrap) SetupBusinessLayer() []fx.Option {
	reg := b.opts.registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return []fx.Option{
		fx.Provide(func() prometheus.Registerer { return reg }),
		ledger.Module(),
		psp22.Module(),
		hostabi.Module(),
	}
}

// SetupModules 按依赖顺序组装全部模块
func (b *Bootstrap) SetupModules() []fx.Option {
	var modules []fx.Option
	modules = append(modules, b.SetupInfrastructureLayer()...)
	modules = append(modules, b.SetupCommunicationLayer()...)
	modules = append(modules, b.SetupBusinessLayer()...)
	return modules
}

// CreateFxApp 创建 fx 应用，并把核心服务填充到 target
func (b *Bootstrap) CreateFxApp(target *App) *fx.App {
	return fx.New(
		fx.Options(b.SetupModules()...),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			l := &fxevent.ZapLogger{Logger: logger}
			l.UseLogLevel(zap.DebugLevel)
			return l
		}),
		fx.Populate(
			&target.Logger,
			&target.Provider,
			&target.Ledger,
			&target.Dispatcher,
			&target.Runtime,
			&target.EventBus,
		),
	)
}
