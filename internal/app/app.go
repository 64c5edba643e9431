// Package app 组装并管理 assetbridge 应用生命周期
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"

	"github.com/weisyn/assetbridge/internal/core/hostabi"
	"github.com/weisyn/assetbridge/internal/core/ledger"
	"github.com/weisyn/assetbridge/internal/core/psp22"
	"github.com/weisyn/assetbridge/pkg/interfaces/config"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/event"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/log"
)

const (
	startTimeout = 30 * time.Second
	// 留足时间给 BadgerDB 刷盘
	stopTimeout = 60 * time.Second
)

// App 已启动的应用及其核心服务
type App struct {
	Logger     log.Logger
	Provider   config.Provider
	Ledger     *ledger.Ledger
	Dispatcher *psp22.Dispatcher
	Runtime    *hostabi.Runtime
	EventBus   event.EventBus

	fxApp *fx.App
}

// New 加载配置、装配模块并启动应用
func New(opts ...Option) (*App, error) {
	o := newOptions(opts...)
	if err := o.resolve(); err != nil {
		return nil, err
	}

	a := &App{}
	a.fxApp = NewBootstrap(o).CreateFxApp(a)
	if err := a.fxApp.Err(); err != nil {
		return nil, fmt.Errorf("创建应用失败: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()
	if err := a.fxApp.Start(ctx); err != nil {
		return nil, fmt.Errorf("启动应用失败: %w", err)
	}
	return a, nil
}

// Stop 停止应用，关闭运行时与存储
func (a *App) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	if err := a.fxApp.Stop(ctx); err != nil {
		return fmt.Errorf("停止应用失败: %w", err)
	}
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	return nil
}
