// Package event 提供事件管理功能
package event

import (
	"go.uber.org/fx"

	eventconfig "github.com/weisyn/assetbridge/internal/config/event"
	"github.com/weisyn/assetbridge/pkg/interfaces/config"
	eventInterface "github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/event"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/log"
)

// ModuleInput 事件模块输入依赖
type ModuleInput struct {
	fx.In

	Provider config.Provider // 配置提供者
	Logger   log.Logger      `optional:"true"` // 日志记录器（可选）
}

// ModuleOutput 事件模块输出服务
type ModuleOutput struct {
	fx.Out

	EventBus eventInterface.EventBus
}

// Module 返回事件模块
func Module() fx.Option {
	return fx.Module("event",
		fx.Provide(
			func(input ModuleInput) ModuleOutput {
				options := input.Provider.GetEvent()
				if input.Logger != nil {
					input.Logger.Debugf("事件总线已创建: enabled=%v", options.Enabled)
				}
				return ModuleOutput{
					EventBus: New(eventconfig.NewFromOptions(options)),
				}
			},
		),
	)
}
