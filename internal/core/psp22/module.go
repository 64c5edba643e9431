package psp22

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/weisyn/assetbridge/internal/config/bridge"
	logmodule "github.com/weisyn/assetbridge/internal/core/infrastructure/log"
	"github.com/weisyn/assetbridge/internal/core/psp22/weight"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/log"
)

// ModuleInput 调度桥模块输入依赖
type ModuleInput struct {
	fx.In

	Options    *bridge.BridgeOptions
	Logger     log.Logger            `optional:"true"`
	Registerer prometheus.Registerer `optional:"true"` // 未注入时使用默认注册表
}

// ModuleOutput 调度桥模块输出服务
type ModuleOutput struct {
	fx.Out

	Dispatcher *Dispatcher
	Metrics    *Metrics // 未启用指标时为 nil
}

// Module 返回调度桥模块
func Module() fx.Option {
	return fx.Module("psp22",
		fx.Provide(ProvideServices),
	)
}

// ProvideServices 根据配置创建调度器
func ProvideServices(input ModuleInput) (ModuleOutput, error) {
	logger := logmodule.NewModuleLogger(input.Logger, "psp22")

	var metrics *Metrics
	if input.Options.EnableMetrics {
		reg := input.Registerer
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		m, err := NewMetrics(reg)
		if err != nil {
			return ModuleOutput{}, fmt.Errorf("注册调度桥指标失败: %w", err)
		}
		metrics = m
	}

	schedule := ScheduleFromOptions(input.Options)
	if logger != nil {
		logger.Infof("PSP22 调度桥已创建: transfer=%d approve=%d metrics=%v",
			schedule.Charge(weight.ClassTransfer), schedule.Charge(weight.ClassApprove), metrics != nil)
	}

	return ModuleOutput{
		Dispatcher: NewDispatcher(logger, schedule, metrics),
		Metrics:    metrics,
	}, nil
}

// ScheduleFromOptions 由配置构造权重表
func ScheduleFromOptions(options *bridge.BridgeOptions) weight.Schedule {
	if options == nil {
		return weight.DefaultSchedule()
	}
	return weight.Schedule{
		Transfer: weight.Weight(options.TransferWeight),
		Approve:  weight.Weight(options.ApproveWeight),
	}
}
