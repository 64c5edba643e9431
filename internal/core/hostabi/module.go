package hostabi

import (
	"context"

	"go.uber.org/fx"

	"github.com/weisyn/assetbridge/internal/config/bridge"
	wasmconfig "github.com/weisyn/assetbridge/internal/config/wasm"
	logmodule "github.com/weisyn/assetbridge/internal/core/infrastructure/log"
	"github.com/weisyn/assetbridge/internal/core/psp22"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/log"
)

// ModuleInput 宿主绑定模块输入依赖
type ModuleInput struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Dispatcher *psp22.Dispatcher
	Bridge     *bridge.BridgeOptions
	Wasm       *wasmconfig.WasmOptions
	Logger     log.Logger `optional:"true"`
}

// Module 返回宿主绑定模块
func Module() fx.Option {
	return fx.Module("hostabi",
		fx.Provide(ProvideRuntime),
	)
}

// ProvideRuntime 创建运行时，并在应用停止时关闭
func ProvideRuntime(input ModuleInput) (*Runtime, error) {
	logger := logmodule.NewModuleLogger(input.Logger, "hostabi")

	var maxInput, maxOutput uint32
	if input.Bridge != nil {
		maxInput = input.Bridge.MaxInputSize
		maxOutput = input.Bridge.MaxOutputSize
	}
	host := NewHostFunctions(input.Dispatcher, logger, maxInput, maxOutput)

	rt, err := NewRuntime(context.Background(), host, input.Wasm, logger)
	if err != nil {
		return nil, err
	}
	input.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return rt.Close(ctx)
		},
	})
	return rt, nil
}
