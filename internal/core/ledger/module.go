package ledger

import (
	"go.uber.org/fx"

	logmodule "github.com/weisyn/assetbridge/internal/core/infrastructure/log"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/event"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/storage"
	ledgeriface "github.com/weisyn/assetbridge/pkg/interfaces/ledger"
)

// ModuleInput 账本模块输入依赖
type ModuleInput struct {
	fx.In

	Storage  storage.BadgerStore
	Cache    storage.MemoryStore `optional:"true"`
	EventBus event.EventBus      `optional:"true"`
	Logger   log.Logger          `optional:"true"`
}

// ModuleOutput 账本模块输出服务
type ModuleOutput struct {
	fx.Out

	Ledger  *Ledger
	Adapter ledgeriface.Adapter
}

// Module 返回账本模块
func Module() fx.Option {
	return fx.Module("ledger",
		fx.Provide(func(input ModuleInput) (ModuleOutput, error) {
			l, err := New(input.Storage, input.Cache, input.EventBus, logmodule.NewModuleLogger(input.Logger, "ledger"))
			if err != nil {
				return ModuleOutput{}, err
			}
			return ModuleOutput{Ledger: l, Adapter: l}, nil
		}),
	)
}
