package ledger

import (
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/event"
	"github.com/weisyn/assetbridge/pkg/types"
)

// 事件主题
const (
	EventTransfer event.EventType = "psp22:transfer"
	EventApproval event.EventType = "psp22:approval"
)

// TransferEvent 余额变动事件，From 为 nil 表示铸造
type TransferEvent struct {
	Asset types.AssetID
	From  *types.AccountID
	To    types.AccountID
	Value types.Balance
}

// ApprovalEvent 授权变动事件，Value 为变动后的授权总额
type ApprovalEvent struct {
	Asset   types.AssetID
	Owner   types.AccountID
	Spender types.AccountID
	Value   types.Balance
}

func (l *Ledger) publish(topic event.EventType, payload interface{}) {
	if l.eventBus == nil {
		return
	}
	l.eventBus.Publish(topic, payload)
}
