// Package ledger 定义资产账本的公共接口
//
// 📒 **资产账本适配接口 (Asset Ledger Adapter)**
//
// 本文件定义了 PSP22 调度桥所消费的资产账本能力，专注于：
// - 只读查询：总供应量、余额、授权额度、元数据
// - 状态变更：转账、代理转账、授权
//
// 🎯 **约束**
// - 每个变更操作在账本内部原子执行：要么完全生效，要么不产生任何效果
// - 查询操作不产生副作用
// - 未知资产的查询返回零值（零余额、空名称、0 精度）
// - 错误原样返回给调用方，由调度桥负责收窄为外部状态码
package ledger

import (
	"context"

	"github.com/weisyn/assetbridge/pkg/types"
)

// Reader 账本只读查询能力
type Reader interface {
	// TotalSupply 查询资产总供应量
	TotalSupply(ctx context.Context, asset types.AssetID) (types.Balance, error)

	// Balance 查询账户余额
	Balance(ctx context.Context, asset types.AssetID, who types.AccountID) (types.Balance, error)

	// Allowance 查询 owner 授予 spender 的额度
	Allowance(ctx context.Context, asset types.AssetID, owner, spender types.AccountID) (types.Balance, error)

	// Name 查询资产名称（原始字节）
	Name(ctx context.Context, asset types.AssetID) ([]byte, error)

	// Symbol 查询资产符号（原始字节）
	Symbol(ctx context.Context, asset types.AssetID) ([]byte, error)

	// Decimals 查询资产精度
	Decimals(ctx context.Context, asset types.AssetID) (uint8, error)
}

// Writer 账本状态变更能力
type Writer interface {
	// Transfer 从 from 转账到 to
	// keepAlive 为 true 时，转账不得使 from 账户低于最小余额而被回收
	Transfer(ctx context.Context, asset types.AssetID, from, to types.AccountID, amount types.Balance, keepAlive bool) error

	// TransferFrom 由 spender 动用 from 的授权额度向 to 转账
	TransferFrom(ctx context.Context, asset types.AssetID, spender, from, to types.AccountID, amount types.Balance) error

	// Approve owner 授予 spender 额度
	Approve(ctx context.Context, asset types.AssetID, owner, spender types.AccountID, amount types.Balance) error
}

// Adapter 调度桥使用的完整账本能力
type Adapter interface {
	Reader
	Writer
}
