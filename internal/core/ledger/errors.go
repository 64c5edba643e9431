package ledger

import "errors"

var (
	// ErrUnknownAsset 资产不存在
	ErrUnknownAsset = errors.New("资产不存在")
	// ErrAssetExists 资产已存在
	ErrAssetExists = errors.New("资产已存在")
	// ErrInsufficientBalance 余额不足
	ErrInsufficientBalance = errors.New("余额不足")
	// ErrInsufficientAllowance 授权额度不足
	ErrInsufficientAllowance = errors.New("授权额度不足")
	// ErrWouldDie 转账会使发送方余额低于最小余额
	ErrWouldDie = errors.New("转账后账户余额低于最小余额")
	// ErrBelowMinimum 接收方余额低于最小余额
	ErrBelowMinimum = errors.New("接收方余额低于最小余额")
	// ErrBalanceOverflow 余额或总供应量溢出
	ErrBalanceOverflow = errors.New("余额溢出")
)
