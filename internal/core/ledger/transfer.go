package ledger

import (
	"context"
	"fmt"

	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/storage"
	"github.com/weisyn/assetbridge/pkg/types"
)

// Transfer 从 from 向 to 转账
//
// keepAlive 为 true 时，发送方剩余余额不得低于最小余额；
// 为 false 时，剩余不足最小余额的部分一并转给接收方，发送方账户被清空。
func (l *Ledger) Transfer(ctx context.Context, asset types.AssetID, from, to types.AccountID, amount types.Balance, keepAlive bool) error {
	var moved types.Balance
	err := l.storage.RunInTransaction(ctx, func(tx storage.BadgerTransaction) error {
		meta, err := loadMetadata(tx, asset)
		if err != nil {
			return err
		}
		moved, err = transferIn(tx, meta, asset, from, to, amount, keepAlive)
		return err
	})
	if err != nil {
		return err
	}

	if !moved.IsZero() && from != to {
		sender := from
		l.publish(EventTransfer, TransferEvent{Asset: asset, From: &sender, To: to, Value: moved})
	}
	return nil
}

// TransferFrom spender 动用 from 授予的额度向 to 转账
func (l *Ledger) TransferFrom(ctx context.Context, asset types.AssetID, spender, from, to types.AccountID, amount types.Balance) error {
	var (
		moved     types.Balance
		remaining types.Balance
	)
	err := l.storage.RunInTransaction(ctx, func(tx storage.BadgerTransaction) error {
		meta, err := loadMetadata(tx, asset)
		if err != nil {
			return err
		}

		key := allowanceKey(asset, from, spender)
		allowance, err := getBalance(tx, key)
		if err != nil {
			return err
		}
		var ok bool
		remaining, ok = allowance.Sub(amount)
		if !ok {
			return fmt.Errorf("%w: 额度=%s, 请求=%s", ErrInsufficientAllowance, allowance, amount)
		}

		moved, err = transferIn(tx, meta, asset, from, to, amount, false)
		if err != nil {
			return err
		}
		return putBalance(tx, key, remaining)
	})
	if err != nil {
		return err
	}

	if !moved.IsZero() && from != to {
		sender := from
		l.publish(EventTransfer, TransferEvent{Asset: asset, From: &sender, To: to, Value: moved})
	}
	if !amount.IsZero() {
		l.publish(EventApproval, ApprovalEvent{Asset: asset, Owner: from, Spender: spender, Value: remaining})
	}
	return nil
}

// Approve 在现有额度基础上为 spender 增加 amount
func (l *Ledger) Approve(ctx context.Context, asset types.AssetID, owner, spender types.AccountID, amount types.Balance) error {
	var total types.Balance
	err := l.storage.RunInTransaction(ctx, func(tx storage.BadgerTransaction) error {
		if _, err := loadMetadata(tx, asset); err != nil {
			return err
		}
		key := allowanceKey(asset, owner, spender)
		current, err := getBalance(tx, key)
		if err != nil {
			return err
		}
		var ok bool
		total, ok = current.Add(amount)
		if !ok {
			return ErrBalanceOverflow
		}
		return putBalance(tx, key, total)
	})
	if err != nil {
		return err
	}

	l.publish(EventApproval, ApprovalEvent{Asset: asset, Owner: owner, Spender: spender, Value: total})
	return nil
}

// transferIn 事务内余额划转，返回实际划转数量
func transferIn(
	tx storage.BadgerTransaction,
	meta Metadata,
	asset types.AssetID,
	from, to types.AccountID,
	amount types.Balance,
	keepAlive bool,
) (types.Balance, error) {
	if amount.IsZero() {
		return types.Balance{}, nil
	}

	fromKey := balanceKey(asset, from)
	fromBalance, err := getBalance(tx, fromKey)
	if err != nil {
		return types.Balance{}, err
	}
	remaining, ok := fromBalance.Sub(amount)
	if !ok {
		return types.Balance{}, fmt.Errorf("%w: 余额=%s, 请求=%s", ErrInsufficientBalance, fromBalance, amount)
	}
	if from == to {
		return amount, nil
	}

	moved := amount
	if remaining.Cmp(meta.MinBalance) < 0 {
		if keepAlive {
			return types.Balance{}, ErrWouldDie
		}
		// 剩余粉尘随转账一并转出
		moved = fromBalance
		remaining = types.Balance{}
	}

	toKey := balanceKey(asset, to)
	toBalance, err := getBalance(tx, toKey)
	if err != nil {
		return types.Balance{}, err
	}
	credited, ok := toBalance.Add(moved)
	if !ok {
		return types.Balance{}, ErrBalanceOverflow
	}
	if credited.Cmp(meta.MinBalance) < 0 {
		return types.Balance{}, ErrBelowMinimum
	}

	if err := putBalance(tx, fromKey, remaining); err != nil {
		return types.Balance{}, err
	}
	if err := putBalance(tx, toKey, credited); err != nil {
		return types.Balance{}, err
	}
	return moved, nil
}
