package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/storage"
	"github.com/weisyn/assetbridge/pkg/types"
)

// CreateAsset 注册新资产
func (l *Ledger) CreateAsset(ctx context.Context, asset types.AssetID, meta Metadata) error {
	raw, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("序列化资产元数据失败: %w", err)
	}

	err = l.storage.RunInTransaction(ctx, func(tx storage.BadgerTransaction) error {
		exists, err := tx.Exists(assetKey(asset))
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: %d", ErrAssetExists, asset)
		}
		return tx.Set(assetKey(asset), raw)
	})
	if err != nil {
		return err
	}

	l.invalidate(ctx, asset)
	if l.logger != nil {
		l.logger.Infof("资产已创建: asset=%d, symbol=%s, min_balance=%s", asset, meta.Symbol, meta.MinBalance)
	}
	return nil
}

// SetMetadata 更新名称、符号与精度，最小余额保持不变
func (l *Ledger) SetMetadata(ctx context.Context, asset types.AssetID, name, symbol []byte, decimals uint8) error {
	err := l.storage.RunInTransaction(ctx, func(tx storage.BadgerTransaction) error {
		meta, err := loadMetadata(tx, asset)
		if err != nil {
			return err
		}
		meta.Name = name
		meta.Symbol = symbol
		meta.Decimals = decimals
		raw, err := json.Marshal(meta)
		if err != nil {
			return fmt.Errorf("序列化资产元数据失败: %w", err)
		}
		return tx.Set(assetKey(asset), raw)
	})
	if err != nil {
		return err
	}
	l.invalidate(ctx, asset)
	return nil
}

// Mint 向 to 铸造 amount，同时增加总供应量
func (l *Ledger) Mint(ctx context.Context, asset types.AssetID, to types.AccountID, amount types.Balance) error {
	err := l.storage.RunInTransaction(ctx, func(tx storage.BadgerTransaction) error {
		meta, err := loadMetadata(tx, asset)
		if err != nil {
			return err
		}

		supply, err := getBalance(tx, supplyKey(asset))
		if err != nil {
			return err
		}
		newSupply, ok := supply.Add(amount)
		if !ok {
			return ErrBalanceOverflow
		}

		key := balanceKey(asset, to)
		current, err := getBalance(tx, key)
		if err != nil {
			return err
		}
		credited, ok := current.Add(amount)
		if !ok {
			return ErrBalanceOverflow
		}
		if credited.Cmp(meta.MinBalance) < 0 {
			return ErrBelowMinimum
		}

		if err := putBalance(tx, supplyKey(asset), newSupply); err != nil {
			return err
		}
		return putBalance(tx, key, credited)
	})
	if err != nil {
		return err
	}

	if !amount.IsZero() {
		l.publish(EventTransfer, TransferEvent{Asset: asset, To: to, Value: amount})
	}
	return nil
}
