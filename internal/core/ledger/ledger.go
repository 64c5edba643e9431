// Package ledger 实现 PSP22 桥接使用的多资产账本
//
// 🎯 **核心职责**：
// - 按资产维护余额、授权额度与总供应量
// - 校验最小余额（存活）规则
// - 资产元数据缓存
// - 发布 Transfer / Approval 事件
//
// 所有写操作在一个 BadgerDB 事务内完成，失败时整体回滚。
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/event"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/storage"
	ledgeriface "github.com/weisyn/assetbridge/pkg/interfaces/ledger"
	"github.com/weisyn/assetbridge/pkg/types"
)

// Metadata 资产元数据
type Metadata struct {
	Name       []byte        `json:"name"`
	Symbol     []byte        `json:"symbol"`
	Decimals   uint8         `json:"decimals"`
	MinBalance types.Balance `json:"min_balance"`
}

// AssetInfo 资产概要
type AssetInfo struct {
	ID          types.AssetID
	Metadata    Metadata
	TotalSupply types.Balance
}

// Ledger 基于 BadgerDB 的账本
type Ledger struct {
	// storage 存储服务（必需）
	storage storage.BadgerStore
	// cache 元数据缓存（可选）
	cache storage.MemoryStore
	// eventBus 事件总线（可选）
	eventBus event.EventBus
	// logger 日志记录器（可选）
	logger log.Logger
}

var _ ledgeriface.Adapter = (*Ledger)(nil)

// New 创建账本
func New(store storage.BadgerStore, cache storage.MemoryStore, eventBus event.EventBus, logger log.Logger) (*Ledger, error) {
	if store == nil {
		return nil, fmt.Errorf("storage 不能为空")
	}
	return &Ledger{
		storage:  store,
		cache:    cache,
		eventBus: eventBus,
		logger:   logger,
	}, nil
}

// ==================== 查询 ====================

// TotalSupply 未知资产返回 0
func (l *Ledger) TotalSupply(ctx context.Context, asset types.AssetID) (types.Balance, error) {
	return l.readBalance(ctx, supplyKey(asset))
}

// Balance 未知资产或账户返回 0
func (l *Ledger) Balance(ctx context.Context, asset types.AssetID, who types.AccountID) (types.Balance, error) {
	return l.readBalance(ctx, balanceKey(asset, who))
}

// Allowance 未授权返回 0
func (l *Ledger) Allowance(ctx context.Context, asset types.AssetID, owner, spender types.AccountID) (types.Balance, error) {
	return l.readBalance(ctx, allowanceKey(asset, owner, spender))
}

// Name 未知资产返回空
func (l *Ledger) Name(ctx context.Context, asset types.AssetID) ([]byte, error) {
	meta, _, err := l.Metadata(ctx, asset)
	if err != nil {
		return nil, err
	}
	return meta.Name, nil
}

// Symbol 未知资产返回空
func (l *Ledger) Symbol(ctx context.Context, asset types.AssetID) ([]byte, error) {
	meta, _, err := l.Metadata(ctx, asset)
	if err != nil {
		return nil, err
	}
	return meta.Symbol, nil
}

// Decimals 未知资产返回 0
func (l *Ledger) Decimals(ctx context.Context, asset types.AssetID) (uint8, error) {
	meta, _, err := l.Metadata(ctx, asset)
	if err != nil {
		return 0, err
	}
	return meta.Decimals, nil
}

// Metadata 读取资产元数据，优先命中缓存
func (l *Ledger) Metadata(ctx context.Context, asset types.AssetID) (Metadata, bool, error) {
	if l.cache != nil {
		if raw, found, err := l.cache.Get(ctx, metadataCacheKey(asset)); err == nil && found {
			var meta Metadata
			if err := json.Unmarshal(raw, &meta); err == nil {
				return meta, true, nil
			}
		}
	}

	raw, err := l.storage.Get(ctx, assetKey(asset))
	if err != nil {
		return Metadata{}, false, fmt.Errorf("读取资产元数据失败: %w", err)
	}
	if raw == nil {
		return Metadata{}, false, nil
	}
	var meta Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return Metadata{}, false, fmt.Errorf("解析资产元数据失败: %w", err)
	}

	if l.cache != nil {
		if err := l.cache.Set(ctx, metadataCacheKey(asset), raw); err != nil && l.logger != nil {
			l.logger.Warnf("写入元数据缓存失败: asset=%d, err=%v", asset, err)
		}
	}
	return meta, true, nil
}

// Assets 按资产ID升序列出全部资产
func (l *Ledger) Assets(ctx context.Context) ([]AssetInfo, error) {
	entries, err := l.storage.PrefixScan(ctx, []byte(assetPrefix))
	if err != nil {
		return nil, fmt.Errorf("扫描资产失败: %w", err)
	}

	infos := make([]AssetInfo, 0, len(entries))
	for key, raw := range entries {
		id, ok := assetFromKey([]byte(key))
		if !ok {
			continue
		}
		var meta Metadata
		if err := json.Unmarshal(raw, &meta); err != nil {
			return nil, fmt.Errorf("解析资产元数据失败: asset=%d: %w", id, err)
		}
		supply, err := l.TotalSupply(ctx, id)
		if err != nil {
			return nil, err
		}
		infos = append(infos, AssetInfo{ID: id, Metadata: meta, TotalSupply: supply})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos, nil
}

func (l *Ledger) readBalance(ctx context.Context, key []byte) (types.Balance, error) {
	raw, err := l.storage.Get(ctx, key)
	if err != nil {
		return types.Balance{}, fmt.Errorf("读取余额失败: %w", err)
	}
	return decodeBalance(raw)
}

func (l *Ledger) invalidate(ctx context.Context, asset types.AssetID) {
	if l.cache == nil {
		return
	}
	if err := l.cache.Delete(ctx, metadataCacheKey(asset)); err != nil && l.logger != nil {
		l.logger.Warnf("清除元数据缓存失败: asset=%d, err=%v", asset, err)
	}
}

// ==================== 事务内辅助 ====================

func decodeBalance(raw []byte) (types.Balance, error) {
	if raw == nil {
		return types.Balance{}, nil
	}
	return types.BalanceFromLE(raw)
}

func loadMetadata(tx storage.BadgerTransaction, asset types.AssetID) (Metadata, error) {
	raw, err := tx.Get(assetKey(asset))
	if err != nil {
		return Metadata{}, err
	}
	if raw == nil {
		return Metadata{}, fmt.Errorf("%w: %d", ErrUnknownAsset, asset)
	}
	var meta Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return Metadata{}, fmt.Errorf("解析资产元数据失败: %w", err)
	}
	return meta, nil
}

func getBalance(tx storage.BadgerTransaction, key []byte) (types.Balance, error) {
	raw, err := tx.Get(key)
	if err != nil {
		return types.Balance{}, err
	}
	return decodeBalance(raw)
}

// putBalance 零值删除键
func putBalance(tx storage.BadgerTransaction, key []byte, value types.Balance) error {
	if value.IsZero() {
		return tx.Delete(key)
	}
	le := value.LE()
	return tx.Set(key, le[:])
}
