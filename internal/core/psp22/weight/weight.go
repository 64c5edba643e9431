// Package weight 提供调度桥的权重计量
//
// 变更类操作在执行前按 base + base/10 预先扣费，扣费失败即拒绝执行。
// 扣费不退还，执行后也不做调整。
package weight

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// Weight 权重单位（ref_time）
type Weight uint64

// ErrOutOfWeight 剩余权重不足
var ErrOutOfWeight = errors.New("权重不足")

// Meter 单次调用的权重计量器
type Meter interface {
	// Charge 原子扣除 w，不足时返回 ErrOutOfWeight 且不做任何扣除
	Charge(w Weight) error

	// Remaining 剩余可用权重
	Remaining() Weight

	// Consumed 已消耗权重
	Consumed() Weight
}

// GasMeter 带预算上限的计量器
type GasMeter struct {
	mu       sync.Mutex
	limit    Weight
	consumed Weight
}

// NewGasMeter 创建预算为 limit 的计量器
func NewGasMeter(limit Weight) *GasMeter {
	return &GasMeter{limit: limit}
}

// Charge 实现 Meter
func (m *GasMeter) Charge(w Weight) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	remaining := m.limit - m.consumed
	if w > remaining {
		return fmt.Errorf("%w: 需要%d, 剩余%d", ErrOutOfWeight, w, remaining)
	}
	m.consumed += w
	return nil
}

// Remaining 实现 Meter
func (m *GasMeter) Remaining() Weight {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.limit - m.consumed
}

// Consumed 实现 Meter
func (m *GasMeter) Consumed() Weight {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.consumed
}

// Limit 预算上限
func (m *GasMeter) Limit() Weight {
	return m.limit
}

// Surcharged 返回 base + base/10，溢出时饱和到最大值
func Surcharged(base Weight) Weight {
	extra := base / 10
	if base > math.MaxUint64-extra {
		return math.MaxUint64
	}
	return base + extra
}
