package psp22

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/weisyn/assetbridge/internal/core/psp22/weight"
)

// ============================================================================
//                          Prometheus 监控指标
// ============================================================================

// Metrics 调度桥指标
type Metrics struct {
	dispatchTotal *prometheus.CounterVec
	weightCharged *prometheus.CounterVec
}

// NewMetrics 创建指标并注册到 reg；reg 为空时只创建不注册
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		// dispatchTotal 调度次数（按操作和结果分类）
		dispatchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "assetbridge",
				Subsystem: "psp22",
				Name:      "dispatch_total",
				Help:      "Total number of PSP22 dispatches by operation and result",
			},
			[]string{"operation", "result"},
		),
		// weightCharged 预扣权重累计值
		weightCharged: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "assetbridge",
				Subsystem: "psp22",
				Name:      "weight_charged_total",
				Help:      "Total weight charged up front for mutating PSP22 operations",
			},
			[]string{"operation"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.dispatchTotal, m.weightCharged} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeDispatch(op Operation, result string) {
	if m == nil {
		return
	}
	m.dispatchTotal.WithLabelValues(op.String(), result).Inc()
}

func (m *Metrics) observeCharge(op Operation, w weight.Weight) {
	if m == nil {
		return
	}
	m.weightCharged.WithLabelValues(op.String()).Add(float64(w))
}
