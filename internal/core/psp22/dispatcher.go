// Package psp22 实现 PSP22 调度桥
//
// 🌉 **PSP22 调度桥 (PSP22 Dispatch Bridge)**
//
// 沙箱中的合约只能通过本桥访问原生资产账本：
//  1. 解析选择器（未知 → UnknownSelector，保留未实现 → Unimplemented）
//  2. 变更类操作预扣 base + base/10 权重（不足 → OutOfWeight）
//  3. 严格解码参数（失败 → DecodeFailure，已扣权重不退还）
//  4. 调用账本适配器（失败 → LedgerFailure）
//  5. 编码结果并检查输出容量（超出 → OutputTooLarge）
//
// 所有失败都在 Translator 中记录完整上下文，跨边界只返回 RetCode。
package psp22

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/weisyn/assetbridge/internal/core/psp22/codec"
	"github.com/weisyn/assetbridge/internal/core/psp22/weight"
	logiface "github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/assetbridge/pkg/interfaces/ledger"
	"github.com/weisyn/assetbridge/pkg/types"
)

var (
	// ErrNoLedger 调用环境未提供账本
	ErrNoLedger = errors.New("调用环境缺少账本适配器")

	// ErrNoMeter 变更操作的调用环境未提供计量器
	ErrNoMeter = errors.New("调用环境缺少权重计量器")
)

// Environment 单次调用的执行环境
//
// 每次调用显式传入，调度器本身不持有任何调用相关状态。
type Environment struct {
	Caller types.AccountID
	Meter  weight.Meter
	Ledger ledger.Adapter
}

// Result 调度结果
//
// Status 为 RetSuccess 时 Output 为编码后的结果；否则 Output 为空，
// Err 携带仅供宿主侧使用的内部失败详情。
type Result struct {
	Status RetCode
	Output []byte
	Err    *Failure
}

// OK 是否成功
func (r Result) OK() bool {
	return r.Status == RetSuccess
}

// Dispatcher PSP22 调度器，可被并发使用
type Dispatcher struct {
	logger     logiface.Logger
	schedule   weight.Schedule
	translator *Translator
	metrics    *Metrics
}

// NewDispatcher 创建调度器，metrics 可为空
func NewDispatcher(logger logiface.Logger, schedule weight.Schedule, metrics *Metrics) *Dispatcher {
	return &Dispatcher{
		logger:     logger,
		schedule:   schedule,
		translator: NewTranslator(logger),
		metrics:    metrics,
	}
}

// Schedule 返回当前权重表
func (d *Dispatcher) Schedule() weight.Schedule {
	return d.schedule
}

// Dispatch 执行一次桥调用
func (d *Dispatcher) Dispatch(ctx context.Context, env Environment, selector uint32, input []byte, outCap uint32) Result {
	callID := uuid.NewString()
	sel := Selector(selector)

	route, ok := Lookup(sel)
	if !ok {
		route = Route{Selector: sel, Operation: OpUnknown}
		return d.fail(callID, env, newFailure(CauseUnknownSelector, route, nil))
	}
	if !route.Implemented {
		return d.fail(callID, env, newFailure(CauseUnimplemented, route, nil))
	}
	if env.Ledger == nil {
		return d.fail(callID, env, newFailure(CauseLedgerFailure, route, ErrNoLedger))
	}

	if route.Mutating {
		if f := d.charge(env, route); f != nil {
			return d.fail(callID, env, f)
		}
	}

	encoded, f := d.handle(ctx, env, route, input)
	if f != nil {
		return d.fail(callID, env, f)
	}

	out, err := codec.WriteOutput(encoded, outCap)
	if err != nil {
		return d.fail(callID, env, newFailure(CauseOutputTooLarge, route, err))
	}

	d.metrics.observeDispatch(route.Operation, "success")
	if d.logger != nil {
		d.logger.Debugf("PSP22 调用成功: call_id=%s op=%s selector=%s output=%d字节",
			callID, route.Operation, route.Selector, len(out))
	}
	return Result{Status: RetSuccess, Output: out}
}

// charge 在解码前预扣权重
func (d *Dispatcher) charge(env Environment, route Route) *Failure {
	if env.Meter == nil {
		return newFailure(CauseOutOfWeight, route, ErrNoMeter)
	}
	w := d.schedule.Charge(route.Class)
	if err := env.Meter.Charge(w); err != nil {
		return newFailure(CauseOutOfWeight, route, err)
	}
	d.metrics.observeCharge(route.Operation, w)
	return nil
}

func (d *Dispatcher) fail(callID string, env Environment, f *Failure) Result {
	d.metrics.observeDispatch(f.Operation, f.Cause.String())
	return Result{Status: d.translator.Translate(callID, env.Caller, f), Err: f}
}
