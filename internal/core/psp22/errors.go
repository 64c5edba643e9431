package psp22

import (
	"errors"
	"fmt"

	logiface "github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/assetbridge/pkg/types"
)

// ============================================================================
// 调度错误：内部原因 → 外部状态码
// ============================================================================
//
// 内部使用 Failure 携带完整上下文（选择器、操作、底层错误）用于运维排查；
// 跨越信任边界时只返回 RetCode，不携带任何载荷。

// Cause 内部失败原因
type Cause uint8

const (
	CauseUnknownSelector Cause = iota + 1
	CauseUnimplemented
	CauseDecodeFailure
	CauseOutputTooLarge
	CauseOutOfWeight
	CauseLedgerFailure
)

// String 返回原因名称
func (c Cause) String() string {
	switch c {
	case CauseUnknownSelector:
		return "unknown_selector"
	case CauseUnimplemented:
		return "unimplemented"
	case CauseDecodeFailure:
		return "decode_failure"
	case CauseOutputTooLarge:
		return "output_too_large"
	case CauseOutOfWeight:
		return "out_of_weight"
	case CauseLedgerFailure:
		return "ledger_failure"
	default:
		return "unknown"
	}
}

// RetCode 返回给沙箱调用方的状态码
type RetCode uint32

const (
	// RetSuccess 成功
	RetSuccess RetCode = 0

	// RetUnknownSelector 选择器不在路由表中
	RetUnknownSelector RetCode = 1

	// RetUnimplemented 选择器已保留但未实现
	RetUnimplemented RetCode = 2

	// RetDecodeFailure 参数解码失败
	RetDecodeFailure RetCode = 3

	// RetOutputTooLarge 结果超出输出容量
	RetOutputTooLarge RetCode = 4

	// RetOutOfWeight 权重预算不足
	RetOutOfWeight RetCode = 5

	// RetLedgerFailure 账本拒绝或执行失败
	RetLedgerFailure RetCode = 6
)

var retCodeMessages = map[RetCode]string{
	RetSuccess:         "成功",
	RetUnknownSelector: "未知选择器",
	RetUnimplemented:   "功能未实现",
	RetDecodeFailure:   "参数解码失败",
	RetOutputTooLarge:  "输出超过缓冲区容量",
	RetOutOfWeight:     "权重不足",
	RetLedgerFailure:   "账本操作失败",
}

// GetErrorMessage 获取状态码对应的说明
func GetErrorMessage(code RetCode) string {
	if msg, ok := retCodeMessages[code]; ok {
		return msg
	}
	return fmt.Sprintf("未知状态码: %d", uint32(code))
}

// Code 返回原因对应的外部状态码
func (c Cause) Code() RetCode {
	switch c {
	case CauseUnknownSelector:
		return RetUnknownSelector
	case CauseUnimplemented:
		return RetUnimplemented
	case CauseDecodeFailure:
		return RetDecodeFailure
	case CauseOutputTooLarge:
		return RetOutputTooLarge
	case CauseOutOfWeight:
		return RetOutOfWeight
	default:
		return RetLedgerFailure
	}
}

// Failure 调度失败的完整内部描述
type Failure struct {
	Cause     Cause
	Selector  Selector
	Operation Operation
	Err       error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return fmt.Sprintf("psp22 %s(%s): %s", f.Operation, f.Selector, f.Cause)
	}
	return fmt.Sprintf("psp22 %s(%s): %s: %v", f.Operation, f.Selector, f.Cause, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func newFailure(cause Cause, route Route, err error) *Failure {
	return &Failure{Cause: cause, Selector: route.Selector, Operation: route.Operation, Err: err}
}

// AsFailure 从错误链中提取 Failure
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// Translator 失败收窄策略
type Translator struct {
	logger logiface.Logger
}

// NewTranslator 创建翻译器
func NewTranslator(logger logiface.Logger) *Translator {
	return &Translator{logger: logger}
}

// Translate 记录完整失败信息并只返回外部状态码
func (t *Translator) Translate(callID string, caller types.AccountID, f *Failure) RetCode {
	if f == nil {
		return RetSuccess
	}
	code := f.Cause.Code()
	if t.logger != nil {
		t.logger.With(
			"call_id", callID,
			"selector", f.Selector.String(),
			"operation", f.Operation.String(),
			"caller", caller.String(),
			"cause", f.Cause.String(),
			"code", uint32(code),
		).Errorf("PSP22 调用失败: %v", f)
	}
	return code
}
