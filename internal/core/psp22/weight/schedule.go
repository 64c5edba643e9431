package weight

// Class 变更操作的权重类别
type Class uint8

const (
	// ClassNone 只读操作，不计量
	ClassNone Class = iota
	// ClassTransfer 转账类（transfer、transfer_from）
	ClassTransfer
	// ClassApprove 授权类
	ClassApprove
)

// String 返回类别名称
func (c Class) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassTransfer:
		return "transfer"
	case ClassApprove:
		return "approve"
	default:
		return "unknown"
	}
}

// 资产账本基准权重（来自资产模块基准测试结果）
const (
	DefaultTransferWeight Weight = 53_462_000
	DefaultApproveWeight  Weight = 34_786_000
)

// Schedule 各类别的基准权重
type Schedule struct {
	Transfer Weight
	Approve  Weight
}

// DefaultSchedule 默认权重表
func DefaultSchedule() Schedule {
	return Schedule{
		Transfer: DefaultTransferWeight,
		Approve:  DefaultApproveWeight,
	}
}

// Base 返回类别的基准权重
func (s Schedule) Base(c Class) Weight {
	switch c {
	case ClassTransfer:
		return s.Transfer
	case ClassApprove:
		return s.Approve
	default:
		return 0
	}
}

// Charge 返回类别实际预扣的权重
func (s Schedule) Charge(c Class) Weight {
	return Surcharged(s.Base(c))
}
