package psp22

import (
	"fmt"
	"sort"

	"github.com/weisyn/assetbridge/internal/core/psp22/weight"
)

// Selector 调用方提供的 32 位函数选择器
type Selector uint32

// String 以 0x%08x 形式展示
func (s Selector) String() string {
	return fmt.Sprintf("0x%08x", uint32(s))
}

// 线路选择器（与已部署合约保持逐位一致）
const (
	SelectorTokenName         Selector = 0x3d261bd4
	SelectorTokenSymbol       Selector = 0x34205be5
	SelectorTokenDecimals     Selector = 0x7271b782
	SelectorTotalSupply       Selector = 0x162df8c2
	SelectorBalanceOf         Selector = 0x6568382f
	SelectorAllowance         Selector = 0x4d47d921
	SelectorTransfer          Selector = 0xdb20f9f5
	SelectorTransferFrom      Selector = 0x54b3c76e
	SelectorApprove           Selector = 0xb20f1bbd
	SelectorIncreaseAllowance Selector = 0x96d6b57a
	SelectorDecreaseAllowance Selector = 0xfecb57d5
)

// Operation 选择器解析后的操作
type Operation uint8

const (
	OpUnknown Operation = iota
	OpTokenName
	OpTokenSymbol
	OpTokenDecimals
	OpTotalSupply
	OpBalanceOf
	OpAllowance
	OpTransfer
	OpTransferFrom
	OpApprove
	OpDecreaseAllowance
)

var operationNames = map[Operation]string{
	OpUnknown:           "unknown",
	OpTokenName:         "token_name",
	OpTokenSymbol:       "token_symbol",
	OpTokenDecimals:     "token_decimals",
	OpTotalSupply:       "total_supply",
	OpBalanceOf:         "balance_of",
	OpAllowance:         "allowance",
	OpTransfer:          "transfer",
	OpTransferFrom:      "transfer_from",
	OpApprove:           "approve",
	OpDecreaseAllowance: "decrease_allowance",
}

// String 返回操作名称
func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return "unknown"
}

// Route 选择器路由表项
type Route struct {
	Selector    Selector
	Operation   Operation
	Mutating    bool
	Class       weight.Class
	Implemented bool
}

// routes 静态路由表，初始化后只读
var routes = map[Selector]Route{
	SelectorTokenName:         {SelectorTokenName, OpTokenName, false, weight.ClassNone, true},
	SelectorTokenSymbol:       {SelectorTokenSymbol, OpTokenSymbol, false, weight.ClassNone, true},
	SelectorTokenDecimals:     {SelectorTokenDecimals, OpTokenDecimals, false, weight.ClassNone, true},
	SelectorTotalSupply:       {SelectorTotalSupply, OpTotalSupply, false, weight.ClassNone, true},
	SelectorBalanceOf:         {SelectorBalanceOf, OpBalanceOf, false, weight.ClassNone, true},
	SelectorAllowance:         {SelectorAllowance, OpAllowance, false, weight.ClassNone, true},
	SelectorTransfer:          {SelectorTransfer, OpTransfer, true, weight.ClassTransfer, true},
	SelectorTransferFrom:      {SelectorTransferFrom, OpTransferFrom, true, weight.ClassTransfer, true},
	SelectorApprove:           {SelectorApprove, OpApprove, true, weight.ClassApprove, true},
	SelectorIncreaseAllowance: {SelectorIncreaseAllowance, OpApprove, true, weight.ClassApprove, true},
	SelectorDecreaseAllowance: {SelectorDecreaseAllowance, OpDecreaseAllowance, true, weight.ClassApprove, false},
}

// Lookup 查找选择器对应的路由
func Lookup(sel Selector) (Route, bool) {
	r, ok := routes[sel]
	return r, ok
}

// Routes 返回按选择器排序的路由表副本
func Routes() []Route {
	out := make([]Route, 0, len(routes))
	for _, r := range routes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Selector < out[j].Selector })
	return out
}
