package psp22

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/assetbridge/internal/core/psp22/weight"
)

func TestRouteTable(t *testing.T) {
	tests := []struct {
		selector    uint32
		op          Operation
		mutating    bool
		class       weight.Class
		implemented bool
	}{
		{0x3d261bd4, OpTokenName, false, weight.ClassNone, true},
		{0x34205be5, OpTokenSymbol, false, weight.ClassNone, true},
		{0x7271b782, OpTokenDecimals, false, weight.ClassNone, true},
		{0x162df8c2, OpTotalSupply, false, weight.ClassNone, true},
		{0x6568382f, OpBalanceOf, false, weight.ClassNone, true},
		{0x4d47d921, OpAllowance, false, weight.ClassNone, true},
		{0xdb20f9f5, OpTransfer, true, weight.ClassTransfer, true},
		{0x54b3c76e, OpTransferFrom, true, weight.ClassTransfer, true},
		{0xb20f1bbd, OpApprove, true, weight.ClassApprove, true},
		{0x96d6b57a, OpApprove, true, weight.ClassApprove, true},
		{0xfecb57d5, OpDecreaseAllowance, true, weight.ClassApprove, false},
	}

	for _, tt := range tests {
		t.Run(Selector(tt.selector).String(), func(t *testing.T) {
			route, ok := Lookup(Selector(tt.selector))
			require.True(t, ok)
			assert.Equal(t, tt.op, route.Operation)
			assert.Equal(t, tt.mutating, route.Mutating)
			assert.Equal(t, tt.class, route.Class)
			assert.Equal(t, tt.implemented, route.Implemented)
		})
	}

	assert.Len(t, Routes(), len(tests))
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup(0xdeadbeef)
	assert.False(t, ok)
	assert.Equal(t, "0xdeadbeef", Selector(0xdeadbeef).String())
	assert.Equal(t, "0x00000001", Selector(1).String())
}

func TestRoutesSortedCopy(t *testing.T) {
	rs := Routes()
	for i := 1; i < len(rs); i++ {
		assert.Less(t, rs[i-1].Selector, rs[i].Selector)
	}
	rs[0].Implemented = !rs[0].Implemented
	again, _ := Lookup(rs[0].Selector)
	assert.NotEqual(t, rs[0].Implemented, again.Implemented)
}
