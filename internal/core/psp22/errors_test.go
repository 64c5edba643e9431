package psp22

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCauseCodes(t *testing.T) {
	tests := map[Cause]RetCode{
		CauseUnknownSelector: 1,
		CauseUnimplemented:   2,
		CauseDecodeFailure:   3,
		CauseOutputTooLarge:  4,
		CauseOutOfWeight:     5,
		CauseLedgerFailure:   6,
	}
	for cause, code := range tests {
		assert.Equal(t, code, cause.Code(), cause.String())
		assert.NotContains(t, GetErrorMessage(code), "未知状态码")
	}
	assert.Equal(t, RetSuccess, NewTranslator(nil).Translate("id", alice, nil))
	assert.Contains(t, GetErrorMessage(RetCode(99)), "99")
}

func TestFailureUnwrap(t *testing.T) {
	inner := errors.New("boom")
	route, _ := Lookup(SelectorTransfer)
	f := newFailure(CauseLedgerFailure, route, inner)

	wrapped := fmt.Errorf("wrapped: %w", f)
	got, ok := AsFailure(wrapped)
	require.True(t, ok)
	assert.Same(t, f, got)
	assert.ErrorIs(t, wrapped, inner)
	assert.Contains(t, f.Error(), "transfer(0xdb20f9f5)")

	_, ok = AsFailure(inner)
	assert.False(t, ok)
}
