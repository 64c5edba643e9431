package hostabi

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/assetbridge/internal/core/psp22"
	"github.com/weisyn/assetbridge/internal/core/psp22/codec"
	"github.com/weisyn/assetbridge/internal/core/psp22/weight"
	"github.com/weisyn/assetbridge/pkg/types"
)

// sliceMemory 以字节切片模拟客户端内存
type sliceMemory []byte

func (m sliceMemory) Read(offset, n uint32) ([]byte, bool) {
	if uint64(offset)+uint64(n) > uint64(len(m)) {
		return nil, false
	}
	return m[offset : offset+n], true
}

func (m sliceMemory) Write(offset uint32, v []byte) bool {
	if uint64(offset)+uint64(len(v)) > uint64(len(m)) {
		return false
	}
	copy(m[offset:], v)
	return true
}

func (m sliceMemory) ReadUint32Le(offset uint32) (uint32, bool) {
	b, ok := m.Read(offset, 4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b), true
}

func (m sliceMemory) WriteUint32Le(offset, v uint32) bool {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return m.Write(offset, b[:])
}

const (
	inPtr     = 0
	outLenPtr = 100
	outPtr    = 200
)

var (
	holder = types.AccountID{0x11}
	other  = types.AccountID{0x22}
)

func newHost(t *testing.T, maxInput, maxOutput uint32) (*HostFunctions, psp22.Environment, *staticLedger) {
	t.Helper()
	l := &staticLedger{balance: types.NewBalance(4242)}
	d := psp22.NewDispatcher(nil, weight.DefaultSchedule(), nil)
	env := psp22.Environment{Caller: holder, Meter: weight.NewGasMeter(1_000_000_000), Ledger: l}
	return NewHostFunctions(d, nil, maxInput, maxOutput), env, l
}

func balanceOfInput(t *testing.T) []byte {
	t.Helper()
	raw, err := codec.Encode(&codec.BalanceOfRequest{Asset: 1, Owner: holder})
	require.NoError(t, err)
	return raw
}

func TestHostCallWritesOutput(t *testing.T) {
	h, env, _ := newHost(t, 0, 0)
	mem := make(sliceMemory, 512)
	input := balanceOfInput(t)
	require.True(t, mem.Write(inPtr, input))
	require.True(t, mem.WriteUint32Le(outLenPtr, 64))

	code := h.call(context.Background(), env, mem, uint32(psp22.SelectorBalanceOf), inPtr, uint32(len(input)), outPtr, outLenPtr)
	require.Equal(t, psp22.RetSuccess, code)

	n, ok := mem.ReadUint32Le(outLenPtr)
	require.True(t, ok)
	assert.Equal(t, uint32(16), n)
	out, _ := mem.Read(outPtr, n)
	b, err := codec.DecodeBalance(out)
	require.NoError(t, err)
	assert.Equal(t, types.NewBalance(4242), b)
}

func TestHostCallCapacity(t *testing.T) {
	h, env, _ := newHost(t, 0, 8)
	mem := make(sliceMemory, 512)
	input := balanceOfInput(t)
	require.True(t, mem.Write(inPtr, input))
	require.True(t, mem.WriteUint32Le(outLenPtr, 64))

	// 宿主上限 8 字节小于 16 字节结果
	code := h.call(context.Background(), env, mem, uint32(psp22.SelectorBalanceOf), inPtr, uint32(len(input)), outPtr, outLenPtr)
	assert.Equal(t, psp22.RetOutputTooLarge, code)
	n, _ := mem.ReadUint32Le(outLenPtr)
	assert.Equal(t, uint32(64), n, "失败时不回写长度")
}

func transferInput(t *testing.T) []byte {
	t.Helper()
	raw, err := codec.Encode(&codec.TransferRequest{Asset: 1, To: other, Value: types.NewBalance(1)})
	require.NoError(t, err)
	return raw
}

func TestHostCallMemoryFaults(t *testing.T) {
	h, env, l := newHost(t, 0, 0)
	ctx := context.Background()
	sel := uint32(psp22.SelectorBalanceOf)

	mem := make(sliceMemory, 256)
	input := balanceOfInput(t)
	require.True(t, mem.Write(inPtr, input))
	require.True(t, mem.WriteUint32Le(outLenPtr, 64))

	assert.Equal(t, psp22.RetDecodeFailure, h.call(ctx, env, nil, sel, inPtr, uint32(len(input)), outPtr, outLenPtr))
	assert.Equal(t, psp22.RetDecodeFailure, h.call(ctx, env, mem, sel, 250, 36, outPtr, outLenPtr))
	assert.Equal(t, psp22.RetDecodeFailure, h.call(ctx, env, mem, sel, inPtr, uint32(len(input)), outPtr, 254))
	assert.Equal(t, psp22.RetOutputTooLarge, h.call(ctx, env, mem, sel, inPtr, uint32(len(input)), 250, outLenPtr))
	assert.Equal(t, 1, l.reads, "只有输出越界的调用到达账本")
}

// TestHostCallFaultRouting 内存读取失败时仍先路由选择器
func TestHostCallFaultRouting(t *testing.T) {
	h, env, l := newHost(t, 0, 0)
	ctx := context.Background()
	mem := make(sliceMemory, 256)
	require.True(t, mem.WriteUint32Le(outLenPtr, 64))

	assert.Equal(t, psp22.RetUnknownSelector, h.call(ctx, env, mem, 0xdeadbeef, 250, 36, outPtr, outLenPtr))
	assert.Equal(t, psp22.RetUnimplemented,
		h.call(ctx, env, mem, uint32(psp22.SelectorDecreaseAllowance), 250, 36, outPtr, outLenPtr))
	assert.Equal(t, psp22.RetUnknownSelector, h.call(ctx, env, nil, 0xdeadbeef, inPtr, 0, outPtr, outLenPtr))
	assert.Equal(t, psp22.RetUnknownSelector, h.call(ctx, env, mem, 0xdeadbeef, inPtr, 0, outPtr, 254))
	assert.Zero(t, env.Meter.Consumed())
	assert.Zero(t, l.reads)
}

// TestHostCallFaultCharges 变更类调用在读取失败时依然预扣权重
func TestHostCallFaultCharges(t *testing.T) {
	ctx := context.Background()
	sel := uint32(psp22.SelectorTransfer)
	charge := weight.DefaultSchedule().Charge(weight.ClassTransfer)
	input := transferInput(t)

	cases := []struct {
		name      string
		maxInput  uint32
		mem       guestMemory
		inPtr     uint32
		outLenPtr uint32
	}{
		{"无内存", 0, nil, inPtr, outLenPtr},
		{"输入越界", 0, make(sliceMemory, 256), 250, outLenPtr},
		{"容量越界", 0, make(sliceMemory, 256), inPtr, 254},
		{"输入超限", 8, make(sliceMemory, 256), inPtr, outLenPtr},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, env, l := newHost(t, tc.maxInput, 0)
			if mem, ok := tc.mem.(sliceMemory); ok {
				require.True(t, mem.Write(inPtr, input))
				require.True(t, mem.WriteUint32Le(outLenPtr, 64))
			}

			code := h.call(ctx, env, tc.mem, sel, tc.inPtr, uint32(len(input)), outPtr, tc.outLenPtr)
			assert.Equal(t, psp22.RetDecodeFailure, code)
			assert.Equal(t, charge, env.Meter.Consumed())
			assert.Zero(t, l.writes)
		})
	}
}

func TestHostCallInputLimit(t *testing.T) {
	h, env, l := newHost(t, 64, 0)
	mem := make(sliceMemory, 256)
	input := balanceOfInput(t)
	require.True(t, mem.Write(inPtr, input))
	require.True(t, mem.WriteUint32Le(outLenPtr, 64))

	code := h.call(context.Background(), env, mem, uint32(psp22.SelectorBalanceOf), inPtr, uint32(len(input)), outPtr, outLenPtr)
	assert.Equal(t, psp22.RetSuccess, code, "36 字节输入未超过上限")
	assert.Equal(t, 1, l.reads)
}

func TestHostCallFailureStatus(t *testing.T) {
	h, env, l := newHost(t, 0, 0)
	mem := make(sliceMemory, 256)
	require.True(t, mem.WriteUint32Le(outLenPtr, 64))

	code := h.call(context.Background(), env, mem, 0xdeadbeef, inPtr, 0, outPtr, outLenPtr)
	assert.Equal(t, psp22.RetUnknownSelector, code)
	assert.Zero(t, l.reads)
}

func TestEnvironmentContext(t *testing.T) {
	_, ok := EnvironmentFrom(context.Background())
	assert.False(t, ok)

	env := psp22.Environment{Caller: other}
	got, ok := EnvironmentFrom(WithEnvironment(context.Background(), env))
	require.True(t, ok)
	assert.Equal(t, other, got.Caller)
}
