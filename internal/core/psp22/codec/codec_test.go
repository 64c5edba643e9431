package codec

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/spacemeshos/go-scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/assetbridge/pkg/types"
)

func newFuzzer() *fuzz.Fuzzer {
	return fuzz.New().NilChance(0).Funcs(func(b *types.Balance, c fuzz.Continue) {
		*b = types.BalanceFromWords(c.Uint64(), c.Uint64())
	})
}

type message[T any] interface {
	*T
	scale.Encodable
	scale.Decodable
}

// roundTrip 随机填充请求，编码后再解码，结果必须一致
func roundTrip[T any, PT message[T]](t *testing.T, wantLen int) {
	t.Helper()
	f := newFuzzer()
	for i := 0; i < 50; i++ {
		var in T
		f.Fuzz(&in)

		raw, err := Encode(PT(&in))
		require.NoError(t, err)
		require.Len(t, raw, wantLen)

		var out T
		require.NoError(t, Decode(raw, PT(&out)))
		assert.Equal(t, in, out)
	}
}

func TestRequestRoundTrip(t *testing.T) {
	t.Run("asset", func(t *testing.T) { roundTrip[AssetRequest](t, 4) })
	t.Run("balance_of", func(t *testing.T) { roundTrip[BalanceOfRequest](t, 4+32) })
	t.Run("allowance", func(t *testing.T) { roundTrip[AllowanceRequest](t, 4+32+32) })
	t.Run("transfer", func(t *testing.T) { roundTrip[TransferRequest](t, 4+32+16) })
	t.Run("transfer_from", func(t *testing.T) { roundTrip[TransferFromRequest](t, 4+32+32+16) })
	t.Run("approve", func(t *testing.T) { roundTrip[ApproveRequest](t, 4+32+16) })
}

func TestTransferRequestLayout(t *testing.T) {
	req := TransferRequest{Asset: 0x01020304, Value: types.NewBalance(5)}
	req.To[0] = 0xaa

	raw, err := Encode(&req)
	require.NoError(t, err)

	// 资产 ID 小端
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, raw[0:4])
	assert.Equal(t, byte(0xaa), raw[4])
	// 余额小端
	assert.Equal(t, byte(5), raw[36])
}

func TestDecodeRejectsMalformed(t *testing.T) {
	valid, err := Encode(&TransferRequest{Asset: 7, Value: types.NewBalance(1)})
	require.NoError(t, err)

	tests := []struct {
		name  string
		input []byte
	}{
		{"空输入", nil},
		{"截断", valid[:len(valid)-1]},
		{"只有资产", valid[:4]},
		{"多余字节", append(append([]byte{}, valid...), 0x00)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req TransferRequest
			assert.Error(t, Decode(tt.input, &req))
		})
	}
}

func TestDecodeTrailingBytes(t *testing.T) {
	var req AssetRequest
	err := Decode([]byte{1, 0, 0, 0, 9}, &req)
	assert.ErrorIs(t, err, ErrTrailingBytes)
}

func TestBytesResult(t *testing.T) {
	out, err := EncodeBytes([]byte("Trappist"))
	require.NoError(t, err)
	// compact(8) = 8<<2 = 0x20
	assert.Equal(t, byte(0x20), out[0])
	assert.Equal(t, "Trappist", string(out[1:]))

	back, err := DecodeBytes(out)
	require.NoError(t, err)
	assert.Equal(t, "Trappist", string(back))
}

func TestEmptyBytesResult(t *testing.T) {
	out, err := EncodeBytes(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, out)
}

func TestBalanceResult(t *testing.T) {
	out := EncodeBalance(types.NewBalance(1000))
	require.Len(t, out, 16)

	b, err := DecodeBalance(out)
	require.NoError(t, err)
	assert.Equal(t, "1000", b.String())

	_, err = DecodeBalance(out[:15])
	assert.Error(t, err)
}

func TestDecimalsResult(t *testing.T) {
	out := EncodeDecimals(12)
	assert.Equal(t, []byte{12}, out)

	var r DecimalsResult
	require.NoError(t, Decode(out, &r))
	assert.Equal(t, uint8(12), r.Value)
}

func TestWriteOutput(t *testing.T) {
	data := make([]byte, 16)

	out, err := WriteOutput(data, 16)
	require.NoError(t, err)
	assert.Len(t, out, 16)

	out, err = WriteOutput(data, 15)
	assert.ErrorIs(t, err, ErrOutputTooLarge)
	assert.Nil(t, out, "超出容量时不得截断输出")

	out, err = WriteOutput(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, out)
}
