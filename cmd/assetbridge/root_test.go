package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/assetbridge/internal/core/psp22"
	"github.com/weisyn/assetbridge/internal/core/psp22/weight"
	"github.com/weisyn/assetbridge/pkg/types"
)

func TestParseSelector(t *testing.T) {
	v, err := parseSelector("0x6568382F")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x6568382f), v)

	v, err = parseSelector("deadbeef")
	require.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), v)

	_, err = parseSelector("0x1ffffffff")
	assert.Error(t, err)
}

func TestParseHexAndAmount(t *testing.T) {
	raw, err := parseHex("0x0102ff")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 0xff}, raw)

	raw, err = parseHex("")
	require.NoError(t, err)
	assert.Empty(t, raw)

	_, err = parseHex("0xzz")
	assert.Error(t, err)

	amount, err := parseAmount("1_000_000")
	require.NoError(t, err)
	assert.Equal(t, types.NewBalance(1_000_000), amount)
}

func TestLoadProviderEmbedded(t *testing.T) {
	globalFlags.ConfigPath = ""
	provider, err := loadProvider()
	require.NoError(t, err)

	schedule := psp22.ScheduleFromOptions(provider.GetBridge())
	assert.Equal(t, weight.Weight(58_808_200), schedule.Charge(weight.ClassTransfer))
	assert.Equal(t, weight.Weight(38_264_600), schedule.Charge(weight.ClassApprove))
}

func TestLoadProviderMissingFile(t *testing.T) {
	globalFlags.ConfigPath = "/nonexistent/assetbridge.json"
	defer func() { globalFlags.ConfigPath = "" }()

	_, err := loadProvider()
	assert.Error(t, err)
}
