package configs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/assetbridge/pkg/types"
)

func TestDefaultConfigParses(t *testing.T) {
	var cfg types.AppConfig
	require.NoError(t, json.Unmarshal(Default(), &cfg))
	require.NotNil(t, cfg.Bridge)
	require.NotNil(t, cfg.Bridge.TransferWeight)
	assert.Equal(t, uint64(53_462_000), *cfg.Bridge.TransferWeight)
	require.NotNil(t, cfg.Wasm.HostModule)
	assert.Equal(t, "env", *cfg.Wasm.HostModule)
}
