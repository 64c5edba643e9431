package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDir(dir, 0o700))
	assert.DirExists(t, dir)
	require.NoError(t, EnsureDir(dir, 0o700), "已存在的目录不报错")

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	assert.Error(t, EnsureDir(filepath.Join(file, "sub"), 0o700))
}

func TestResolveDataPath(t *testing.T) {
	t.Setenv("ASSETBRIDGE_PROJECT_ROOT", "/srv/bridge")
	assert.Equal(t, "/srv/bridge/data/badger", ResolveDataPath("./data/badger"))
	assert.Equal(t, "/var/lib/x", ResolveDataPath("/var/lib/x"))
}
