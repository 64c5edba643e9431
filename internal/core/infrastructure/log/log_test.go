package log

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	logconfig "github.com/weisyn/assetbridge/internal/config/log"
	"github.com/weisyn/assetbridge/pkg/types"
)

// readEntries 读取 JSON 日志文件中的所有条目
func readEntries(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []map[string]interface{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	return entries
}

// TestFileOutput 文件输出为 JSON 并携带结构化字段
func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bridge.log")
	cfg := logconfig.New(&types.UserLogConfig{
		Level:    types.StringPtr("debug"),
		FilePath: types.StringPtr(path),
	})
	require.False(t, cfg.IsConsoleEnabled(), "指定文件路径时默认关闭控制台")

	logger, err := New(cfg)
	require.NoError(t, err)

	NewModuleLogger(logger, "psp22").With("call_id", "abc", "code", 3).Warnf("调用失败: %s", "decode")
	logger.Debug("调试信息")
	require.NoError(t, logger.Sync())

	entries := readEntries(t, path)
	require.Len(t, entries, 2)
	assert.Equal(t, "warn", entries[0]["level"])
	assert.Equal(t, "psp22", entries[0]["module"])
	assert.Equal(t, "abc", entries[0]["call_id"])
	assert.Equal(t, float64(3), entries[0]["code"])
	assert.Equal(t, "调用失败: decode", entries[0]["message"])
	assert.Equal(t, "debug", entries[1]["level"])
}

// TestLevelFilter 低于配置级别的日志被丢弃
func TestLevelFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bridge.log")
	logger, err := New(logconfig.New(&types.UserLogConfig{
		Level:    types.StringPtr("error"),
		FilePath: types.StringPtr(path),
	}))
	require.NoError(t, err)

	logger.Info("被过滤")
	logger.Error("保留")
	require.NoError(t, logger.Sync())

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "保留", entries[0]["message"])
}

// TestWithOddArgs 奇数个参数时忽略最后一个
func TestWithOddArgs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewFromZap(zap.New(core))

	logger.With("k1", "v1", "dangling").Info("msg")

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "v1", ctx["k1"])
	assert.Len(t, ctx, 1)
}

// TestGlobalLogger 全局记录器可替换
func TestGlobalLogger(t *testing.T) {
	old := GetLogger()
	defer SetLogger(old)

	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(NewFromZap(zap.New(core)))

	GetLogger().Infof("hello %d", 1)
	GetLogger().With("module", "ledger").Info("scoped")
	SetLogger(nil) // nil 不应覆盖

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "hello 1", logs.All()[0].Message)
	assert.Equal(t, "ledger", logs.All()[1].ContextMap()["module"])
	assert.NotNil(t, GetLogger())
}

func TestNewModuleLoggerNil(t *testing.T) {
	assert.Nil(t, NewModuleLogger(nil, "psp22"))

	nop := NewNop()
	assert.NotPanics(t, func() { nop.With("k", "v").Errorf("丢弃 %d", 1) })
	assert.NoError(t, nop.Sync())
}
