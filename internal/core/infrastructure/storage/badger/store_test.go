package badger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	badgerconfig "github.com/weisyn/assetbridge/internal/config/storage/badger"
	interfaces "github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/storage"
)

// 初始化测试环境：内存模式
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := badgerconfig.NewFromOptions(&badgerconfig.BadgerOptions{
		InMemory:     true,
		MemTableSize: 8 << 20,
	})
	store, err := New(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// 测试基本的键值操作
func TestBasicKeyValueOperations(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	key := []byte("test-key")
	value := []byte("test-value")

	// 1. 不存在的键
	exists, err := store.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	val, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, val)

	// 2. 设置与读取
	require.NoError(t, store.Set(ctx, key, value))
	val, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, value, val)

	// 3. 删除
	require.NoError(t, store.Delete(ctx, key))
	exists, err = store.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

// 测试磁盘模式
func TestOnDiskStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "badger")
	cfg := badgerconfig.NewFromOptions(&badgerconfig.BadgerOptions{Path: dir, MemTableSize: 8 << 20})

	store, err := New(cfg, nil)
	require.NoError(t, err)
	assert.DirExists(t, dir, "嵌套数据目录自动创建")
	require.NoError(t, store.Set(context.Background(), []byte("k"), []byte("v")))
	require.NoError(t, store.Close())

	// 重新打开后数据仍在
	store, err = New(cfg, nil)
	require.NoError(t, err)
	defer store.Close()

	val, err := store.Get(context.Background(), []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)
}

// 数据目录无法创建时返回错误
func TestOnDiskStoreBadPath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	cfg := badgerconfig.NewFromOptions(&badgerconfig.BadgerOptions{Path: filepath.Join(file, "badger")})
	_, err := New(cfg, nil)
	assert.Error(t, err)
}

// 测试前缀扫描
func TestPrefixScan(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	for k, v := range map[string]string{
		"bal/1/a": "10",
		"bal/1/b": "20",
		"bal/2/a": "30",
		"meta/1":  "x",
	} {
		require.NoError(t, store.Set(ctx, []byte(k), []byte(v)))
	}

	got, err := store.PrefixScan(ctx, []byte("bal/1/"))
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{
		"bal/1/a": []byte("10"),
		"bal/1/b": []byte("20"),
	}, got)
}

// 测试事务提交与回滚
func TestRunInTransaction(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	err := store.RunInTransaction(ctx, func(tx interfaces.BadgerTransaction) error {
		if err := tx.Set([]byte("tx-key1"), []byte("tx-value1")); err != nil {
			return err
		}
		return tx.Set([]byte("tx-key2"), []byte("tx-value2"))
	})
	require.NoError(t, err)

	val, err := store.Get(ctx, []byte("tx-key2"))
	require.NoError(t, err)
	assert.Equal(t, []byte("tx-value2"), val)

	// 返回错误时所有写入被丢弃
	err = store.RunInTransaction(ctx, func(tx interfaces.BadgerTransaction) error {
		if err := tx.Set([]byte("tx-key3"), []byte("tx-value3")); err != nil {
			return err
		}
		if err := tx.Delete([]byte("tx-key1")); err != nil {
			return err
		}
		return fmt.Errorf("事务回滚测试")
	})
	assert.Error(t, err)

	exists, err := store.Exists(ctx, []byte("tx-key3"))
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = store.Exists(ctx, []byte("tx-key1"))
	require.NoError(t, err)
	assert.True(t, exists)
}

// 测试关闭后拒绝写入
func TestWriteAfterClose(t *testing.T) {
	store := setupTestStore(t)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close(), "重复关闭应为幂等")

	err := store.Set(context.Background(), []byte("k"), []byte("v"))
	assert.ErrorIs(t, err, ErrStoreClosing)

	err = store.RunInTransaction(context.Background(), func(interfaces.BadgerTransaction) error { return nil })
	assert.ErrorIs(t, err, ErrStoreClosing)
}
