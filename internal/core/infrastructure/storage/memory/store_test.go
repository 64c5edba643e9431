package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreGetSetDelete(t *testing.T) {
	store, err := New(time.Minute, nil)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	_, found, err := store.Get(ctx, "meta:1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "meta:1", []byte("payload")))
	val, found, err := store.Get(ctx, "meta:1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("payload"), val)

	require.NoError(t, store.Delete(ctx, "meta:1"))
	require.NoError(t, store.Delete(ctx, "meta:1"), "删除不存在的键不报错")

	_, found, err = store.Get(ctx, "meta:1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStoreClosed(t *testing.T) {
	store, err := New(time.Minute, nil)
	require.NoError(t, err)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())

	_, _, err = store.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.ErrorIs(t, store.Set(context.Background(), "k", nil), ErrStoreClosed)
}
