package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	interfaces "github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/storage"
)

// 事务内可读到自己的写入
func TestTransactionReadYourWrites(t *testing.T) {
	store := setupTestStore(t)

	err := store.RunInTransaction(context.Background(), func(tx interfaces.BadgerTransaction) error {
		val, err := tx.Get([]byte("k"))
		require.NoError(t, err)
		assert.Nil(t, val)

		require.NoError(t, tx.Set([]byte("k"), []byte("v")))

		exists, err := tx.Exists([]byte("k"))
		require.NoError(t, err)
		assert.True(t, exists)

		val, err = tx.Get([]byte("k"))
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), val)
		return nil
	})
	require.NoError(t, err)
}

// 事务结束后继续使用返回 ErrTxClosed
func TestTransactionClosed(t *testing.T) {
	store := setupTestStore(t)

	var leaked interfaces.BadgerTransaction
	require.NoError(t, store.RunInTransaction(context.Background(), func(tx interfaces.BadgerTransaction) error {
		leaked = tx
		return nil
	}))

	_, err := leaked.Get([]byte("k"))
	assert.ErrorIs(t, err, ErrTxClosed)
	assert.ErrorIs(t, leaked.Set([]byte("k"), []byte("v")), ErrTxClosed)
	assert.ErrorIs(t, leaked.Delete([]byte("k")), ErrTxClosed)
}

// 只读事务提交不产生写入
func TestTransactionStateMachine(t *testing.T) {
	store := setupTestStore(t)

	tx := &Transaction{txn: store.db.NewTransaction(true), state: int32(TxActive)}
	assert.True(t, tx.IsActive())
	require.NoError(t, tx.Commit())
	assert.Error(t, tx.Commit())

	tx = &Transaction{txn: store.db.NewTransaction(true), state: int32(TxActive)}
	tx.Discard()
	assert.Error(t, tx.Commit())
}
