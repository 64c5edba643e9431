// Package storage 提供资产桥的存储接口定义
//
// 💾 **BadgerDB存储服务 (BadgerDB Storage Service)**
//
// 本文件定义了账本使用的键值存储接口，专注于：
// - 基础读写：Get/Set/Delete/Exists
// - 前缀扫描：按资产前缀遍历
// - 事务支持：RunInTransaction 保证一组读写原子生效
//
// 🔗 **组件关系**
// - BadgerStore：被参考资产账本（internal/core/ledger）使用
// - MemoryStore：作为账本元数据读缓存
package storage

import (
	"context"
)

//=============================================================================
// BadgerStore 接口定义
//=============================================================================

// BadgerStore 定义了键值存储的应用接口
type BadgerStore interface {
	// Get 获取指定键的值，键不存在时返回 nil, nil
	Get(ctx context.Context, key []byte) ([]byte, error)

	// Set 设置键值对
	Set(ctx context.Context, key, value []byte) error

	// Delete 删除指定键
	Delete(ctx context.Context, key []byte) error

	// Exists 检查键是否存在
	Exists(ctx context.Context, key []byte) (bool, error)

	// PrefixScan 返回所有以 prefix 开头的键值对
	PrefixScan(ctx context.Context, prefix []byte) (map[string][]byte, error)

	// RunInTransaction 在读写事务中执行 fn
	// fn 返回错误时事务被丢弃，不产生任何写入
	RunInTransaction(ctx context.Context, fn func(tx BadgerTransaction) error) error

	// Close 关闭存储
	Close() error
}

// BadgerTransaction 事务内的读写操作
type BadgerTransaction interface {
	// Get 获取指定键的值，键不存在时返回 nil, nil
	Get(key []byte) ([]byte, error)

	// Set 设置键值对
	Set(key, value []byte) error

	// Delete 删除指定键
	Delete(key []byte) error

	// Exists 检查键是否存在
	Exists(key []byte) (bool, error)
}
