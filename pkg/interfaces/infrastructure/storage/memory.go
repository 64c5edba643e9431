package storage

import "context"

// MemoryStore 进程内缓存接口
//
// 条目有效期由实现统一配置，不支持逐条 TTL。
type MemoryStore interface {
	// Get 获取缓存值，未命中时 found 为 false
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set 设置缓存值
	Set(ctx context.Context, key string, value []byte) error

	// Delete 删除缓存值，键不存在时不报错
	Delete(ctx context.Context, key string) error

	// Close 释放缓存
	Close() error
}
