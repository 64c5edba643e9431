// Package memory 提供基于BigCache的内存缓存实现
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/log"
	storage "github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/storage"
)

// ErrStoreClosed 缓存已关闭
var ErrStoreClosed = errors.New("内存存储已关闭")

// Store 实现了MemoryStore接口
type Store struct {
	cache  *bigcache.BigCache
	logger log.Logger
	mutex  sync.RWMutex
	closed bool
}

var _ storage.MemoryStore = (*Store)(nil)

// New 创建缓存，条目在 lifeWindow 后过期
func New(lifeWindow time.Duration, logger log.Logger) (*Store, error) {
	cfg := bigcache.DefaultConfig(lifeWindow)
	cfg.Shards = 64
	cfg.CleanWindow = lifeWindow / 2
	cfg.MaxEntriesInWindow = 10_000
	cfg.MaxEntrySize = 256
	cfg.Verbose = false

	cache, err := bigcache.New(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("创建BigCache实例失败: %w", err)
	}
	return &Store{cache: cache, logger: logger}, nil
}

// Get 获取缓存值
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.closed {
		return nil, false, ErrStoreClosed
	}

	value, err := s.cache.Get(key)
	if err != nil {
		if errors.Is(err, bigcache.ErrEntryNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

// Set 设置缓存值
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.closed {
		return ErrStoreClosed
	}

	if err := s.cache.Set(key, value); err != nil {
		if s.logger != nil {
			s.logger.Warnf("设置缓存键[%s]失败: %v", key, err)
		}
		return err
	}
	return nil
}

// Delete 删除缓存值
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.closed {
		return ErrStoreClosed
	}

	if err := s.cache.Delete(key); err != nil && !errors.Is(err, bigcache.ErrEntryNotFound) {
		return err
	}
	return nil
}

// Close 关闭缓存并释放资源
func (s *Store) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.cache.Close()
}
