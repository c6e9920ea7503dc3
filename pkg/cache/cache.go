package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss 缓存未命中
var ErrMiss = errors.New("cache miss")

// CacheManager 两级缓存：本地内存优先，Redis 兜底
// dashboard 每次请求都要用全量解析结果，解析 CSV 不便宜，必须缓存
type CacheManager struct {
	redis *redis.Client
	local *LocalCache
}

// LocalCache 本地缓存
type LocalCache struct {
	data map[string]*CacheItem
	mu   sync.RWMutex
}

// CacheItem 缓存项
type CacheItem struct {
	Value     []byte
	ExpiresAt time.Time
}

// NewCacheManager 创建缓存管理器，redisClient 可以为 nil（只用本地缓存）
func NewCacheManager(redisClient *redis.Client) *CacheManager {
	cm := &CacheManager{
		redis: redisClient,
		local: &LocalCache{
			data: make(map[string]*CacheItem),
		},
	}

	// 本地缓存定期清理
	go cm.cleanupLocalCache()

	return cm
}

// Get 获取缓存值，优先本地缓存，然后 Redis
func (cm *CacheManager) Get(ctx context.Context, key string, dest interface{}) error {
	if value, found := cm.getFromLocal(key); found {
		return json.Unmarshal(value, dest)
	}

	if cm.redis != nil {
		data, err := cm.redis.Get(ctx, key).Bytes()
		if err == nil {
			// 回填本地缓存，用较短 TTL
			cm.setToLocal(key, data, 5*time.Minute)
			return json.Unmarshal(data, dest)
		}
	}

	return ErrMiss
}

// Set 设置缓存值，同时写本地和 Redis
func (cm *CacheManager) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	localTTL := ttl
	if localTTL > 10*time.Minute {
		localTTL = 10 * time.Minute
	}
	cm.setToLocal(key, data, localTTL)

	// Redis 写入异步化，不拖慢请求
	if cm.redis != nil {
		go func() {
			cm.redis.Set(context.Background(), key, data, ttl)
		}()
	}

	return nil
}

// Delete 删除缓存
func (cm *CacheManager) Delete(ctx context.Context, key string) {
	cm.local.mu.Lock()
	delete(cm.local.data, key)
	cm.local.mu.Unlock()

	if cm.redis != nil {
		cm.redis.Del(ctx, key)
	}
}

func (cm *CacheManager) getFromLocal(key string) ([]byte, bool) {
	cm.local.mu.RLock()
	defer cm.local.mu.RUnlock()

	item, exists := cm.local.data[key]
	if !exists || time.Now().After(item.ExpiresAt) {
		return nil, false
	}
	return item.Value, true
}

func (cm *CacheManager) setToLocal(key string, value []byte, ttl time.Duration) {
	cm.local.mu.Lock()
	defer cm.local.mu.Unlock()

	cm.local.data[key] = &CacheItem{
		Value:     value,
		ExpiresAt: time.Now().Add(ttl),
	}
}

// cleanupLocalCache 每分钟清理过期项
func (cm *CacheManager) cleanupLocalCache() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		cm.local.mu.Lock()
		for key, item := range cm.local.data {
			if now.After(item.ExpiresAt) {
				delete(cm.local.data, key)
			}
		}
		cm.local.mu.Unlock()
	}
}
