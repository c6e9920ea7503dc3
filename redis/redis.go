package redis

import (
	"context"
	"log"
	"sync"
	"time"

	"ecommerce-manager/config"

	"github.com/redis/go-redis/v9"
)

var (
	rdb      *redis.Client
	initOnce sync.Once
)

// InitRedis 初始化 Redis 客户端
// Redis 只用作数据集缓存的二级存储，连不上时降级为纯本地缓存，不阻塞启动
func InitRedis(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		return nil
	}

	initOnce.Do(func() {
		client := redis.NewClient(&redis.Options{
			Addr:         cfg.Addr,
			Password:     cfg.Password,
			DB:           cfg.DB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			PoolSize:     10,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("Redis 连接失败，降级为本地缓存: %v", err)
			return
		}
		rdb = client
	})

	return rdb
}

// GetClient 获取 Redis 客户端，未启用或连接失败时为 nil
func GetClient() *redis.Client {
	return rdb
}
