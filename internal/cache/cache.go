// Package cache stores JSON-encoded values in Redis or, without Redis, in process memory.
package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"warehouse/internal/config"
)

// Cache is a TTL key/value store for JSON-encodable values
type Cache interface {
	// Get decodes the cached value into dest and reports whether the key was present
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// New connects to Redis when an address is configured and falls back to memory otherwise
func New(ctx context.Context, cfg config.RedisConfig) Cache {
	if cfg.Addr == "" {
		log.Println("cache: REDIS_ADDR not set, using in-memory cache")
		return NewMemory()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("cache: redis %s unreachable (%v), using in-memory cache", cfg.Addr, err)
		_ = client.Close()
		return NewMemory()
	}

	log.Printf("cache: connected to redis %s", cfg.Addr)
	return NewRedis(client)
}
