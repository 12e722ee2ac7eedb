package utils

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin read-through cache over Redis. A Cache with a nil client is
// valid and behaves as a permanent miss, so callers never branch on whether
// caching is enabled.
type Cache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{Redis: client, TTL: ttl}
}

// Get returns the cached bytes for key, or found=false on a miss. Redis
// errors are treated as misses: the cache must never take down a fetch that
// could succeed against the source.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.Redis == nil {
		return nil, false
	}

	data, err := c.Redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores val under key with the configured TTL. Failures are ignored for
// the same reason Get treats errors as misses.
func (c *Cache) Set(ctx context.Context, key string, val []byte) {
	if c == nil || c.Redis == nil {
		return
	}
	c.Redis.Set(ctx, key, val, c.TTL)
}

// Invalidate removes a single key.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	if c == nil || c.Redis == nil {
		return
	}
	c.Redis.Del(ctx, key)
}
