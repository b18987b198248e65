package tenant

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisCache is a Cache backed by Redis, for deployments where multiple
// instances should share resolved tenants. Values are stored as JSON under
// a configurable key prefix; Redis handles TTL expiration.
type redisCache struct {
	client redis.UniversalClient
	prefix string
}

// DefaultRedisKeyPrefix namespaces tenant cache keys in a shared Redis.
const DefaultRedisKeyPrefix = "tenant:"

// NewRedisCache creates a Redis-backed tenant cache. An empty prefix falls
// back to DefaultRedisKeyPrefix. The caller owns the client; Close is a
// no-op on it.
func NewRedisCache(client redis.UniversalClient, prefix string) Cache {
	if prefix == "" {
		prefix = DefaultRedisKeyPrefix
	}
	return &redisCache{client: client, prefix: prefix}
}

func (c *redisCache) Get(ctx context.Context, key string) (*Tenant, bool) {
	payload, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		// Treat any Redis failure as a cache miss; the provider is the
		// source of truth.
		return nil, false
	}

	var t Tenant
	if err := json.Unmarshal(payload, &t); err != nil {
		_ = c.client.Del(ctx, c.prefix+key).Err()
		return nil, false
	}
	return &t, true
}

func (c *redisCache) Set(ctx context.Context, key string, t *Tenant, ttl time.Duration) {
	payload, err := json.Marshal(t)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, c.prefix+key, payload, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, key string) {
	_ = c.client.Del(ctx, c.prefix+key).Err()
}

// Close does not close the underlying Redis client, which is shared with
// the rest of the application.
func (c *redisCache) Close() error { return nil }
