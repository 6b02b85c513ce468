package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultNamespace prefixes every key written by RedisCache.
const DefaultNamespace = "dividend"

// envelope is the stored JSON document. storedAt travels with the value so
// freshness is decided by the same rule as the memory cache.
type envelope[V any] struct {
	StoredAt time.Time `json:"storedAt"`
	Value    V         `json:"value"`
}

// RedisCache stores values as JSON envelopes with a Redis expiry equal to the remaining TTL.
// All Redis failures are logged and degrade to a miss; the cache never fails a lookup.
// A nil client disables the cache entirely.
type RedisCache[V any] struct {
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
	now       func() time.Time
}

// NewRedisCache creates a RedisCache.
// If ttl is 0 it defaults to DefaultTTL. If namespace is empty, it uses DefaultNamespace.
func NewRedisCache[V any](rdb *redis.Client, ttl time.Duration, namespace string, opts ...Option) *RedisCache[V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	o := buildOptions(opts)
	return &RedisCache[V]{rdb: rdb, ttl: ttl, namespace: namespace, now: o.now}
}

// Get returns the value for key while it is fresh.
func (c *RedisCache[V]) Get(ctx context.Context, key string) (V, bool) {
	var zero V
	if c.rdb == nil {
		return zero, false
	}

	k := c.cacheKey(key)
	b, err := c.rdb.Get(ctx, k).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.WarnContext(ctx, "redis cache get failed", "key", k, "error", err)
		}
		return zero, false
	}

	var env envelope[V]
	if err := json.Unmarshal(b, &env); err != nil || env.StoredAt.IsZero() {
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, k).Err()
		return zero, false
	}
	if c.now().Sub(env.StoredAt) >= c.ttl {
		return zero, false
	}
	return env.Value, true
}

// Put stores value under key. Entries already past their TTL are not written.
func (c *RedisCache[V]) Put(ctx context.Context, key string, value V, storedAt time.Time) {
	if c.rdb == nil {
		return
	}
	remaining := c.ttl - c.now().Sub(storedAt)
	if remaining <= 0 {
		return
	}

	b, err := json.Marshal(envelope[V]{StoredAt: storedAt.UTC(), Value: value})
	if err != nil {
		slog.ErrorContext(ctx, "redis cache encode failed", "key", key, "error", err)
		return
	}
	k := c.cacheKey(key)
	if err := c.rdb.Set(ctx, k, b, remaining).Err(); err != nil {
		slog.WarnContext(ctx, "redis cache set failed", "key", k, "error", err)
	}
}

// TTL returns the configured freshness window.
func (c *RedisCache[V]) TTL() time.Duration { return c.ttl }

func (c *RedisCache[V]) cacheKey(key string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(key))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
