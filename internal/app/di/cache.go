package di

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"dividend_backend/internal/app/config"
	"dividend_backend/internal/feature/dividend/domain/entity"
	"dividend_backend/internal/feature/dividend/usecase"
	"dividend_backend/internal/platform/cache"
	infraredis "dividend_backend/internal/platform/redis"
)

// DividendCache is the selected cache plus what is needed to release it.
type DividendCache struct {
	Cache   usecase.DividendCache
	Backend string // backend actually in use, after any fallback
	Close   func()
}

// NewDividendCache creates the configured cache backend.
// If Redis is selected but unreachable, it falls back to the in-memory cache.
func NewDividendCache(ctx context.Context, cfg *config.Config) DividendCache {
	ttl := cfg.Dividend.CacheTTL
	if cfg.Dividend.CacheBackend == config.CacheRedis {
		rdb, err := infraredis.NewRedisClient(ctx, infraredis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
		})
		if err == nil {
			return newRedisDividendCache(rdb, ttl, cfg.Redis.Namespace)
		}
		slog.Warn("Redis unavailable. Falling back to in-memory cache.", "error", err)
	}
	return DividendCache{
		Cache:   cache.NewTTLCache[entity.DividendRecord](ttl),
		Backend: config.CacheMemory,
		Close:   func() {},
	}
}

func newRedisDividendCache(rdb *redis.Client, ttl time.Duration, namespace string) DividendCache {
	return DividendCache{
		Cache:   cache.NewRedisCache[entity.DividendRecord](rdb, ttl, namespace),
		Backend: config.CacheRedis,
		Close: func() {
			if err := rdb.Close(); err != nil {
				slog.Error("Failed to close Redis client", "error", err)
			}
		},
	}
}
