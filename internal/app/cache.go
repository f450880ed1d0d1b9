package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/clientforge-backend/internal/cache"
	"github.com/heartmarshall/clientforge-backend/internal/config"
)

// NewCacheStore opens the configured query-cache backend. The returned
// func releases it.
func NewCacheStore(ctx context.Context, cfg *config.Config) (cache.Store, func(), error) {
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		client, err := cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		return cache.NewRedisStore(client, cfg.Redis.Prefix, cfg.Cache.TTL), closeRedis(client), nil
	default:
		return cache.NewMemoryStore(cfg.Cache.Size, cfg.Cache.TTL), func() {}, nil
	}
}

func closeRedis(client *redis.Client) func() {
	return func() { _ = client.Close() }
}

// InvalidateShared drops prefixes from the cache running servers share, for
// commands that write outside the HTTP path. The memory backend lives inside
// each server process and cannot be reached; it reports false and its
// entries expire after cache.ttl.
func InvalidateShared(ctx context.Context, cfg *config.Config, logger *slog.Logger, prefixes ...string) (bool, error) {
	if cfg.Cache.Backend != config.CacheBackendRedis {
		return false, nil
	}

	store, closeStore, err := NewCacheStore(ctx, cfg)
	if err != nil {
		return false, err
	}
	defer closeStore()

	cache.New(store, logger).Invalidate(ctx, prefixes...)
	return true, nil
}
