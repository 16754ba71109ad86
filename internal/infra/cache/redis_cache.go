// Package cache provides the catalog read cache backed by Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"booksy/config"
	"booksy/internal/domain/lifecycle"
	"booksy/internal/domain/service"
	"booksy/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const invalidateBatchSize = 100

// redisCatalogCache stores JSON encoded catalog results under a shared key prefix.
type redisCatalogCache struct {
	rdb    redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// Params holds dependencies for the catalog cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewCatalogCache returns a Redis backed cache when redis.url is configured and a no-op cache otherwise.
func NewCatalogCache(params Params) (service.CatalogCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.URL == "" {
		params.Logger.Info("Redis not configured, catalog cache disabled")

		return NewNoopCache(), nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid redis url")
	}

	rdb := redis.NewClient(opts)

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := rdb.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to connect to redis")
			}
			params.Logger.Info("Catalog cache connected", slog.String("addr", opts.Addr), slog.Duration("ttl", cfg.CacheTTL))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return NewRedisCatalogCache(rdb, cfg.Prefix, cfg.CacheTTL), nil
}

// NewRedisCatalogCache wraps an existing Redis client.
func NewRedisCatalogCache(rdb redis.UniversalClient, prefix string, ttl time.Duration) service.CatalogCache {
	return &redisCatalogCache{
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *redisCatalogCache) key(key string) string {
	return c.prefix + "catalog:" + key
}

// Get decodes the cached value for key into dest.
func (c *redisCatalogCache) Get(ctx context.Context, key string, dest any) error {
	data, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return service.ErrCacheMiss
		}

		return errors.Wrap(err, "failed to read catalog cache")
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return errors.Wrap(err, "failed to decode catalog cache entry")
	}

	return nil
}

// Set stores value under key with the configured TTL.
func (c *redisCatalogCache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "failed to encode catalog cache entry")
	}

	if err := c.rdb.Set(ctx, c.key(key), data, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write catalog cache")
	}

	return nil
}

// Invalidate drops every catalog entry. SCAN keeps Redis responsive on large keyspaces.
func (c *redisCatalogCache) Invalidate(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, c.key("*"), invalidateBatchSize).Iterator()

	batch := make([]string, 0, invalidateBatchSize)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == invalidateBatchSize {
			if err := c.rdb.Del(ctx, batch...).Err(); err != nil {
				return errors.Wrap(err, "failed to invalidate catalog cache")
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(err, "failed to scan catalog cache")
	}

	if len(batch) > 0 {
		if err := c.rdb.Del(ctx, batch...).Err(); err != nil {
			return errors.Wrap(err, "failed to invalidate catalog cache")
		}
	}

	return nil
}
