package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"booksy/config"
	"booksy/internal/domain/service"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNoopCache_AlwaysMisses(t *testing.T) {
	c := NewNoopCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "featured", []string{"a"}))

	var dest []string
	assert.ErrorIs(t, c.Get(ctx, "featured", &dest), service.ErrCacheMiss)
	assert.NoError(t, c.Invalidate(ctx))
}

func TestNewCatalogCache_DisabledWithoutURL(t *testing.T) {
	c, err := NewCatalogCache(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{Redis: &config.RedisConfig{}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.IsType(t, noopCache{}, c)
}

func TestNewCatalogCache_RejectsInvalidURL(t *testing.T) {
	_, err := NewCatalogCache(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{Redis: &config.RedisConfig{URL: "://nope"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}

func TestRedisCatalogCache_KeysSharePrefix(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer rdb.Close()

	c := NewRedisCatalogCache(rdb, "booksy:", time.Minute).(*redisCatalogCache)

	assert.Equal(t, "booksy:catalog:featured", c.key("featured"))
	assert.Equal(t, "booksy:catalog:*", c.key("*"))
}
