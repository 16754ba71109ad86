package cache

import (
	"context"

	"booksy/internal/domain/service"
)

type noopCache struct{}

// NewNoopCache returns a cache that never stores anything.
func NewNoopCache() service.CatalogCache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string, any) error {
	return service.ErrCacheMiss
}

func (noopCache) Set(context.Context, string, any) error {
	return nil
}

func (noopCache) Invalidate(context.Context) error {
	return nil
}
