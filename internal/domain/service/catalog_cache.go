package service

import (
	"context"

	"booksy/internal/errors"
)

// ErrCacheMiss is returned by CatalogCache.Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// CatalogCache stores rendered catalog query results. Entries are short-lived and
// dropped wholesale whenever the catalog is edited.
type CatalogCache interface {
	// Get decodes the cached value for key into dest, or returns ErrCacheMiss.
	Get(ctx context.Context, key string, dest any) error

	// Set stores value under key with the configured TTL.
	Set(ctx context.Context, key string, value any) error

	// Invalidate drops every catalog entry.
	Invalidate(ctx context.Context) error
}
