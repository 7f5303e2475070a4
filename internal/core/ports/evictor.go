package ports

import (
	"context"
	"time"

	"go.trai.ch/rscript/internal/core/domain"
)

// CacheEvictor prunes the package cache.
//
//go:generate mockgen -source=evictor.go -destination=mocks/mock_evictor.go -package=mocks
type CacheEvictor interface {
	// Sweep removes packages whose metadata is older than maxAge.
	// A zero maxAge clears the build output cache and every package.
	Sweep(ctx context.Context, maxAge time.Duration) error

	// List returns the packages currently in the cache.
	List(ctx context.Context) ([]domain.CacheEntry, error)
}
