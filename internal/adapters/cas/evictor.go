package cas

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports"
	"go.trai.ch/zerr"
)

// Evictor implements ports.CacheEvictor over a cache layout.
type Evictor struct {
	layout domain.CacheLayout
	logger ports.Logger
	now    func() time.Time
}

// EvictorOption configures an Evictor.
type EvictorOption func(*Evictor)

// WithClock replaces the clock used to compute the eviction cutoff.
func WithClock(now func() time.Time) EvictorOption {
	return func(e *Evictor) {
		e.now = now
	}
}

// NewEvictor creates an Evictor for the given cache layout.
func NewEvictor(layout domain.CacheLayout, logger ports.Logger, opts ...EvictorOption) *Evictor {
	e := &Evictor{
		layout: layout,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Sweep removes every package whose metadata was last written at or before now-maxAge.
// Packages without readable metadata are removed regardless of age.
// A zero maxAge also removes the shared build output directory.
func (e *Evictor) Sweep(ctx context.Context, maxAge time.Duration) error {
	fullClear := maxAge == 0
	cutoff := e.now().Add(-maxAge)

	if fullClear {
		e.logger.Debug("clearing build output " + e.layout.BinariesDir())
		if err := os.RemoveAll(e.layout.BinariesDir()); err != nil {
			e.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrCacheClearFailed.Error()), "path", e.layout.BinariesDir()))
		}
	}

	projects := e.layout.ProjectsDir()
	entries, err := os.ReadDir(projects)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", projects)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(projects, entry.Name())
		if !fullClear && !e.expired(dir, cutoff) {
			continue
		}

		e.logger.Debug("evicting " + dir)
		if err := os.RemoveAll(dir); err != nil {
			e.logger.Warn(fmt.Sprintf("failed to remove %s: %v", dir, err))
		}
	}

	return nil
}

func (e *Evictor) expired(dir string, cutoff time.Time) bool {
	info, err := os.Stat(domain.MetadataPath(dir))
	if err != nil {
		return true
	}
	return !info.ModTime().After(cutoff)
}

// List describes every package directory in the cache.
func (e *Evictor) List(ctx context.Context) ([]domain.CacheEntry, error) {
	projects := e.layout.ProjectsDir()
	entries, err := os.ReadDir(projects)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", projects)
	}

	now := e.now()
	result := make([]domain.CacheEntry, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() {
			continue
		}
		result = append(result, e.describe(filepath.Join(projects, entry.Name()), entry.Name(), now))
	}
	return result, nil
}

func (e *Evictor) describe(dir, id string, now time.Time) domain.CacheEntry {
	entry := domain.CacheEntry{ID: id, Source: "<invalid>", Age: "-"}

	meta, err := readMetadata(dir)
	if err != nil {
		return entry
	}
	info, err := os.Stat(domain.MetadataPath(dir))
	if err != nil {
		return entry
	}

	entry.Source = meta.Path
	if entry.Source == "" {
		entry.Source = "<expr>"
	}
	entry.Debug = meta.Debug
	entry.Deps = meta.Deps
	entry.LastValidated = info.ModTime()
	entry.Age = now.Sub(info.ModTime()).Round(time.Second).String()
	return entry
}
