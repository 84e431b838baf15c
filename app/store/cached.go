package store

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lcw/v2"

	"github.com/expensivecode/folio/app/enum"
)

// Interface is the preference storage used by Cached.
type Interface interface {
	GetTheme(ctx context.Context, visitorID string) (enum.Theme, error)
	SetTheme(ctx context.Context, visitorID string, th enum.Theme) error
	DeleteTheme(ctx context.Context, visitorID string) error
	Counts(ctx context.Context) (map[string]int, error)
	Cleanup(ctx context.Context, olderThan time.Time) (int64, error)
	Close() error
}

// Cached wraps a store Interface with a loading cache and satisfies the Interface itself.
// Cache is populated on reads via loader function, invalidated on writes.
// Missing preferences are not cached.
type Cached struct {
	store Interface
	cache lcw.LoadingCache[enum.Theme]
}

// NewCached creates a new cached store wrapper.
// maxKeys sets the maximum number of entries in the cache.
func NewCached(store Interface, maxKeys int) (*Cached, error) {
	cache, err := lcw.NewLruCache(lcw.NewOpts[enum.Theme]().MaxKeys(maxKeys))
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	return &Cached{store: store, cache: cache}, nil
}

// GetTheme retrieves the visitor's theme, using cache with load-through.
func (c *Cached) GetTheme(ctx context.Context, visitorID string) (enum.Theme, error) {
	th, err := c.cache.Get(visitorID, func() (enum.Theme, error) {
		val, loadErr := c.store.GetTheme(ctx, visitorID)
		if loadErr != nil {
			return enum.Theme{}, fmt.Errorf("load from store: %w", loadErr)
		}
		return val, nil
	})
	if err != nil {
		return enum.Theme{}, fmt.Errorf("cache get: %w", err)
	}
	return th, nil
}

// SetTheme stores the theme and invalidates the cache entry.
func (c *Cached) SetTheme(ctx context.Context, visitorID string, th enum.Theme) error {
	if err := c.store.SetTheme(ctx, visitorID, th); err != nil {
		return fmt.Errorf("store set: %w", err)
	}
	c.cache.Invalidate(func(k string) bool { return k == visitorID })
	return nil
}

// DeleteTheme removes the record and invalidates the cache entry.
func (c *Cached) DeleteTheme(ctx context.Context, visitorID string) error {
	// invalidate regardless of error - key might have been cached
	c.cache.Invalidate(func(k string) bool { return k == visitorID })
	if err := c.store.DeleteTheme(ctx, visitorID); err != nil {
		return fmt.Errorf("store delete: %w", err)
	}
	return nil
}

// Counts passes through to the underlying store, counts are never cached.
func (c *Cached) Counts(ctx context.Context) (map[string]int, error) {
	return c.store.Counts(ctx) //nolint:wrapcheck // pass-through
}

// Cleanup removes stale records and drops the whole cache.
func (c *Cached) Cleanup(ctx context.Context, olderThan time.Time) (int64, error) {
	n, err := c.store.Cleanup(ctx, olderThan)
	if err != nil {
		return 0, fmt.Errorf("store cleanup: %w", err)
	}
	if n > 0 {
		c.cache.Invalidate(func(string) bool { return true })
	}
	return n, nil
}

// Close closes the cache and underlying store.
func (c *Cached) Close() error {
	_ = c.cache.Close()
	if err := c.store.Close(); err != nil {
		return fmt.Errorf("store close: %w", err)
	}
	return nil
}

// Stats returns cache statistics.
func (c *Cached) Stats() lcw.CacheStat {
	return c.cache.Stat()
}
