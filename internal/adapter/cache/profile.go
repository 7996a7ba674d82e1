// Package cache provides a read-through LRU layer in front of the profile
// repository. Point lookups by site are cached; list, search and count
// queries always go to the source. Write operations pass through and keep
// the cache consistent.
package cache

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ormondry/seoforge-backend/internal/domain"
)

// ProfileSource defines the repository interface the cache wraps.
type ProfileSource interface {
	GetBySite(ctx context.Context, site string) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Profile, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProfileCache decorates a ProfileSource with an LRU cache keyed by site.
// lru.Cache is safe for concurrent use; two concurrent misses may both hit
// the source, and the last fill wins.
type ProfileCache struct {
	log *slog.Logger
	src ProfileSource
	lru *lru.Cache[string, *domain.Profile]
}

// New creates a ProfileCache holding at most size entries.
func New(logger *slog.Logger, src ProfileSource, size int) (*ProfileCache, error) {
	c, err := lru.New[string, *domain.Profile](size)
	if err != nil {
		return nil, err
	}
	return &ProfileCache{
		log: logger.With("component", "profile_cache"),
		src: src,
		lru: c,
	}, nil
}

// GetBySite returns the cached profile for site, falling back to the source
// on a miss and filling the cache on success.
func (c *ProfileCache) GetBySite(ctx context.Context, site string) (*domain.Profile, error) {
	if p, ok := c.lru.Get(site); ok {
		c.log.DebugContext(ctx, "cache hit", slog.String("site", site))
		return p, nil
	}

	c.log.DebugContext(ctx, "cache miss", slog.String("site", site))
	p, err := c.src.GetBySite(ctx, site)
	if err != nil {
		return nil, err
	}
	c.lru.Add(site, p)
	return p, nil
}

// List always queries the source.
func (c *ProfileCache) List(ctx context.Context) ([]domain.Profile, error) {
	return c.src.List(ctx)
}

// Search always queries the source.
func (c *ProfileCache) Search(ctx context.Context, query string, limit int) ([]domain.Profile, error) {
	return c.src.Search(ctx, query, limit)
}

// Count always queries the source.
func (c *ProfileCache) Count(ctx context.Context) (int64, error) {
	return c.src.Count(ctx)
}

// Create passes through to the source and fills the cache with the stored row.
func (c *ProfileCache) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	created, err := c.src.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	c.lru.Add(created.Site, created)
	return created, nil
}

// Update passes through to the source. Any entry for the profile's previous
// site is dropped before the fresh row is cached, so a site rename cannot
// leave a stale key behind.
func (c *ProfileCache) Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	updated, err := c.src.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	c.removeByID(p.ID)
	c.lru.Add(updated.Site, updated)
	return updated, nil
}

// Delete passes through to the source and evicts the cached entry.
func (c *ProfileCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.src.Delete(ctx, id); err != nil {
		return err
	}
	c.removeByID(id)
	return nil
}

// removeByID evicts whatever entry holds the given profile ID. The cache is
// keyed by site, so this has to scan.
func (c *ProfileCache) removeByID(id uuid.UUID) {
	for _, site := range c.lru.Keys() {
		if p, ok := c.lru.Peek(site); ok && p.ID == id {
			c.lru.Remove(site)
			return
		}
	}
}
