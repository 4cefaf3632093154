// Package tiered chains a fast local matrix cache in front of a shared one.
package tiered

import (
	"context"
	"errors"
	"fmt"

	"github.com/davidbz/genrerec/internal/domain"
	"github.com/davidbz/genrerec/internal/observability"
)

// Cache reads from front first and falls back to back. Hits in back are
// promoted to front. Writes go to both tiers.
type Cache struct {
	front domain.MatrixCache
	back  domain.MatrixCache
}

// NewCache creates a two-tier cache.
func NewCache(front, back domain.MatrixCache) (*Cache, error) {
	if front == nil || back == nil {
		return nil, errors.New("both cache tiers are required")
	}

	return &Cache{front: front, back: back}, nil
}

// Get returns the matrix from the first tier that has it.
func (c *Cache) Get(ctx context.Context, key string) (*domain.Matrix, error) {
	logger := observability.FromContext(ctx)

	m, err := c.front.Get(ctx, key)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logger.Warn("front cache get failed",
			observability.String("backend", c.front.Name()),
			observability.Error(err))
	}

	m, err = c.back.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("back cache get failed: %w", err)
	}

	if setErr := c.front.Set(ctx, key, m); setErr != nil {
		logger.Warn("failed to promote matrix to front cache",
			observability.String("backend", c.front.Name()),
			observability.Error(setErr))
	}

	return m, nil
}

// Set stores the matrix in both tiers. A back tier failure is returned after
// the front tier has been written.
func (c *Cache) Set(ctx context.Context, key string, matrix *domain.Matrix) error {
	if err := c.front.Set(ctx, key, matrix); err != nil {
		return fmt.Errorf("front cache set failed: %w", err)
	}

	if err := c.back.Set(ctx, key, matrix); err != nil {
		return fmt.Errorf("back cache set failed: %w", err)
	}

	return nil
}

// Name returns the cache backend identifier.
func (c *Cache) Name() string {
	return c.front.Name() + "+" + c.back.Name()
}

var _ domain.MatrixCache = (*Cache)(nil)
