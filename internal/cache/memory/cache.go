// Package memory implements an in-process similarity matrix cache.
//
// Eviction: with MaxEntries == 0 nothing is ever evicted and entries live for
// the process lifetime. With MaxEntries > 0 the oldest inserted entry is
// dropped first once the limit is reached.
package memory

import (
	"context"
	"sync"

	"github.com/davidbz/genrerec/internal/domain"
	"github.com/davidbz/genrerec/internal/observability"
)

// Cache stores similarity matrices keyed by catalog fingerprint.
type Cache struct {
	mu         sync.RWMutex
	maxEntries int
	entries    map[string]*domain.Matrix
	order      []string

	hits      int64
	misses    int64
	evictions int64
}

// NewCache creates a memory cache. maxEntries <= 0 disables eviction.
func NewCache(maxEntries int) *Cache {
	return &Cache{
		maxEntries: max(maxEntries, 0),
		entries:    make(map[string]*domain.Matrix),
	}
}

// Get returns the matrix stored under key or domain.ErrCacheMiss.
func (c *Cache) Get(_ context.Context, key string) (*domain.Matrix, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.entries[key]
	if !ok {
		c.misses++
		observability.RecordCacheMiss(c.Name())
		return nil, domain.ErrCacheMiss
	}

	c.hits++
	observability.RecordCacheHit(c.Name())
	return m, nil
}

// Set stores matrix under key, evicting the oldest entry when full.
// Storing an existing key replaces the value and keeps its position.
func (c *Cache) Set(_ context.Context, key string, matrix *domain.Matrix) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = matrix
		return nil
	}

	for c.maxEntries > 0 && len(c.order) >= c.maxEntries {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
		c.evictions++
		observability.RecordCacheEviction()
	}

	c.entries[key] = matrix
	c.order = append(c.order, key)
	return nil
}

// Stats returns the cache counters.
func (c *Cache) Stats() domain.CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return domain.CacheStats{
		Hits:      c.hits,
		Misses:    c.misses,
		Entries:   len(c.entries),
		Evictions: c.evictions,
	}
}

// Name returns the cache backend identifier.
func (c *Cache) Name() string {
	return "memory"
}

var _ domain.MatrixCache = (*Cache)(nil)
