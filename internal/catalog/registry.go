package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/davidbz/genrerec/internal/domain"
)

// Registry implements the CatalogRegistry interface.
type Registry struct {
	mu       sync.RWMutex
	catalogs map[string]*domain.Catalog
}

// NewRegistry creates a new catalog registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:       sync.RWMutex{},
		catalogs: make(map[string]*domain.Catalog),
	}
}

// Register adds a catalog to the registry.
func (r *Registry) Register(_ context.Context, catalog *domain.Catalog) error {
	if catalog == nil {
		return errors.New("catalog cannot be nil")
	}

	name := catalog.Name()
	if name == "" {
		return errors.New("catalog name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.catalogs[name]; exists {
		return fmt.Errorf("catalog %s already registered", name)
	}

	r.catalogs[name] = catalog
	return nil
}

// Get retrieves a catalog by name.
func (r *Registry) Get(_ context.Context, name string) (*domain.Catalog, error) {
	if name == "" {
		return nil, errors.New("catalog name cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.catalogs[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogNotFound, name)
	}

	return c, nil
}

// List returns all registered catalogs sorted by name.
func (r *Registry) List(_ context.Context) ([]*domain.Catalog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Catalog, 0, len(r.catalogs))
	for _, c := range r.catalogs {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })

	return out, nil
}

var _ domain.CatalogRegistry = (*Registry)(nil)
