package domain

import "context"

// Vectorizer turns normalized genre documents into feature vectors.
// Implementations must be deterministic for identical input.
type Vectorizer interface {
	// Vectorize returns one vector per document, in document order.
	Vectorize(ctx context.Context, documents [][]string) ([]Vector, error)

	// Name returns the vectorizer identifier.
	Name() string
}

// MatrixCache stores similarity matrices by catalog fingerprint.
type MatrixCache interface {
	// Get returns the cached matrix or ErrCacheMiss.
	Get(ctx context.Context, key string) (*Matrix, error)

	// Set stores a matrix under key.
	Set(ctx context.Context, key string, matrix *Matrix) error

	// Name returns the cache backend identifier.
	Name() string
}

// SimilaritySource returns the similarity matrix of a catalog.
type SimilaritySource interface {
	Matrix(ctx context.Context, catalog *Catalog) (*Matrix, error)
}

// CatalogRegistry manages the catalogs available to the engine.
type CatalogRegistry interface {
	// Register adds a catalog under its name.
	Register(ctx context.Context, catalog *Catalog) error

	// Get retrieves a catalog by name.
	Get(ctx context.Context, name string) (*Catalog, error)

	// List returns all catalogs sorted by name.
	List(ctx context.Context) ([]*Catalog, error)
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}
