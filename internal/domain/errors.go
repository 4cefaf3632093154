package domain

import "errors"

var (
	// ErrCacheMiss indicates no cached entry was found.
	ErrCacheMiss = errors.New("cache miss")

	// ErrCatalogNotFound indicates the requested catalog is not registered.
	ErrCatalogNotFound = errors.New("catalog not found")

	// ErrVectorCount indicates a vectorizer returned a different number of vectors than documents.
	ErrVectorCount = errors.New("vectorizer returned wrong number of vectors")
)
