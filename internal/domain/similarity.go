package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/davidbz/genrerec/internal/observability"
)

// SimilarityEngine computes and caches catalog similarity matrices.
type SimilarityEngine struct {
	vectorizer Vectorizer
	cache      MatrixCache
	group      singleflight.Group
}

// NewSimilarityEngine creates a new similarity engine (DI constructor).
func NewSimilarityEngine(vectorizer Vectorizer, cache MatrixCache) *SimilarityEngine {
	return &SimilarityEngine{
		vectorizer: vectorizer,
		cache:      cache,
	}
}

// Matrix returns the similarity matrix for catalog, computing it at most once
// per fingerprint even under concurrent callers.
func (e *SimilarityEngine) Matrix(ctx context.Context, catalog *Catalog) (*Matrix, error) {
	if catalog == nil {
		return nil, errors.New("catalog cannot be nil")
	}

	if catalog.Len() == 0 {
		return &Matrix{}, nil
	}

	key := catalog.Fingerprint()
	if m, ok := e.lookup(ctx, key); ok {
		return m, nil
	}

	v, err, shared := e.group.Do(key, func() (interface{}, error) {
		// Another flight may have filled the cache between lookup and Do.
		if m, ok := e.lookup(ctx, key); ok {
			return m, nil
		}
		return e.build(ctx, catalog)
	})
	if err != nil {
		return nil, err
	}

	observability.FromContext(ctx).Debug("similarity matrix resolved",
		observability.String("fingerprint", key),
		observability.Bool("shared", shared))

	m, _ := v.(*Matrix)
	return m, nil
}

// Warm precomputes the matrices of several catalogs concurrently.
func (e *SimilarityEngine) Warm(ctx context.Context, catalogs ...*Catalog) error {
	eg, egCtx := errgroup.WithContext(ctx)
	for _, c := range catalogs {
		eg.Go(func() error {
			if _, err := e.Matrix(observability.WithCatalog(egCtx, c.Name()), c); err != nil {
				return fmt.Errorf("failed to warm catalog %s: %w", c.Name(), err)
			}
			return nil
		})
	}
	return eg.Wait()
}

func (e *SimilarityEngine) lookup(ctx context.Context, key string) (*Matrix, bool) {
	if e.cache == nil {
		return nil, false
	}

	m, err := e.cache.Get(ctx, key)
	if err == nil && m != nil {
		return m, true
	}
	if err != nil && !errors.Is(err, ErrCacheMiss) {
		observability.FromContext(ctx).Warn("cache get failed, continuing without cache",
			observability.String("backend", e.cache.Name()),
			observability.Error(err))
	}
	return nil, false
}

func (e *SimilarityEngine) build(ctx context.Context, catalog *Catalog) (*Matrix, error) {
	logger := observability.FromContext(ctx)
	start := time.Now()

	if e.vectorizer == nil {
		return nil, errors.New("vectorizer cannot be nil")
	}

	documents := catalog.Documents()
	vectors, err := e.vectorizer.Vectorize(ctx, documents)
	if err != nil {
		logger.Error("vectorization failed",
			observability.String("vectorizer", e.vectorizer.Name()),
			observability.Error(err))
		return nil, fmt.Errorf("failed to vectorize catalog: %w", err)
	}
	if len(vectors) != len(documents) {
		return nil, fmt.Errorf("%w: %d documents, %d vectors", ErrVectorCount, len(documents), len(vectors))
	}

	m := BuildSimilarityMatrix(vectors)
	elapsed := time.Since(start)
	observability.RecordMatrixBuild(e.vectorizer.Name(), elapsed)

	logger.Info("similarity matrix built",
		observability.String("fingerprint", catalog.Fingerprint()),
		observability.Int("size", m.Size()),
		observability.Duration("elapsed", elapsed))

	if e.cache != nil {
		if setErr := e.cache.Set(ctx, catalog.Fingerprint(), m); setErr != nil {
			logger.Warn("failed to store matrix in cache",
				observability.String("backend", e.cache.Name()),
				observability.Error(setErr))
		}
	}

	return m, nil
}
