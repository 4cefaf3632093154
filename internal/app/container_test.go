package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/genrerec/internal/app"
	"github.com/davidbz/genrerec/internal/config"
	"github.com/davidbz/genrerec/internal/domain"
	"github.com/davidbz/genrerec/internal/vectorizer/openai"
)

func TestNewVectorizer(t *testing.T) {
	t.Run("should default to tfidf", func(t *testing.T) {
		v, err := app.NewVectorizer(&config.EngineConfig{}, &openai.Config{})
		require.NoError(t, err)
		require.Equal(t, "tfidf", v.Name())
	})

	t.Run("should require an api key for openai", func(t *testing.T) {
		_, err := app.NewVectorizer(&config.EngineConfig{Vectorizer: "openai"}, &openai.Config{})
		require.Error(t, err)
	})

	t.Run("should reject unknown vectorizers", func(t *testing.T) {
		_, err := app.NewVectorizer(&config.EngineConfig{Vectorizer: "word2vec"}, &openai.Config{})
		require.ErrorIs(t, err, app.ErrUnknownVectorizer)
	})
}

func TestNewMatrixCache(t *testing.T) {
	t.Run("should build a memory cache by default", func(t *testing.T) {
		c, err := app.NewMatrixCache(&config.CacheConfig{})
		require.NoError(t, err)
		require.Equal(t, "memory", c.Name())
	})

	t.Run("should reject unknown backends", func(t *testing.T) {
		_, err := app.NewMatrixCache(&config.CacheConfig{Backend: "memcached"})
		require.ErrorIs(t, err, app.ErrUnknownCacheBackend)
	})
}

func TestNewCatalogRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("should register builtin and directory catalogs", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "shows.yaml"),
			[]byte("items:\n  - title: Dark\n    genre: Sci-Fi, Mystery\n"), 0o600))

		reg, err := app.NewCatalogRegistry(&config.CatalogConfig{Builtin: true, Dir: dir})
		require.NoError(t, err)

		list, err := reg.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)

		_, err = reg.Get(ctx, "shows")
		require.NoError(t, err)
	})

	t.Run("should reject duplicate catalog names", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "movies.json"),
			[]byte(`{"items":[]}`), 0o600))

		_, err := app.NewCatalogRegistry(&config.CatalogConfig{Builtin: true, Dir: dir})
		require.Error(t, err)
	})
}

func TestBuildContainer(t *testing.T) {
	t.Run("should resolve the recommendation service and warm catalogs", func(t *testing.T) {
		os.Clearenv()

		container, err := app.BuildContainer()
		require.NoError(t, err)

		err = container.Invoke(func(
			svc *domain.RecommendationService,
			engine *domain.SimilarityEngine,
			reg domain.CatalogRegistry,
		) error {
			if err := app.Warm(bg(), engine, reg); err != nil {
				return err
			}

			movies, err := reg.Get(bg(), "movies")
			if err != nil {
				return err
			}

			result := svc.Recommend(bg(), movies, "Interstellar", 3)
			require.True(t, result.Found())
			require.Len(t, result.Recommendations, 3)
			return nil
		})
		require.NoError(t, err)
	})
}

func bg() context.Context { return context.Background() }
