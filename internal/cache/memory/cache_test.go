package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/genrerec/internal/cache/memory"
	"github.com/davidbz/genrerec/internal/domain"
)

func matrixOf(t *testing.T, v float64) *domain.Matrix {
	t.Helper()
	m, err := domain.NewMatrix(1, []float64{v})
	require.NoError(t, err)
	return m
}

func TestCache_GetSet(t *testing.T) {
	ctx := context.Background()

	t.Run("should return cache miss for unknown key", func(t *testing.T) {
		c := memory.NewCache(0)

		m, err := c.Get(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrCacheMiss)
		require.Nil(t, m)
		require.Equal(t, int64(1), c.Stats().Misses)
	})

	t.Run("should return the stored matrix", func(t *testing.T) {
		c := memory.NewCache(0)
		stored := matrixOf(t, 1)

		require.NoError(t, c.Set(ctx, "k", stored))

		m, err := c.Get(ctx, "k")
		require.NoError(t, err)
		require.Same(t, stored, m)

		stats := c.Stats()
		require.Equal(t, int64(1), stats.Hits)
		require.Equal(t, 1, stats.Entries)
	})
}

func TestCache_Eviction(t *testing.T) {
	ctx := context.Background()

	t.Run("should never evict when unbounded", func(t *testing.T) {
		c := memory.NewCache(0)
		for _, k := range []string{"a", "b", "c", "d"} {
			require.NoError(t, c.Set(ctx, k, matrixOf(t, 1)))
		}

		stats := c.Stats()
		require.Equal(t, 4, stats.Entries)
		require.Zero(t, stats.Evictions)
	})

	t.Run("should evict oldest inserted entry first", func(t *testing.T) {
		c := memory.NewCache(2)
		require.NoError(t, c.Set(ctx, "a", matrixOf(t, 1)))
		require.NoError(t, c.Set(ctx, "b", matrixOf(t, 1)))
		require.NoError(t, c.Set(ctx, "c", matrixOf(t, 1)))

		_, err := c.Get(ctx, "a")
		require.ErrorIs(t, err, domain.ErrCacheMiss)

		_, err = c.Get(ctx, "b")
		require.NoError(t, err)
		_, err = c.Get(ctx, "c")
		require.NoError(t, err)

		require.Equal(t, int64(1), c.Stats().Evictions)
	})

	t.Run("should replace existing key without evicting", func(t *testing.T) {
		c := memory.NewCache(1)
		require.NoError(t, c.Set(ctx, "a", matrixOf(t, 1)))
		replacement := matrixOf(t, 0.5)
		require.NoError(t, c.Set(ctx, "a", replacement))

		m, err := c.Get(ctx, "a")
		require.NoError(t, err)
		require.Same(t, replacement, m)
		require.Zero(t, c.Stats().Evictions)
	})
}
