package tfidf_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/genrerec/internal/domain"
	"github.com/davidbz/genrerec/internal/vectorizer/tfidf"
)

func TestVectorizer_Tokenize(t *testing.T) {
	v := tfidf.NewVectorizer()

	t.Run("should split hyphenated tags and drop stop words", func(t *testing.T) {
		tokens := v.Tokenize(domain.NormalizeGenres("Sci-Fi, Action"))
		require.Equal(t, []string{"sci", "fi", "action"}, tokens)
	})

	t.Run("should drop single character tokens", func(t *testing.T) {
		tokens := v.Tokenize([]string{"a", "x"})
		require.Empty(t, tokens)
	})

	t.Run("should drop stop words inside multi word tags", func(t *testing.T) {
		tokens := v.Tokenize(domain.NormalizeGenres("Coming-of-Age, Fiction"))
		require.Equal(t, []string{"coming", "age", "fiction"}, tokens)
	})
}

func TestVectorizer_Vectorize(t *testing.T) {
	ctx := context.Background()

	t.Run("should return one normalized vector per document", func(t *testing.T) {
		v := tfidf.NewVectorizer()
		docs := [][]string{
			domain.NormalizeGenres("Romance, Drama"),
			domain.NormalizeGenres("Drama, Romance"),
			domain.NormalizeGenres("Horror"),
		}

		vectors, err := v.Vectorize(ctx, docs)
		require.NoError(t, err)
		require.Len(t, vectors, 3)

		for _, vec := range vectors {
			require.InDelta(t, 1.0, vec.Norm(), 1e-9)
		}

		// Same tag set, different order.
		require.InDelta(t, 1.0, domain.CosineSimilarity(vectors[0], vectors[1]), 1e-9)
		require.InDelta(t, 0.0, domain.CosineSimilarity(vectors[0], vectors[2]), 1e-9)
	})

	t.Run("should produce an empty vector for stop word only documents", func(t *testing.T) {
		v := tfidf.NewVectorizer()

		vectors, err := v.Vectorize(ctx, [][]string{{"the"}, {"drama"}})
		require.NoError(t, err)
		require.Empty(t, vectors[0].Indices)
		require.InDelta(t, 0.0, domain.CosineSimilarity(vectors[0], vectors[1]), 1e-9)
	})

	t.Run("should be deterministic", func(t *testing.T) {
		v := tfidf.NewVectorizer()
		docs := [][]string{
			domain.NormalizeGenres("Action, Thriller"),
			domain.NormalizeGenres("Mystery, Thriller"),
			domain.NormalizeGenres("Biography, Sports"),
		}

		first, err := v.Vectorize(ctx, docs)
		require.NoError(t, err)
		second, err := v.Vectorize(ctx, docs)
		require.NoError(t, err)

		require.Equal(t, first, second)
		require.Equal(t, int64(2), v.Calls())
	})

	t.Run("should weigh rare tokens higher", func(t *testing.T) {
		v := tfidf.NewVectorizer()
		docs := [][]string{
			domain.NormalizeGenres("Drama, Sports"),
			domain.NormalizeGenres("Drama"),
			domain.NormalizeGenres("Drama"),
		}

		vectors, err := v.Vectorize(ctx, docs)
		require.NoError(t, err)

		// Vocabulary is sorted: drama=0, sports=1.
		require.Equal(t, []int{0, 1}, vectors[0].Indices)
		require.Greater(t, vectors[0].Values[1], vectors[0].Values[0])
	})
}
