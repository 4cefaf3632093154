// Package tfidf implements a term-frequency/inverse-document-frequency
// vectorizer over normalized genre documents.
//
// Weighting:
//   - TF: raw token count within the document
//   - IDF: ln((1 + n) / (1 + df)) + 1 (smoothed)
//   - each row is L2-normalized
//
// Tokens are maximal runs of letters, digits or underscores of length two or
// more, so "sci-fi" contributes "sci" and "fi". English stop words are dropped.
// The vocabulary is sorted, which makes the output deterministic.
package tfidf

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/davidbz/genrerec/internal/domain"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Vectorizer is a stateless TF-IDF vectorizer.
type Vectorizer struct {
	stopWords map[string]struct{}
	calls     atomic.Int64
}

// NewVectorizer creates a TF-IDF vectorizer using the English stop-word list.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{stopWords: englishStopWords}
}

// Name returns the vectorizer identifier.
func (v *Vectorizer) Name() string {
	return "tfidf"
}

// Calls returns how many times Vectorize has run.
func (v *Vectorizer) Calls() int64 {
	return v.calls.Load()
}

// Vectorize returns one L2-normalized TF-IDF vector per document.
func (v *Vectorizer) Vectorize(_ context.Context, documents [][]string) ([]domain.Vector, error) {
	v.calls.Add(1)

	tokenized := make([][]string, len(documents))
	df := make(map[string]int)
	for i, doc := range documents {
		tokenized[i] = v.Tokenize(doc)

		seen := make(map[string]struct{}, len(tokenized[i]))
		for _, tok := range tokenized[i] {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	vocabulary := make([]string, 0, len(df))
	for tok := range df {
		vocabulary = append(vocabulary, tok)
	}
	sort.Strings(vocabulary)

	column := make(map[string]int, len(vocabulary))
	idf := make([]float64, len(vocabulary))
	n := float64(len(documents))
	for i, tok := range vocabulary {
		column[tok] = i
		idf[i] = math.Log((1+n)/(1+float64(df[tok]))) + 1
	}

	vectors := make([]domain.Vector, len(documents))
	for i, tokens := range tokenized {
		vectors[i] = weigh(tokens, column, idf)
	}

	return vectors, nil
}

// Tokenize splits normalized tags into vocabulary tokens, dropping stop words.
func (v *Vectorizer) Tokenize(tags []string) []string {
	var tokens []string
	for _, tag := range tags {
		for _, tok := range tokenPattern.FindAllString(strings.ToLower(tag), -1) {
			if _, stop := v.stopWords[tok]; stop {
				continue
			}
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func weigh(tokens []string, column map[string]int, idf []float64) domain.Vector {
	counts := make(map[int]float64, len(tokens))
	for _, tok := range tokens {
		counts[column[tok]]++
	}

	indices := make([]int, 0, len(counts))
	for idx := range counts {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	values := make([]float64, len(indices))
	var sum float64
	for i, idx := range indices {
		values[i] = counts[idx] * idf[idx]
		sum += values[i] * values[i]
	}

	if norm := math.Sqrt(sum); norm > 0 {
		for i := range values {
			values[i] /= norm
		}
	}

	return domain.Vector{Indices: indices, Values: values}
}

var _ domain.Vectorizer = (*Vectorizer)(nil)
