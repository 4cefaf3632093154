// Package openai implements a domain.Vectorizer backed by OpenAI embeddings.
// Each genre document is embedded as its comma-joined tags.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/davidbz/genrerec/internal/domain"
	"github.com/davidbz/genrerec/internal/observability"
)

// Vectorizer embeds genre documents using OpenAI.
type Vectorizer struct {
	client openai.Client
	model  string
	calls  atomic.Int64
}

// NewVectorizer creates a new OpenAI embedding vectorizer.
func NewVectorizer(config Config) (*Vectorizer, error) {
	if config.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	if config.Model == "" {
		config.Model = string(openai.EmbeddingModelTextEmbedding3Small)
	}

	opts := []option.RequestOption{option.WithAPIKey(config.APIKey)}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	return &Vectorizer{
		client: openai.NewClient(opts...),
		model:  config.Model,
	}, nil
}

// Vectorize embeds every non-empty document in one request. Documents
// without text get an empty vector, which is orthogonal to everything.
func (v *Vectorizer) Vectorize(ctx context.Context, documents [][]string) ([]domain.Vector, error) {
	v.calls.Add(1)
	logger := observability.FromContext(ctx)

	inputs, positions := DocumentTexts(documents)
	vectors := make([]domain.Vector, len(documents))
	if len(inputs) == 0 {
		return vectors, nil
	}

	//nolint:exhaustruct // OpenAI SDK struct has many optional fields
	resp, err := v.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: inputs,
		},
		Model: openai.EmbeddingModel(v.model),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create embeddings: %w", err)
	}

	if len(resp.Data) != len(inputs) {
		return nil, fmt.Errorf("%w: requested %d embeddings, got %d", domain.ErrVectorCount, len(inputs), len(resp.Data))
	}

	for _, item := range resp.Data {
		if item.Index < 0 || int(item.Index) >= len(positions) {
			return nil, fmt.Errorf("embedding index %d out of range", item.Index)
		}
		vectors[positions[item.Index]] = domain.DenseVector(item.Embedding)
	}

	logger.Info("genre documents embedded",
		observability.String("model", v.model),
		observability.Int("documents", len(inputs)))

	return vectors, nil
}

// DocumentTexts joins each document's tags and returns the non-empty texts
// together with the document position each text came from.
func DocumentTexts(documents [][]string) ([]string, []int) {
	inputs := make([]string, 0, len(documents))
	positions := make([]int, 0, len(documents))
	for i, doc := range documents {
		tags := make([]string, 0, len(doc))
		for _, tag := range doc {
			if tag != "" {
				tags = append(tags, tag)
			}
		}
		if len(tags) == 0 {
			continue
		}
		inputs = append(inputs, strings.Join(tags, ", "))
		positions = append(positions, i)
	}
	return inputs, positions
}

// Name returns the vectorizer identifier.
func (v *Vectorizer) Name() string {
	return "openai"
}

// Calls returns how many times Vectorize has run.
func (v *Vectorizer) Calls() int64 {
	return v.calls.Load()
}

var _ domain.Vectorizer = (*Vectorizer)(nil)
