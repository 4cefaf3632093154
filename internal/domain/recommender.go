package domain

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/davidbz/genrerec/internal/observability"
)

const (
	eventRecommendationServed = "recommendation.served"
	eventPreferencesAggregate = "preferences.aggregated"
)

// RecommendationService ranks catalog items by genre similarity.
type RecommendationService struct {
	similarity SimilaritySource
	publisher  EventPublisher
}

// NewRecommendationService creates a new recommendation service (DI constructor).
// The publisher may be nil.
func NewRecommendationService(similarity SimilaritySource, publisher EventPublisher) *RecommendationService {
	return &RecommendationService{
		similarity: similarity,
		publisher:  publisher,
	}
}

// Recommend returns the topN titles most similar to seed, excluding seed itself.
// A missing seed yields OutcomeNotFound and a computation error yields
// OutcomeFailed; both carry an empty list.
func (s *RecommendationService) Recommend(ctx context.Context, catalog *Catalog, seed string, topN int) SeedResult {
	result := s.recommend(ctx, catalog, seed, topN)

	s.publish(ctx, eventRecommendationServed, map[string]interface{}{
		"catalog": catalogName(catalog),
		"seed":    seed,
		"status":  result.Outcome.String(),
		"count":   len(result.Recommendations),
	})

	return result
}

// Aggregate sums the per-seed recommendation scores of every seed and
// returns the overall topN. Seeds that cannot be resolved contribute nothing.
func (s *RecommendationService) Aggregate(
	ctx context.Context,
	catalog *Catalog,
	seeds []string,
	topN int,
) (result AggregateResult) {
	logger := observability.FromContext(ctx)

	result = AggregateResult{
		Recommendations: []Recommendation{},
		Seeds:           make([]SeedResult, 0, len(seeds)),
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("aggregation panicked", observability.Any("panic", r))
			result.Recommendations = []Recommendation{}
		}
	}()

	// totals keeps first-accumulated order for stable tie breaking.
	var totals []Recommendation
	position := make(map[string]int)

	for _, seed := range seeds {
		seedResult := s.recommend(ctx, catalog, seed, topN)
		result.Seeds = append(result.Seeds, seedResult)

		for _, rec := range seedResult.Recommendations {
			i, seen := position[rec.Title]
			if !seen {
				position[rec.Title] = len(totals)
				totals = append(totals, Recommendation{Title: rec.Title})
				i = len(totals) - 1
			}
			totals[i].Score += rec.Score
		}
	}

	slices.SortStableFunc(totals, func(a, b Recommendation) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if topN > 0 && len(totals) > 0 {
		result.Recommendations = totals[:min(topN, len(totals))]
	}

	if unresolved := result.Unresolved(); len(unresolved) > 0 {
		logger.Info("some seeds contributed no recommendations",
			observability.Strings("seeds", unresolved))
	}

	s.publish(ctx, eventPreferencesAggregate, map[string]interface{}{
		"catalog":    catalogName(catalog),
		"seeds":      len(seeds),
		"unresolved": len(result.Unresolved()),
		"count":      len(result.Recommendations),
	})

	return result
}

func (s *RecommendationService) recommend(
	ctx context.Context,
	catalog *Catalog,
	seed string,
	topN int,
) (result SeedResult) {
	ctx = observability.WithSeed(ctx, seed)
	logger := observability.FromContext(ctx)

	result = SeedResult{
		Seed:            seed,
		Outcome:         OutcomeNotFound,
		Recommendations: []Recommendation{},
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error("recommendation panicked", observability.Any("panic", r))
			result.Outcome = OutcomeFailed
			result.Recommendations = []Recommendation{}
		}
		observability.RecordOutcome(result.Outcome.String())
	}()

	idx, ok := catalog.IndexOf(seed)
	if !ok {
		logger.Info("seed title not found in catalog")
		return result
	}
	result.Outcome = OutcomeFound

	if topN <= 0 {
		return result
	}

	matrix, err := s.similarity.Matrix(ctx, catalog)
	if err != nil {
		logger.Error("failed to compute similarity matrix", observability.Error(err))
		result.Outcome = OutcomeFailed
		return result
	}
	if matrix.Size() != catalog.Len() {
		logger.Error("similarity matrix does not match catalog",
			observability.Error(fmt.Errorf("%w: size %d, catalog %d", ErrMatrixShape, matrix.Size(), catalog.Len())))
		result.Outcome = OutcomeFailed
		return result
	}

	result.Recommendations = rankRow(catalog, matrix.Row(idx), idx, topN)
	return result
}

// rankRow orders every column except exclude by descending score. The sort is
// stable, so equal scores keep ascending catalog order.
func rankRow(catalog *Catalog, row []float64, exclude, topN int) []Recommendation {
	type scored struct {
		index int
		score float64
	}

	candidates := make([]scored, 0, len(row))
	for j, score := range row {
		if j == exclude {
			continue
		}
		candidates = append(candidates, scored{index: j, score: score})
	}

	slices.SortStableFunc(candidates, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	n := min(topN, len(candidates))
	out := make([]Recommendation, n)
	for i := range n {
		out[i] = Recommendation{
			Title: catalog.Item(candidates[i].index).Title,
			Score: candidates[i].score,
		}
	}
	return out
}

func (s *RecommendationService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(ctx, eventType, data)
}

func catalogName(catalog *Catalog) string {
	if catalog == nil {
		return ""
	}
	return catalog.Name()
}
