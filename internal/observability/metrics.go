package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals // promauto collectors register once on the default registry
var (
	// SimilarityCacheHitsTotal counts similarity matrices served from cache.
	SimilarityCacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genrerec_similarity_cache_hits_total",
			Help: "Total number of similarity matrix cache hits",
		},
		[]string{"backend"},
	)

	// SimilarityCacheMissesTotal counts similarity matrix cache misses.
	SimilarityCacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genrerec_similarity_cache_misses_total",
			Help: "Total number of similarity matrix cache misses",
		},
		[]string{"backend"},
	)

	// SimilarityCacheEvictionsTotal counts matrices dropped by the eviction policy.
	SimilarityCacheEvictionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "genrerec_similarity_cache_evictions_total",
			Help: "Total number of similarity matrices evicted from the in-memory cache",
		},
	)

	// MatrixBuildDuration tracks how long vectorization plus pairwise cosine takes.
	MatrixBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "genrerec_matrix_build_duration_seconds",
			Help:    "Duration of similarity matrix construction in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"vectorizer"},
	)

	// RecommendationOutcomesTotal counts per-seed outcomes (found, not_found, failed).
	RecommendationOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genrerec_recommendation_outcomes_total",
			Help: "Total number of seed recommendation outcomes",
		},
		[]string{"outcome"},
	)
)

// RecordCacheHit records a similarity cache hit for the given backend.
func RecordCacheHit(backend string) {
	SimilarityCacheHitsTotal.WithLabelValues(backend).Inc()
}

// RecordCacheMiss records a similarity cache miss for the given backend.
func RecordCacheMiss(backend string) {
	SimilarityCacheMissesTotal.WithLabelValues(backend).Inc()
}

// RecordCacheEviction records one eviction from the in-memory cache.
func RecordCacheEviction() {
	SimilarityCacheEvictionsTotal.Inc()
}

// RecordMatrixBuild records the duration of one matrix build.
func RecordMatrixBuild(vectorizer string, d time.Duration) {
	MatrixBuildDuration.WithLabelValues(vectorizer).Observe(d.Seconds())
}

// RecordOutcome records one seed outcome.
func RecordOutcome(outcome string) {
	RecommendationOutcomesTotal.WithLabelValues(outcome).Inc()
}
