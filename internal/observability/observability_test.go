package observability_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/davidbz/genrerec/internal/observability"
)

func TestFromContext(t *testing.T) {
	t.Run("should attach context fields", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		observability.SetLogger(zap.New(core))
		t.Cleanup(func() { observability.SetLogger(zap.NewNop()) })

		ctx := observability.WithRequestID(context.Background(), "req-1")
		ctx = observability.WithCatalog(ctx, "movies")
		ctx = observability.WithSeed(ctx, "Inception")

		observability.FromContext(ctx).Info("hello")

		require.Equal(t, 1, logs.Len())
		fields := logs.All()[0].ContextMap()
		require.Equal(t, "req-1", fields["request_id"])
		require.Equal(t, "movies", fields["catalog"])
		require.Equal(t, "Inception", fields["seed"])
		require.NotContains(t, fields, "trace_id")
	})

	t.Run("should attach trace and span ids in order", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		observability.SetLogger(zap.New(core))
		t.Cleanup(func() { observability.SetLogger(zap.NewNop()) })

		ctx := observability.WithSpanID(context.Background(), "span-1")
		ctx = observability.WithTraceID(ctx, "trace-1")

		observability.FromContext(ctx).Info("hello")

		entry := logs.All()[0]
		require.Len(t, entry.Context, 2)
		require.Equal(t, "trace_id", entry.Context[0].Key)
		require.Equal(t, "span_id", entry.Context[1].Key)
		require.Equal(t, "trace-1", observability.GetTraceID(ctx))
		require.Equal(t, "span-1", observability.GetSpanID(ctx))
	})

	t.Run("should log without fields for a bare context", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		observability.SetLogger(zap.New(core))
		t.Cleanup(func() { observability.SetLogger(zap.NewNop()) })

		observability.FromContext(context.Background()).Info("hello")

		require.Empty(t, logs.All()[0].Context)
		require.Empty(t, observability.GetRequestID(context.Background()))
	})
}

func TestGenerateIDs(t *testing.T) {
	t.Run("should generate otel sized ids", func(t *testing.T) {
		require.Len(t, observability.GenerateTraceID(), 32)
		require.Len(t, observability.GenerateSpanID(), 16)
		require.NotEqual(t, observability.GenerateRequestID(), observability.GenerateRequestID())
	})
}

func TestEventBus_Publish(t *testing.T) {
	t.Run("should log events with sorted fields and request id", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		bus := observability.NewEventBus(zap.New(core))

		ctx := observability.WithRequestID(context.Background(), "req-9")
		bus.Publish(ctx, "recommendation.served", map[string]interface{}{
			"seed":  "Inception",
			"count": 3,
		})

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		require.Equal(t, "recommendation.served", entry.Message)

		keys := make([]string, 0, len(entry.Context))
		for _, f := range entry.Context {
			keys = append(keys, f.Key)
		}
		require.Equal(t, []string{"event", "count", "seed", "request_id"}, keys)
	})

	t.Run("should ignore a nil bus", func(t *testing.T) {
		var bus *observability.EventBus
		require.NotPanics(t, func() {
			bus.Publish(context.Background(), "noop", nil)
		})
	})
}

func TestMetrics(t *testing.T) {
	t.Run("should count outcomes", func(t *testing.T) {
		before := testutil.ToFloat64(observability.RecommendationOutcomesTotal.WithLabelValues("not_found"))
		observability.RecordOutcome("not_found")
		after := testutil.ToFloat64(observability.RecommendationOutcomesTotal.WithLabelValues("not_found"))
		require.InDelta(t, before+1, after, 1e-9)
	})

	t.Run("should count cache hits and misses per backend", func(t *testing.T) {
		hits := testutil.ToFloat64(observability.SimilarityCacheHitsTotal.WithLabelValues("test"))
		misses := testutil.ToFloat64(observability.SimilarityCacheMissesTotal.WithLabelValues("test"))

		observability.RecordCacheHit("test")
		observability.RecordCacheMiss("test")
		observability.RecordCacheMiss("test")

		require.InDelta(t, hits+1, testutil.ToFloat64(observability.SimilarityCacheHitsTotal.WithLabelValues("test")), 1e-9)
		require.InDelta(t, misses+2, testutil.ToFloat64(observability.SimilarityCacheMissesTotal.WithLabelValues("test")), 1e-9)
	})

	t.Run("should observe matrix builds", func(t *testing.T) {
		observability.RecordMatrixBuild("tfidf", 2*time.Millisecond)
		require.Positive(t, testutil.CollectAndCount(observability.MatrixBuildDuration))
	})
}
