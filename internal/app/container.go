// Package app wires the recommendation engine with go.uber.org/dig. Both the
// HTTP server and the console front-end build on this container.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/genrerec/internal/cache/memory"
	"github.com/davidbz/genrerec/internal/cache/redis"
	"github.com/davidbz/genrerec/internal/cache/tiered"
	"github.com/davidbz/genrerec/internal/catalog"
	"github.com/davidbz/genrerec/internal/config"
	"github.com/davidbz/genrerec/internal/domain"
	"github.com/davidbz/genrerec/internal/observability"
	"github.com/davidbz/genrerec/internal/vectorizer/openai"
	"github.com/davidbz/genrerec/internal/vectorizer/tfidf"
)

const redisPingTimeout = 5 * time.Second

var (
	// ErrUnknownVectorizer indicates an unsupported VECTORIZER value.
	ErrUnknownVectorizer = errors.New("unknown vectorizer")

	// ErrUnknownCacheBackend indicates an unsupported CACHE_BACKEND value.
	ErrUnknownCacheBackend = errors.New("unknown cache backend")
)

// BuildContainer provides configuration, logging, catalogs, the similarity
// engine and the recommendation service.
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []struct {
		name        string
		constructor interface{}
	}{
		{"config", config.Load},
		{"config dependencies", config.ParseDependenciesConfig},
		{"logger", observability.InitLogger},
		{"event publisher", func(logger *zap.Logger) domain.EventPublisher {
			return observability.NewEventBus(logger)
		}},
		{"vectorizer", NewVectorizer},
		{"matrix cache", NewMatrixCache},
		{"catalog registry", NewCatalogRegistry},
		{"similarity engine", domain.NewSimilarityEngine},
		{"similarity source", func(engine *domain.SimilarityEngine) domain.SimilaritySource {
			return engine
		}},
		{"recommendation service", domain.NewRecommendationService},
	}

	for _, p := range providers {
		if err := container.Provide(p.constructor); err != nil {
			return nil, fmt.Errorf("failed to provide %s: %w", p.name, err)
		}
	}

	return container, nil
}

// NewVectorizer selects the vectorizer named by the engine config.
func NewVectorizer(engine *config.EngineConfig, oa *openai.Config) (domain.Vectorizer, error) {
	switch engine.Vectorizer {
	case "", "tfidf":
		return tfidf.NewVectorizer(), nil
	case "openai":
		v, err := openai.NewVectorizer(*oa)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai vectorizer: %w", err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownVectorizer, engine.Vectorizer)
	}
}

// NewMatrixCache builds the similarity cache backend named by the cache config.
func NewMatrixCache(cfg *config.CacheConfig) (domain.MatrixCache, error) {
	switch cfg.Backend {
	case "", "memory":
		return memory.NewCache(cfg.MaxEntries), nil
	case "redis":
		return newRedisCache(cfg)
	case "tiered":
		back, err := newRedisCache(cfg)
		if err != nil {
			return nil, err
		}
		return tiered.NewCache(memory.NewCache(cfg.MaxEntries), back)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCacheBackend, cfg.Backend)
	}
}

func newRedisCache(cfg *config.CacheConfig) (*redis.MatrixCache, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}

	return redis.NewMatrixCache(client, cfg.KeyPrefix, time.Duration(cfg.TTL)*time.Second)
}

// NewCatalogRegistry registers the built-in catalogs (when enabled) and every
// catalog file found in the configured directory.
func NewCatalogRegistry(cfg *config.CatalogConfig) (domain.CatalogRegistry, error) {
	ctx := context.Background()
	logger := observability.FromContext(ctx)
	reg := catalog.NewRegistry()

	var catalogs []*domain.Catalog
	if cfg.Builtin {
		catalogs = append(catalogs, catalog.Builtin()...)
	}

	if cfg.Dir != "" {
		loaded, err := catalog.LoadDir(cfg.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalogs from %s: %w", cfg.Dir, err)
		}
		catalogs = append(catalogs, loaded...)
	}

	for _, c := range catalogs {
		if err := reg.Register(ctx, c); err != nil {
			return nil, fmt.Errorf("failed to register catalog: %w", err)
		}
		logger.Info("catalog registered",
			observability.String("catalog", c.Name()),
			observability.Int("items", c.Len()))
	}

	return reg, nil
}

// Warm precomputes the similarity matrix of every registered catalog.
func Warm(ctx context.Context, engine *domain.SimilarityEngine, reg domain.CatalogRegistry) error {
	catalogs, err := reg.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list catalogs: %w", err)
	}

	return engine.Warm(ctx, catalogs...)
}
