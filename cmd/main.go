package main

import (
	"context"
	"log"

	"github.com/davidbz/genrerec/internal/app"
	"github.com/davidbz/genrerec/internal/config"
	"github.com/davidbz/genrerec/internal/domain"
	"github.com/davidbz/genrerec/internal/http"
	"github.com/davidbz/genrerec/internal/http/middleware"
	"github.com/davidbz/genrerec/internal/observability"
)

func main() {
	container, err := app.BuildContainer()
	if err != nil {
		log.Fatalf("Failed to build container: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	// Precompute similarity matrices before serving.
	if err := container.Invoke(func(engine *domain.SimilarityEngine, reg domain.CatalogRegistry) {
		ctx := context.Background()
		if err := app.Warm(ctx, engine, reg); err != nil {
			observability.FromContext(ctx).Warn("catalog warm-up failed", observability.Error(err))
		}
	}); err != nil {
		log.Fatalf("Failed to warm catalogs: %v", err)
	}

	err = container.Invoke(func(server *http.Server, cfg *config.EngineConfig) {
		observability.FromContext(context.Background()).Info("recommendation engine ready",
			observability.String("vectorizer", cfg.Vectorizer),
			observability.Int("default_top_n", cfg.DefaultTopN))

		if err := server.Start(); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}
