package main

import (
	"context"
	"log"
	"os"

	"github.com/davidbz/genrerec/internal/app"
	"github.com/davidbz/genrerec/internal/config"
	"github.com/davidbz/genrerec/internal/console"
	"github.com/davidbz/genrerec/internal/domain"
)

func main() {
	container, err := app.BuildContainer()
	if err != nil {
		log.Fatalf("Failed to build container: %v", err)
	}

	if err := container.Provide(func(
		svc *domain.RecommendationService,
		reg domain.CatalogRegistry,
		cfg *config.EngineConfig,
	) *console.Console {
		return console.NewConsole(svc, reg, cfg.DefaultTopN)
	}); err != nil {
		log.Fatalf("Failed to provide console: %v", err)
	}

	err = container.Invoke(func(c *console.Console) error {
		return c.Run(context.Background(), os.Stdin, os.Stdout)
	})
	if err != nil {
		log.Fatalf("Console failed: %v", err)
	}
}
