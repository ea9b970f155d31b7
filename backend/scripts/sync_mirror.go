package main

import (
	"context"
	"flag"
	"fmt"

	"sahayak/backend/internal/mirror"
	"sahayak/backend/internal/seed"
	"sahayak/backend/pkg/config"
	"sahayak/backend/pkg/errors"
	"sahayak/backend/pkg/logger"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

func main() {
	force := flag.Bool("force", false, "Clear and re-sync even if the mirror is already populated")
	flag.Parse()

	// Initialize logger
	if err := logger.Init("development"); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting Neo4j mirror sync...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}
	if !cfg.HasNeo4j() {
		log.Fatal("Set NEO4J_URI and NEO4J_PASSWORD to enable the mirror",
			zap.Error(errors.ErrMirrorUnavailable))
	}

	data, err := seed.Load(cfg.SeedDataPath)
	if err != nil {
		log.Fatal("Failed to load seed data", zap.Error(err))
	}

	ctx := context.Background()
	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
	)
	if err != nil {
		log.Fatal("Failed to create Neo4j driver", zap.Error(err))
	}
	defer driver.Close(ctx)

	if err := driver.VerifyConnectivity(ctx); err != nil {
		log.Fatal("Failed to verify Neo4j connectivity", zap.Error(err))
	}

	repo := mirror.NewRepository(driver, cfg.Neo4jDatabase)
	if err := repo.Sync(ctx, data, *force); err != nil {
		log.Fatal("Mirror sync failed", zap.Error(err))
	}

	stats, err := repo.GraphStats(ctx)
	if err != nil {
		log.Warn("Failed to read mirror stats", zap.Error(err))
		return
	}
	log.Info("Mirror sync complete",
		zap.Int64("nodes", stats.TotalNodes),
		zap.Int64("relationships", stats.TotalRelationships),
	)
}
