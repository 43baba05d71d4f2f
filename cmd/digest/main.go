package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"dotdigest/config"
	"dotdigest/internal/digest"
)

func main() {
	// .env is optional; viper picks the variables up.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	pipeline, err := digest.New(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to init pipeline: %v", err)
	}
	defer pipeline.Close()

	rep, err := pipeline.Run(context.Background())
	if err != nil {
		log.Fatalf("Digest run failed: %v", err)
	}

	logger.Info("digest run finished",
		zap.Int("top_topics", len(rep.TopTopics)),
		zap.Int("influential_users", len(rep.InfluentialUsers)),
		zap.Int("risky_proposals", len(rep.RiskyProposals)),
		zap.Int("keyword_correlations", len(rep.Correlations.Keywords)))
}
