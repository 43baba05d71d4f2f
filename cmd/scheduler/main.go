package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"dotdigest/config"
	"dotdigest/internal/digest"
)

func main() {
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

	c := cron.New()
	_, err = c.AddFunc(cfg.Digest.Schedule, func() {
		logger.Info("scheduled digest run starting")
		if _, err := pipeline.Run(context.Background()); err != nil {
			logger.Error("scheduled digest run failed", zap.Error(err))
		}
	})
	if err != nil {
		log.Fatalf("Invalid schedule %q: %v", cfg.Digest.Schedule, err)
	}

	logger.Info("scheduler started", zap.String("schedule", cfg.Digest.Schedule))
	c.Start()
	select {}
}
