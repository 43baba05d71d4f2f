package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"dotdigest/config"
	"dotdigest/internal/newsletter"
	"dotdigest/internal/report"
	"dotdigest/internal/store"
)

// Builds the digest email from the latest stored run and sends it to the
// active subscribers. Pass "test" as the first argument to deliver to
// the first subscriber only.
func main() {
	_ = godotenv.Load()

	testMode := len(os.Args) > 1 && os.Args[1] == "test"

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Newsletter.ResendAPIKey == "" {
		log.Fatal("newsletter.resend_api_key is required to send")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	db, err := store.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	raw, err := db.LatestRun(ctx)
	if err != nil {
		log.Fatalf("No stored digest run: %v", err)
	}

	var rep report.Report
	if err := json.Unmarshal(raw, &rep); err != nil {
		log.Fatalf("Failed to decode stored report: %v", err)
	}

	now := time.Now()
	html, err := newsletter.Build(&rep, now)
	if err != nil {
		log.Fatalf("Failed to build newsletter: %v", err)
	}

	subscribers, err := db.ActiveSubscribers(ctx)
	if err != nil {
		log.Fatalf("Failed to list subscribers: %v", err)
	}
	if len(subscribers) == 0 {
		logger.Warn("no active subscribers")
		return
	}

	mailer := newsletter.NewMailer(cfg.Newsletter.ResendAPIKey, cfg.Newsletter.FromEmail, logger)
	subject := "Polkadot Community Digest - " + now.Format("2006-01-02")
	result := mailer.Send(ctx, subject, html, subscribers, testMode)

	logger.Info("newsletter delivery finished",
		zap.Int("sent", result.Sent), zap.Int("failed", result.Failed),
		zap.Bool("test_mode", testMode))
}
