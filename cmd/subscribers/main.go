package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"dotdigest/config"
	"dotdigest/internal/store"
)

// Manages the newsletter subscriber list. `add` re-activates an email
// that unsubscribed earlier.
func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		log.Fatal("usage: subscribers <add|remove|list> [email]")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := store.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	switch os.Args[1] {
	case "add":
		email := emailArg()
		if err := db.AddSubscriber(ctx, email); err != nil {
			log.Fatalf("Failed to add subscriber: %v", err)
		}
		log.Printf("subscribed %s", email)
	case "remove":
		email := emailArg()
		if err := db.Unsubscribe(ctx, email); err != nil {
			log.Fatalf("Failed to unsubscribe: %v", err)
		}
		log.Printf("unsubscribed %s", email)
	case "list":
		emails, err := db.ActiveSubscribers(ctx)
		if err != nil {
			log.Fatalf("Failed to list subscribers: %v", err)
		}
		for _, email := range emails {
			fmt.Println(email)
		}
	default:
		log.Fatalf("unknown command %q, want add, remove or list", os.Args[1])
	}
}

func emailArg() string {
	if len(os.Args) < 3 {
		log.Fatalf("usage: subscribers %s <email>", os.Args[1])
	}
	return os.Args[2]
}
