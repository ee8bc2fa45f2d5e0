package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/franciscosanchezn/pizza-order-api/internal/database"
	"github.com/franciscosanchezn/pizza-order-api/internal/services"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Parse command line flags, falling back to the same variables the API reads
	_ = godotenv.Load()
	dbURL := flag.String("database-url", os.Getenv("DATABASE_URL"), "Document store URL (mongodb://, postgres://, sqlite:)")
	dbName := flag.String("database-name", os.Getenv("DATABASE_NAME"), "Database name")
	timeout := flag.Duration("timeout", 30*time.Second, "Overall timeout")
	flag.Parse()

	log.SetFormatter(&log.JSONFormatter{})

	if *dbURL == "" {
		log.Fatal("A database URL is required: pass -database-url or set DATABASE_URL")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	cfg, err := database.NewDatabaseConfig(*dbURL, *dbName)
	if err != nil {
		log.WithError(err).Fatal("Invalid database configuration")
	}

	store, err := database.InitDatabase(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer store.Close(context.Background())

	result, err := services.NewPizzaService(store).SeedPizzas(ctx)
	if err != nil {
		_ = store.Close(context.Background())
		log.WithError(err).Fatal("Failed to seed menu")
	}

	if result.Seeded {
		fmt.Printf("✓ Menu seeded with %d pizzas in %s\n", result.Count, cfg.String())
		return
	}
	fmt.Printf("Menu not seeded: %s\n", result.Message)
}
