package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/foodlens/backend/config"
	httpDelivery "github.com/foodlens/backend/internal/delivery/http"
	"github.com/foodlens/backend/internal/infrastructure/mongodb"
	"github.com/foodlens/backend/internal/usecase"
)

// connectTimeout bounds the initial store connection attempt.
const connectTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting FoodLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Store: %s/%s.%s", cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection)

	// Open the shared store client; it is read-only and shared across requests
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	store, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection)
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to product store: %v", err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Printf("Error closing store client: %v", err)
		}
	}()

	log.Printf("Connected to product store")

	// Initialize usecase layer
	productService := usecase.NewProductService(store)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(productService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
