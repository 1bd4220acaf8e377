package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopscout/backend/config"
	httpDelivery "github.com/shopscout/backend/internal/delivery/http"
	"github.com/shopscout/backend/internal/infrastructure/amazon"
	"github.com/shopscout/backend/internal/infrastructure/serpapi"
	"github.com/shopscout/backend/internal/usecase"
)

func main() {
	// Load .env if present; deployment environments set the variables directly
	if err := godotenv.Load(); err == nil {
		log.Printf(".env file loaded")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ShopScout Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Missing keys are not fatal: provider calls fail and the clients
	// substitute their fallback lists
	if cfg.Amazon.APIKey == "" {
		log.Printf("WARNING: RapidAPI key not configured - Amazon searches will return fallback data")
	}
	if cfg.SerpAPI.APIKey == "" {
		log.Printf("WARNING: SerpAPI key not configured - Google Shopping searches will return fallback data")
	}
	if cfg.LLM.DeploymentID != "" {
		// Configured for the hosting platform; the pipeline itself never calls an LLM
		log.Printf("LLM deployment configured: %s", cfg.LLM.DeploymentID)
	}

	// Initialize provider clients
	amazonClient := amazon.NewClient(cfg.Amazon)
	serpapiClient := serpapi.NewClient(cfg.SerpAPI)

	// Initialize usecase layer
	comparisonService := usecase.NewComparisonService(amazonClient, serpapiClient)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(comparisonService)

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
