package main

import (
	"log"

	"github.com/anonto42/second-brain/backend/internal/router"
	"github.com/anonto42/second-brain/backend/pkg/config"
	"github.com/anonto42/second-brain/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	router.SetupRoutes(e, cfg, db)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
