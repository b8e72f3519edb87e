package router

import (
	"context"
	"log"
	"time"

	"github.com/anonto42/second-brain/backend/internal/auth"
	"github.com/anonto42/second-brain/backend/internal/handlers"
	"github.com/anonto42/second-brain/backend/internal/middleware"
	"github.com/anonto42/second-brain/backend/internal/models"
	"github.com/anonto42/second-brain/backend/internal/repositories"
	"github.com/anonto42/second-brain/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cfg *config.Config, db *config.DB) {
	userRepo, contentRepo, shareLinkRepo := setupRepositories(cfg, db)

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "Server is running"})
	})

	tokens := auth.NewTokenService(cfg.JWTSecret)

	// --- Unprotected routes ---
	public := e.Group("/api/v1")

	authHandler := handlers.NewAuthHandler(userRepo, tokens)
	authHandler.RegisterAuthRoutes(public)
	log.Println("Auth routes configured.")

	brainHandler := handlers.NewBrainHandler(shareLinkRepo, contentRepo, userRepo)
	brainHandler.RegisterPublicRoutes(public)
	log.Println("Public share routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(tokens))
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	contentHandler := handlers.NewContentHandler(contentRepo)
	contentHandler.RegisterContentRoutes(api)
	log.Println("Content routes configured.")

	brainHandler.RegisterShareRoutes(api)
	log.Println("Share routes configured.")

	log.Println("All routes configured.")
}

// setupRepositories builds the repository set for the configured storage
// driver and puts the store-level constraints (unique indexes / migrations)
// in place before the server starts taking requests.
func setupRepositories(cfg *config.Config, db *config.DB) (repositories.UserRepository, repositories.ContentRepository, repositories.ShareLinkRepository) {
	if cfg.StorageDriver == config.DriverPostgres {
		err := db.Postgres.AutoMigrate(
			&models.User{},
			&models.Content{},
			&models.ShareLink{},
		)
		if err != nil {
			log.Fatalf("Failed to auto migrate models: %v", err)
		}
		log.Println("PostgreSQL auto-migrations completed for all models.")

		return repositories.NewPostgresUserRepository(db.Postgres),
			repositories.NewPostgresContentRepository(db.Postgres),
			repositories.NewPostgresShareLinkRepository(db.Postgres)
	}

	mdb := db.Mongo.Database(cfg.MongoDatabase)
	userRepo := repositories.NewMongoUserRepository(mdb)
	contentRepo := repositories.NewMongoContentRepository(mdb)
	shareLinkRepo := repositories.NewMongoShareLinkRepository(mdb)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}
	if err := contentRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create content indexes: %v", err)
	}
	if err := shareLinkRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create share link indexes: %v", err)
	}
	log.Println("MongoDB indexes ensured for all collections.")

	return userRepo, contentRepo, shareLinkRepo
}
