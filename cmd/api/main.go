package main

import (
	"context"
	"log"

	"github.com/foodfolio/backend/config"
	"github.com/foodfolio/backend/internal/api"
	"github.com/foodfolio/backend/internal/database"
	"github.com/foodfolio/backend/internal/router"
	"github.com/foodfolio/backend/internal/server"
	"github.com/foodfolio/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		// Without Redis, logout cannot revoke tokens early; they still expire.
		log.Printf("Warning: failed to connect to Redis, token revocation disabled: %v", err)
		redisClient = nil
	}

	ctx := context.Background()

	var imageService service.IImageService
	if cfg.S3Bucket != "" {
		s3Config, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to configure S3: %v", err)
		}
		if err := s3Config.SetupBucketPolicy(ctx); err != nil {
			log.Printf("Warning: failed to apply bucket policy: %v", err)
		}
		imageService = service.NewImageService(s3Config)
	} else {
		log.Printf("S3_BUCKET_NAME not set, profile picture uploads disabled")
	}

	authService := service.NewAuthService(db, redisClient, cfg.JWTSecret)
	profileService := service.NewProfileService(db)
	favoriteService := service.NewFavoriteService(db)
	recipeService := service.NewSpoonacularService(cfg.RecipeAPIKey, cfg.RecipeAPIURL)

	authHandler := api.NewAuthHandler(authService)
	profileHandler := api.NewProfileHandler(profileService, imageService, authService)
	recipeHandler := api.NewRecipeHandler(recipeService)
	favoriteHandler := api.NewFavoriteHandler(favoriteService, authService)

	r := router.SetupRouter(authHandler, profileHandler, recipeHandler, favoriteHandler)

	srv := server.New(r)
	log.Printf("Starting server on :%s", cfg.ServerPort)
	if err := srv.Start(cfg.ServerPort); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
