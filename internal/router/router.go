package router

import (
	"github.com/gin-gonic/gin"

	"github.com/foodfolio/backend/internal/api"
	"github.com/foodfolio/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	profileHandler *api.ProfileHandler,
	recipeHandler *api.RecipeHandler,
	favoriteHandler *api.FavoriteHandler,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())

	router.GET("/health", api.HealthCheck)

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)
	profileHandler.RegisterRoutes(v1)
	recipeHandler.RegisterRoutes(v1)
	favoriteHandler.RegisterRoutes(v1)

	return router
}
