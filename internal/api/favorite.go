package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/foodfolio/backend/internal/middleware"
	"github.com/foodfolio/backend/internal/service"
)

// FavoriteHandler exposes the favorite toggle and listing.
type FavoriteHandler struct {
	favoriteService service.IFavoriteService
	authService     service.IAuthService
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(favoriteService service.IFavoriteService, authService service.IAuthService) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
		authService:     authService,
	}
}

func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup) {
	authed := router.Group("")
	authed.Use(middleware.AuthMiddleware(h.authService))
	{
		authed.POST("/recipes/:id/favorite", h.Toggle)
		authed.GET("/favorites", h.List)
	}
}

func (h *FavoriteHandler) Toggle(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	recipeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	result, err := h.favoriteService.Toggle(c.Request.Context(), userID, recipeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipe_id": recipeID,
		"favorited": result == service.FavoriteAdded,
		"status":    result.String(),
	})
}

func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	favorites, err := h.favoriteService.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list favorites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}
