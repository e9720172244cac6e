package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/foodfolio/backend/internal/service"
)

const defaultRandomCount = 10

// RecipeHandler passes recipe browsing and search through to the external
// recipe API. Upstream JSON is forwarded to the client unmodified.
type RecipeHandler struct {
	recipes service.RecipeAPI
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(recipes service.RecipeAPI) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("/random", h.Random)
		recipes.GET("/search", h.Search)
		recipes.GET("/:id", h.Get)
	}
}

func (h *RecipeHandler) Random(c *gin.Context) {
	count := defaultRandomCount
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid count"})
			return
		}
		count = n
	}

	body, err := h.recipes.GetRandom(c.Request.Context(), count)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "recipe service unavailable"})
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}

func (h *RecipeHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	body, err := h.recipes.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "recipe service unavailable"})
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}

func (h *RecipeHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	body, err := h.recipes.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "recipe service unavailable"})
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}
