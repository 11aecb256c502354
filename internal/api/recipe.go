package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/smartchef/smartchef-v4/backend/internal/service"
)

// RecipeHandler serves the public recipe reads.
type RecipeHandler struct {
	recipes *service.RecipeService
	logger  *zap.Logger
}

func NewRecipeHandler(recipes *service.RecipeService, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipes: recipes,
		logger:  logger,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recipes", h.ListRecipes)
	router.GET("/recipes/:slug", h.GetRecipe)
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	recipes, total, err := h.recipes.List(c.Request.Context(), page, limit)
	if err != nil {
		h.logger.Error("list recipes failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
		"pagination": Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipes.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		h.logger.Error("get recipe failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}
