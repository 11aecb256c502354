package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/smartchef/smartchef-v4/backend/internal/middleware"
	"github.com/smartchef/smartchef-v4/backend/internal/service"
)

// SavedRecipeHandler serves the authenticated save/unsave/list endpoints.
type SavedRecipeHandler struct {
	saved  *service.SavedRecipeService
	auth   *service.AuthService
	logger *zap.Logger
}

func NewSavedRecipeHandler(saved *service.SavedRecipeService, auth *service.AuthService, logger *zap.Logger) *SavedRecipeHandler {
	return &SavedRecipeHandler{
		saved:  saved,
		auth:   auth,
		logger: logger,
	}
}

func (h *SavedRecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	saved := router.Group("/saved-recipes")
	saved.Use(middleware.RequireAuth(h.auth))
	{
		saved.POST("", h.Save)
		saved.GET("", h.List)
		saved.DELETE("/:slug", h.Unsave)
	}
}

func (h *SavedRecipeHandler) Save(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req SaveRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipeSlug is required"})
		return
	}

	if err := h.saved.Save(c.Request.Context(), userID, req.RecipeSlug); err != nil {
		if errors.Is(err, service.ErrAlreadySaved) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Recipe already saved"})
			return
		}
		h.logger.Error("save recipe failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Recipe saved"})
}

func (h *SavedRecipeHandler) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipes, err := h.saved.ListSaved(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("list saved recipes failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch saved recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"savedRecipes": recipes})
}

func (h *SavedRecipeHandler) Unsave(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.saved.Unsave(c.Request.Context(), userID, c.Param("slug")); err != nil {
		h.logger.Error("remove saved recipe failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Recipe removed from saved"})
}
