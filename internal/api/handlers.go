package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smartchef/smartchef-v4/backend/config"
	"github.com/smartchef/smartchef-v4/backend/internal/generator"
	"github.com/smartchef/smartchef-v4/backend/internal/middleware"
	"github.com/smartchef/smartchef-v4/backend/internal/service"
)

// HealthCheck is the public status probe.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "SmartChef v4.0 Running",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// RegisterRoutes builds all services and handlers and wires the route
// surface. redisClient and storage may be nil; the corresponding features
// (rate limiting, photo storage) are then disabled.
func RegisterRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, storage *config.S3Storage, redisClient *redis.Client, logger *zap.Logger) {
	router.GET("/", HealthCheck)

	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db)
	recipeService := service.NewRecipeService(db)
	savedService := service.NewSavedRecipeService(db)
	gen := generator.New(time.Now().UnixNano())
	scanService := service.NewScanService(db, recipeService, gen, storage, logger)

	var scanLimiter *middleware.RateLimiter
	if redisClient != nil {
		scanLimiter = middleware.NewScanRateLimiter(redisClient)
	}

	authHandler := NewAuthHandler(authService, profileService, logger)
	scanHandler := NewScanHandler(scanService, authService, logger)
	recipeHandler := NewRecipeHandler(recipeService, logger)
	savedHandler := NewSavedRecipeHandler(savedService, authService, logger)

	apiGroup := router.Group("/api")
	authHandler.RegisterRoutes(apiGroup)
	scanHandler.RegisterRoutes(apiGroup, scanLimiter)
	recipeHandler.RegisterRoutes(apiGroup)
	savedHandler.RegisterRoutes(apiGroup)
}
