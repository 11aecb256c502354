package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smartchef/smartchef-v4/backend/internal/middleware"
	"github.com/smartchef/smartchef-v4/backend/internal/service"
)

// ScanHandler serves the photo-scan endpoint and the per-user scan history.
type ScanHandler struct {
	scans  *service.ScanService
	auth   *service.AuthService
	logger *zap.Logger
}

func NewScanHandler(scans *service.ScanService, auth *service.AuthService, logger *zap.Logger) *ScanHandler {
	return &ScanHandler{
		scans:  scans,
		auth:   auth,
		logger: logger,
	}
}

// RegisterRoutes wires the scan routes. limiter may be nil, in which case the
// endpoint runs unthrottled.
func (h *ScanHandler) RegisterRoutes(router *gin.RouterGroup, limiter *middleware.RateLimiter) {
	scan := []gin.HandlerFunc{middleware.OptionalAuth(h.auth)}
	if limiter != nil {
		scan = append(scan, limiter.Middleware())
	}
	scan = append(scan, h.Scan)

	router.POST("/scan", scan...)
	router.GET("/scan-history", middleware.RequireAuth(h.auth), h.History)
}

func (h *ScanHandler) Scan(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
		return
	}
	defer file.Close()

	// the whole upload is buffered before processing; request-size limits
	// are the reverse proxy's concern
	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("failed to read upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Scan failed"})
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.CurrentUserID(c); ok {
		userID = &id
	}

	result, err := h.scans.ProcessScan(c.Request.Context(), userID, fileHeader.Filename, data)
	if err != nil {
		h.logger.Error("scan failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Scan failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"ingredients":    result.Ingredients,
		"recipes":        result.Recipes,
		"processingTime": fmt.Sprintf("%dms", result.Elapsed.Milliseconds()),
	})
}

func (h *ScanHandler) History(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	history, err := h.scans.History(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("fetch scan history failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch scan history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}
