package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smartchef/smartchef-v4/backend/config"
	"github.com/smartchef/smartchef-v4/backend/internal/generator"
	"github.com/smartchef/smartchef-v4/backend/internal/model"
)

// ScanResult is the outcome of one scan request.
type ScanResult struct {
	Ingredients []string
	Recipes     []model.Recipe
	Elapsed     time.Duration
}

// ScanService runs the scan pipeline: detect ingredients, synthesize and
// persist recipes, then append the audit record.
type ScanService struct {
	db      *gorm.DB
	recipes *RecipeService
	gen     *generator.Generator
	storage *config.S3Storage // nil disables photo storage
	logger  *zap.Logger
}

func NewScanService(db *gorm.DB, recipes *RecipeService, gen *generator.Generator, storage *config.S3Storage, logger *zap.Logger) *ScanService {
	return &ScanService{
		db:      db,
		recipes: recipes,
		gen:     gen,
		storage: storage,
		logger:  logger,
	}
}

// ProcessScan handles one uploaded photo. userID is nil for anonymous
// requests. Recipes are upserted one by one before the scan record is
// written; a failure in between leaves already-persisted recipes behind
// without a matching scan entry.
func (s *ScanService) ProcessScan(ctx context.Context, userID *uuid.UUID, fileName string, data []byte) (*ScanResult, error) {
	start := time.Now()

	ingredients := s.gen.DetectIngredients()
	recipes := s.gen.ComposeRecipes(ingredients)

	for i := range recipes {
		if err := s.recipes.UpsertBySlug(ctx, &recipes[i]); err != nil {
			return nil, err
		}
	}

	var imageURL string
	if s.storage != nil {
		url, err := s.storage.UploadScanImage(ctx, fileName, data)
		if err != nil {
			// the scan result does not depend on the stored photo
			s.logger.Warn("failed to store scan image", zap.String("file", fileName), zap.Error(err))
		} else {
			imageURL = url
		}
	}

	scan := model.Scan{
		Ingredients: model.JSONBStringArray(ingredients),
		RecipeCount: len(recipes),
		UserID:      userID,
		FileName:    fileName,
		FileSize:    int64(len(data)),
		ImageURL:    imageURL,
	}
	if err := s.db.WithContext(ctx).Create(&scan).Error; err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	s.logger.Info("scan processed",
		zap.String("file", fileName),
		zap.Int64("size", scan.FileSize),
		zap.Int("recipes", len(recipes)),
		zap.Duration("elapsed", elapsed),
	)

	return &ScanResult{
		Ingredients: ingredients,
		Recipes:     recipes,
		Elapsed:     elapsed,
	}, nil
}

// History returns the user's 20 most recent scans, newest-first.
func (s *ScanService) History(ctx context.Context, userID uuid.UUID) ([]model.Scan, error) {
	scans := []model.Scan{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(20).
		Find(&scans).Error
	return scans, err
}
