package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartchef/smartchef-v4/backend/internal/model"
)

var ErrAlreadySaved = errors.New("recipe already saved")

// SavedRecipeService manages the user↔recipe save links.
type SavedRecipeService struct {
	db *gorm.DB
}

func NewSavedRecipeService(db *gorm.DB) *SavedRecipeService {
	return &SavedRecipeService{db: db}
}

// Save links the recipe slug to the user. Saving the same slug twice is a
// conflict.
func (s *SavedRecipeService) Save(ctx context.Context, userID uuid.UUID, slug string) error {
	var existing model.SavedRecipe
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_slug = ?", userID, slug).
		First(&existing).Error
	if err == nil {
		return ErrAlreadySaved
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	link := model.SavedRecipe{
		UserID:     userID,
		RecipeSlug: slug,
	}
	return s.db.WithContext(ctx).Create(&link).Error
}

// ListSaved returns the full recipe records for every slug the user saved,
// newest-saved-first. Links whose recipe has disappeared are skipped.
func (s *SavedRecipeService) ListSaved(ctx context.Context, userID uuid.UUID) ([]model.Recipe, error) {
	var links []model.SavedRecipe
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("saved_at DESC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return []model.Recipe{}, nil
	}

	slugs := make([]string, 0, len(links))
	for _, link := range links {
		slugs = append(slugs, link.RecipeSlug)
	}

	var recipes []model.Recipe
	if err := s.db.WithContext(ctx).Where("slug IN ?", slugs).Find(&recipes).Error; err != nil {
		return nil, err
	}

	bySlug := make(map[string]model.Recipe, len(recipes))
	for _, r := range recipes {
		bySlug[r.Slug] = r
	}

	ordered := make([]model.Recipe, 0, len(recipes))
	for _, link := range links {
		if r, ok := bySlug[link.RecipeSlug]; ok {
			ordered = append(ordered, r)
		}
	}
	return ordered, nil
}

// Unsave removes the link if present. Deleting a non-existent link is not an
// error.
func (s *SavedRecipeService) Unsave(ctx context.Context, userID uuid.UUID, slug string) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_slug = ?", userID, slug).
		Delete(&model.SavedRecipe{}).Error
}
