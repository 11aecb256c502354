package service

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/smartchef/smartchef-v4/backend/internal/model"
)

var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeService handles recipe persistence and paginated reads.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// UpsertBySlug inserts the recipe, replacing any existing record that carries
// the same slug.
func (s *RecipeService) UpsertBySlug(ctx context.Context, recipe *model.Recipe) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			UpdateAll: true,
		}).
		Create(recipe).Error
}

// GetBySlug retrieves one recipe by its unique slug.
func (s *RecipeService) GetBySlug(ctx context.Context, slug string) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// List returns one newest-first page of recipes plus the total count.
func (s *RecipeService) List(ctx context.Context, page, limit int) ([]model.Recipe, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	recipes := []model.Recipe{}
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}

	return recipes, total, nil
}
