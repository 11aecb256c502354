package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SavedRecipe links a user to a recipe by slug. At most one link exists per
// (user, slug) pair. The slug reference is deliberately not a foreign key, so
// recipes can disappear without cascading.
type SavedRecipe struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_saved_user_slug" json:"userId"`
	RecipeSlug string    `gorm:"size:64;not null;index;uniqueIndex:idx_saved_user_slug" json:"recipeSlug"`
	SavedAt    time.Time `gorm:"autoCreateTime" json:"savedAt"`
}

func (SavedRecipe) TableName() string {
	return "saved_recipes"
}

func (s *SavedRecipe) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
