package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scan is an append-only audit record of one scan request. UserID is nil for
// anonymous scans.
type Scan struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Ingredients JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	RecipeCount int              `json:"recipeCount"`
	UserID      *uuid.UUID       `gorm:"type:uuid;index" json:"userId"`
	FileName    string           `gorm:"size:255" json:"fileName"`
	FileSize    int64            `json:"fileSize"`
	ImageURL    string           `gorm:"size:255" json:"imageUrl,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func (s *Scan) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
