package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartchef/smartchef-v4/backend/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

// ProfileService handles account reads and preference updates.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetUser retrieves an account by id. A token can outlive its record, so a
// missing row surfaces as ErrUserNotFound rather than an internal error.
func (s *ProfileService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdatePreferences overwrites the user's preference object wholesale.
func (s *ProfileService) UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs model.Preferences) error {
	if prefs.Allergies == nil {
		prefs.Allergies = []string{}
	}
	return s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", userID).
		Update("preferences", prefs).Error
}
