package api

import "github.com/google/uuid"

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type PreferencesRequest struct {
	Diet      string   `json:"diet"`
	Allergies []string `json:"allergies"`
}

type SaveRecipeRequest struct {
	RecipeSlug string `json:"recipeSlug" binding:"required"`
}

// PublicUser is the account shape returned from signup and login.
type PublicUser struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Avatar string    `json:"avatar"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}
