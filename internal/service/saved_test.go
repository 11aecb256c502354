package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartchef/smartchef-v4/backend/internal/model"
	"github.com/smartchef/smartchef-v4/backend/internal/service"
	"github.com/smartchef/smartchef-v4/backend/internal/testhelpers"
)

func TestSaveDuplicateConflicts(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewSavedRecipeService(db)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, svc.Save(ctx, userID, "recipe-1-abc"))
	assert.ErrorIs(t, svc.Save(ctx, userID, "recipe-1-abc"), service.ErrAlreadySaved)

	// a different user saving the same slug is fine
	assert.NoError(t, svc.Save(ctx, uuid.New(), "recipe-1-abc"))
}

func TestUnsaveIsIdempotent(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewSavedRecipeService(db)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, svc.Save(ctx, userID, "recipe-1-abc"))
	assert.NoError(t, svc.Unsave(ctx, userID, "recipe-1-abc"))
	assert.NoError(t, svc.Unsave(ctx, userID, "recipe-1-abc"))
	assert.NoError(t, svc.Unsave(ctx, userID, "recipe-never-existed"))
}

func TestListSavedNewestFirstAndHydrated(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewSavedRecipeService(db)
	recipeSvc := service.NewRecipeService(db)
	ctx := context.Background()
	userID := uuid.New()

	for _, slug := range []string{"recipe-1-a", "recipe-2-b", "recipe-3-c"} {
		r := newRecipe(slug, "Title "+slug, time.Now())
		require.NoError(t, recipeSvc.UpsertBySlug(ctx, &r))
	}

	now := time.Now()
	links := []model.SavedRecipe{
		{UserID: userID, RecipeSlug: "recipe-1-a", SavedAt: now.Add(-2 * time.Hour)},
		{UserID: userID, RecipeSlug: "recipe-3-c", SavedAt: now},
		{UserID: userID, RecipeSlug: "recipe-2-b", SavedAt: now.Add(-time.Hour)},
		// dangling link: the recipe was never persisted
		{UserID: userID, RecipeSlug: "recipe-9-gone", SavedAt: now.Add(-3 * time.Hour)},
	}
	for i := range links {
		require.NoError(t, db.Create(&links[i]).Error)
	}

	recipes, err := svc.ListSaved(ctx, userID)
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	assert.Equal(t, "recipe-3-c", recipes[0].Slug)
	assert.Equal(t, "recipe-2-b", recipes[1].Slug)
	assert.Equal(t, "recipe-1-a", recipes[2].Slug)
}

func TestListSavedEmpty(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewSavedRecipeService(db)

	recipes, err := svc.ListSaved(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, recipes)
}
