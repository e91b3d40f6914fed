package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcidan/grocery-mate/internal/models"
)

func TestCreateRecipeDefaults(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := NewRecipeService(db)

	recipe, err := svc.CreateRecipe(context.Background(), CreateRecipeParams{
		Name:         "Grilled Chicken Salad",
		Description:  "Protein-packed salad",
		Ingredients:  []string{"chicken", "lettuce"},
		Instructions: "Grill, chop, mix",
		UserID:       user.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultServings, recipe.Servings)
	assert.True(t, recipe.IsHealthy)
	assert.Nil(t, recipe.PrepTime)
	assert.Nil(t, recipe.Calories)

	decoded := models.DecodeIngredients(recipe)
	assert.ElementsMatch(t, []string{"chicken", "lettuce"}, decoded)
}

func TestCreateRecipeExplicitFields(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := NewRecipeService(db)

	recipe, err := svc.CreateRecipe(context.Background(), CreateRecipeParams{
		Name:         "Midnight Burger",
		Ingredients:  []string{"beef", "bun"},
		Instructions: "Fry and assemble",
		PrepTime:     intp(25),
		Servings:     intp(4),
		Calories:     intp(900),
		IsHealthy:    boolp(false),
		UserID:       user.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, recipe.Servings)
	assert.False(t, recipe.IsHealthy)
	assert.Equal(t, 25, *recipe.PrepTime)
	assert.Equal(t, 900, *recipe.Calories)
}

func TestCreateRecipeRejectsNonPositiveServings(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := NewRecipeService(db)

	_, err := svc.CreateRecipe(context.Background(), CreateRecipeParams{
		Name:         "Nothing Soup",
		Ingredients:  []string{"water"},
		Instructions: "Boil",
		Servings:     intp(0),
		UserID:       user.ID,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListRecipesHealthyOnly(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := NewRecipeService(db)
	ctx := context.Background()

	_, err := svc.CreateRecipe(ctx, CreateRecipeParams{
		Name: "Salad", Ingredients: []string{"lettuce"}, Instructions: "Mix", UserID: user.ID,
	})
	require.NoError(t, err)
	_, err = svc.CreateRecipe(ctx, CreateRecipeParams{
		Name: "Burger", Ingredients: []string{"beef"}, Instructions: "Fry",
		IsHealthy: boolp(false), UserID: user.ID,
	})
	require.NoError(t, err)

	all, err := svc.ListRecipes(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	healthy, err := svc.ListRecipes(ctx, true)
	require.NoError(t, err)
	require.Len(t, healthy, 1)
	assert.Equal(t, "Salad", healthy[0].Name)
}

func TestGetRecipeNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)

	_, err := svc.GetRecipe(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRecipe(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := NewRecipeService(db)
	ctx := context.Background()

	recipe, err := svc.CreateRecipe(ctx, CreateRecipeParams{
		Name: "Salad", Ingredients: []string{"lettuce"}, Instructions: "Mix", UserID: user.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecipe(ctx, recipe.ID))

	_, err = svc.GetRecipe(ctx, recipe.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteRecipe(ctx, recipe.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeedSamplesIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := NewRecipeService(db)
	ctx := context.Background()

	inserted, err := svc.SeedSamples(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)

	// A second run finds everything already present.
	inserted, err = svc.SeedSamples(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	recipes, err := svc.ListRecipes(ctx, false)
	require.NoError(t, err)
	assert.Len(t, recipes, 3)
}
