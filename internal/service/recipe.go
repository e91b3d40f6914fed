package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dcidan/grocery-mate/internal/models"
)

// DefaultServings is used when a recipe is created without a serving
// count.
const DefaultServings = 2

// RecipeService owns recipe CRUD and the stored ingredient-list
// encoding.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipeParams carries the fields for a new recipe. Servings
// defaults to 2 and IsHealthy to true when nil.
type CreateRecipeParams struct {
	Name         string
	Description  string
	Ingredients  []string
	Instructions string
	PrepTime     *int
	Servings     *int
	Calories     *int
	IsHealthy    *bool
	UserID       uuid.UUID
}

// ListRecipes returns all recipes, or only healthy ones when
// healthyOnly is set.
func (s *RecipeService) ListRecipes(ctx context.Context, healthyOnly bool) ([]models.Recipe, error) {
	query := s.db.WithContext(ctx)
	if healthyOnly {
		query = query.Where("is_healthy = ?", true)
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	return recipes, nil
}

// GetRecipe returns a recipe or ErrNotFound.
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("recipe %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &recipe, nil
}

// CreateRecipe encodes the required-ingredient set and inserts the
// recipe.
func (s *RecipeService) CreateRecipe(ctx context.Context, params CreateRecipeParams) (*models.Recipe, error) {
	encoded, err := models.EncodeIngredients(params.Ingredients)
	if err != nil {
		return nil, fmt.Errorf("encoding ingredients: %w", err)
	}

	recipe := models.Recipe{
		Name:         params.Name,
		Description:  params.Description,
		Ingredients:  encoded,
		Instructions: params.Instructions,
		PrepTime:     params.PrepTime,
		Servings:     DefaultServings,
		Calories:     params.Calories,
		IsHealthy:    true,
		UserID:       params.UserID,
	}
	if params.Servings != nil {
		if *params.Servings <= 0 {
			return nil, fmt.Errorf("servings must be positive: %w", ErrValidation)
		}
		recipe.Servings = *params.Servings
	}
	if params.IsHealthy != nil {
		recipe.IsHealthy = *params.IsHealthy
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, fmt.Errorf("creating recipe: %w", err)
	}
	return &recipe, nil
}

// DeleteRecipe removes a recipe or returns ErrNotFound.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("recipe %s: %w", id, ErrNotFound)
	}
	return nil
}

// SeedSamples inserts the built-in sample recipes, skipping any whose
// name is already present. It reports how many rows were inserted.
func (s *RecipeService) SeedSamples(ctx context.Context, userID uuid.UUID) (int, error) {
	inserted := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, sample := range sampleRecipes() {
			var existing models.Recipe
			err := tx.Where("name = ?", sample.Name).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			sample.UserID = userID
			if err := tx.Create(&sample).Error; err != nil {
				return fmt.Errorf("seeding recipe %q: %w", sample.Name, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func sampleRecipes() []models.Recipe {
	encode := func(names ...string) string {
		encoded, _ := models.EncodeIngredients(names)
		return encoded
	}
	intp := func(v int) *int { return &v }

	return []models.Recipe{
		{
			Name:         "Grilled Chicken Salad",
			Description:  "Healthy protein-packed salad with fresh vegetables",
			Ingredients:  encode("chicken", "lettuce", "tomato", "cucumber", "olive oil"),
			Instructions: "1. Grill chicken breast\n2. Chop vegetables\n3. Mix with olive oil\n4. Season to taste",
			PrepTime:     intp(20),
			Servings:     2,
			Calories:     intp(350),
			IsHealthy:    true,
		},
		{
			Name:         "Vegetable Stir Fry",
			Description:  "Quick and nutritious vegetable dish",
			Ingredients:  encode("broccoli", "carrot", "bell pepper", "soy sauce", "garlic"),
			Instructions: "1. Heat pan with oil\n2. Add garlic\n3. Stir fry vegetables\n4. Add soy sauce",
			PrepTime:     intp(15),
			Servings:     3,
			Calories:     intp(180),
			IsHealthy:    true,
		},
		{
			Name:         "Fruit Smoothie",
			Description:  "Refreshing and vitamin-rich smoothie",
			Ingredients:  encode("banana", "strawberry", "yogurt", "honey"),
			Instructions: "1. Add all ingredients to blender\n2. Blend until smooth\n3. Serve cold",
			PrepTime:     intp(5),
			Servings:     1,
			Calories:     intp(220),
			IsHealthy:    true,
		},
	}
}
