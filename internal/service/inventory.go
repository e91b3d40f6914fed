package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dcidan/grocery-mate/internal/models"
)

// DefaultExpiryWindowDays is the window used by ExpiringSoon when the
// caller does not supply one.
const DefaultExpiryWindowDays = 7

// InventoryService owns CRUD and query operations over ingredients.
type InventoryService struct {
	db *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

// CreateIngredientParams carries the fields for a new stock record.
type CreateIngredientParams struct {
	Name       string
	Category   string
	Location   string
	Quantity   *float64
	Unit       string
	ExpiryDate *time.Time
	UserID     uuid.UUID
}

// UpdateIngredientParams is a partial update: nil fields are left
// untouched, set fields replace the prior value exactly.
type UpdateIngredientParams struct {
	Name       *string
	Category   *string
	Location   *string
	Quantity   *float64
	Unit       *string
	ExpiryDate *time.Time
}

// ListIngredients returns all ingredients, optionally restricted to a
// single storage location.
func (s *InventoryService) ListIngredients(ctx context.Context, location string) ([]models.Ingredient, error) {
	query := s.db.WithContext(ctx)
	if location != "" {
		query = query.Where("location = ?", location)
	}

	var ingredients []models.Ingredient
	if err := query.Find(&ingredients).Error; err != nil {
		return nil, fmt.Errorf("listing ingredients: %w", err)
	}
	return ingredients, nil
}

// GetIngredient returns a single ingredient or ErrNotFound.
func (s *InventoryService) GetIngredient(ctx context.Context, id uuid.UUID) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("ingredient %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &ingredient, nil
}

// CreateIngredient inserts a new stock record. The name must not be
// taken already; quantity defaults to 0 when unspecified.
func (s *InventoryService) CreateIngredient(ctx context.Context, params CreateIngredientParams) (*models.Ingredient, error) {
	if err := validateIngredientFields(params.Location, params.Quantity); err != nil {
		return nil, err
	}

	ingredient := models.Ingredient{
		Name:       params.Name,
		Category:   params.Category,
		Location:   params.Location,
		Unit:       params.Unit,
		ExpiryDate: params.ExpiryDate,
		UserID:     params.UserID,
	}
	if params.Quantity != nil {
		ingredient.Quantity = *params.Quantity
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Ingredient
		err := tx.Where("name = ?", params.Name).First(&existing).Error
		if err == nil {
			return fmt.Errorf("ingredient %q: %w", params.Name, ErrConflict)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		// The unique index on name backs this pre-check against
		// concurrent writers.
		if err := tx.Create(&ingredient).Error; err != nil {
			return fmt.Errorf("creating ingredient: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// UpdateIngredient applies only the fields set in params and refreshes
// the updated timestamp.
func (s *InventoryService) UpdateIngredient(ctx context.Context, id uuid.UUID, params UpdateIngredientParams) (*models.Ingredient, error) {
	if params.Location != nil && !models.ValidLocation(*params.Location) {
		return nil, fmt.Errorf("location %q: %w", *params.Location, ErrValidation)
	}
	if params.Quantity != nil && *params.Quantity < 0 {
		return nil, fmt.Errorf("quantity must not be negative: %w", ErrValidation)
	}

	var ingredient models.Ingredient
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ingredient, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("ingredient %s: %w", id, ErrNotFound)
			}
			return err
		}

		updates := map[string]interface{}{}
		if params.Name != nil {
			var existing models.Ingredient
			err := tx.Where("name = ? AND id <> ?", *params.Name, id).First(&existing).Error
			if err == nil {
				return fmt.Errorf("ingredient %q: %w", *params.Name, ErrConflict)
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			updates["name"] = *params.Name
		}
		if params.Category != nil {
			updates["category"] = *params.Category
		}
		if params.Location != nil {
			updates["location"] = *params.Location
		}
		if params.Quantity != nil {
			updates["quantity"] = *params.Quantity
		}
		if params.Unit != nil {
			updates["unit"] = *params.Unit
		}
		if params.ExpiryDate != nil {
			updates["expiry_date"] = *params.ExpiryDate
		}
		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(&ingredient).Updates(updates).Error; err != nil {
			return fmt.Errorf("updating ingredient: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// DeleteIngredient removes a stock record. Nothing references
// ingredients, so no cascade is involved.
func (s *InventoryService) DeleteIngredient(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Ingredient{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting ingredient: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ingredient %s: %w", id, ErrNotFound)
	}
	return nil
}

// ExpiringSoon returns ingredients whose expiry date is set and falls
// on or before today plus the given number of days. Records without an
// expiry date are never returned, no matter how old they are.
func (s *InventoryService) ExpiringSoon(ctx context.Context, days int) ([]models.Ingredient, error) {
	if days <= 0 {
		days = DefaultExpiryWindowDays
	}
	threshold := time.Now().AddDate(0, 0, days)

	var ingredients []models.Ingredient
	err := s.db.WithContext(ctx).
		Where("expiry_date IS NOT NULL AND expiry_date <= ?", threshold).
		Find(&ingredients).Error
	if err != nil {
		return nil, fmt.Errorf("querying expiring ingredients: %w", err)
	}
	return ingredients, nil
}

func validateIngredientFields(location string, quantity *float64) error {
	if !models.ValidLocation(location) {
		return fmt.Errorf("location %q must be %s or %s: %w",
			location, models.LocationFridge, models.LocationPantry, ErrValidation)
	}
	if quantity != nil && *quantity < 0 {
		return fmt.Errorf("quantity must not be negative: %w", ErrValidation)
	}
	return nil
}
