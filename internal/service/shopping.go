package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dcidan/grocery-mate/internal/models"
)

// ShoppingService owns the shopping list and item lifecycle, including
// the cascade from a list to its items.
type ShoppingService struct {
	db *gorm.DB
}

func NewShoppingService(db *gorm.DB) *ShoppingService {
	return &ShoppingService{db: db}
}

// AddItemParams carries the fields for a new line item. Quantity
// defaults to 1 and the purchased flag to false.
type AddItemParams struct {
	ItemName    string
	Quantity    *float64
	Unit        string
	IsPurchased bool
}

// ListShoppingLists returns all shopping lists with their items.
func (s *ShoppingService) ListShoppingLists(ctx context.Context) ([]models.ShoppingList, error) {
	var lists []models.ShoppingList
	if err := s.db.WithContext(ctx).Preload("Items").Find(&lists).Error; err != nil {
		return nil, fmt.Errorf("listing shopping lists: %w", err)
	}
	return lists, nil
}

// GetShoppingList returns a list with its items, or ErrNotFound.
func (s *ShoppingService) GetShoppingList(ctx context.Context, id uuid.UUID) (*models.ShoppingList, error) {
	var list models.ShoppingList
	err := s.db.WithContext(ctx).Preload("Items").First(&list, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("shopping list %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &list, nil
}

// CreateShoppingList creates a new, empty list.
func (s *ShoppingService) CreateShoppingList(ctx context.Context, name string, userID uuid.UUID) (*models.ShoppingList, error) {
	list := models.ShoppingList{
		Name:   name,
		Items:  []models.ShoppingItem{},
		UserID: userID,
	}
	if err := s.db.WithContext(ctx).Create(&list).Error; err != nil {
		return nil, fmt.Errorf("creating shopping list: %w", err)
	}
	return &list, nil
}

// DeleteShoppingList removes the list and every item belonging to it in
// one transaction, so no item can outlive its parent.
func (s *ShoppingService) DeleteShoppingList(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var list models.ShoppingList
		if err := tx.First(&list, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("shopping list %s: %w", id, ErrNotFound)
			}
			return err
		}

		if err := tx.Where("shopping_list_id = ?", id).Delete(&models.ShoppingItem{}).Error; err != nil {
			return fmt.Errorf("deleting items of list %s: %w", id, err)
		}
		if err := tx.Delete(&list).Error; err != nil {
			return fmt.Errorf("deleting shopping list %s: %w", id, err)
		}
		return nil
	})
}

// AddItem appends a line item to an existing list.
func (s *ShoppingService) AddItem(ctx context.Context, listID uuid.UUID, params AddItemParams) (*models.ShoppingItem, error) {
	item := models.ShoppingItem{
		ShoppingListID: listID,
		ItemName:       params.ItemName,
		Quantity:       1,
		Unit:           params.Unit,
		IsPurchased:    params.IsPurchased,
	}
	if params.Quantity != nil {
		if *params.Quantity <= 0 {
			return nil, fmt.Errorf("item quantity must be positive: %w", ErrValidation)
		}
		item.Quantity = *params.Quantity
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var list models.ShoppingList
		if err := tx.First(&list, "id = ?", listID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("shopping list %s: %w", listID, ErrNotFound)
			}
			return err
		}
		if err := tx.Create(&item).Error; err != nil {
			return fmt.Errorf("adding item to list %s: %w", listID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// SetItemPurchased sets the purchased flag on an item. Setting the flag
// to its current value is not an error.
func (s *ShoppingService) SetItemPurchased(ctx context.Context, itemID uuid.UUID, purchased bool) (*models.ShoppingItem, error) {
	var item models.ShoppingItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("shopping item %s: %w", itemID, ErrNotFound)
			}
			return err
		}
		if err := tx.Model(&item).Update("is_purchased", purchased).Error; err != nil {
			return fmt.Errorf("updating item %s: %w", itemID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem removes a single item without touching its parent list.
func (s *ShoppingService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.ShoppingItem{}, "id = ?", itemID)
	if result.Error != nil {
		return fmt.Errorf("deleting item %s: %w", itemID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("shopping item %s: %w", itemID, ErrNotFound)
	}
	return nil
}
