package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShoppingList is a named collection of items to purchase. Deleting a
// list deletes every item in it; no item may outlive its parent.
type ShoppingList struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	Items     []ShoppingItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);not null" json:"user_id"`
}

func (l *ShoppingList) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// ShoppingItem is a line item within exactly one shopping list.
type ShoppingItem struct {
	ID             uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	ShoppingListID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"shopping_list_id"`
	ItemName       string    `gorm:"not null" json:"item_name"`
	Quantity       float64   `gorm:"not null" json:"quantity"`
	Unit           string    `gorm:"not null" json:"unit"`
	IsPurchased    bool      `gorm:"not null" json:"is_purchased"`
}

func (i *ShoppingItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
