package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Storage locations an ingredient can live in.
const (
	LocationFridge = "Fridge"
	LocationPantry = "Pantry"
)

// Ingredient is a single stock record in the household inventory.
// Names are unique across the whole inventory, enforced by the
// database index as well as the service-level pre-check.
type Ingredient struct {
	ID         uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	Name       string     `gorm:"uniqueIndex;not null" json:"name"`
	Category   string     `gorm:"not null" json:"category"`
	Location   string     `gorm:"not null" json:"location"`
	Quantity   float64    `gorm:"not null" json:"quantity"`
	Unit       string     `gorm:"not null" json:"unit"`
	ExpiryDate *time.Time `json:"expiry_date"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	UserID     uuid.UUID  `gorm:"type:varchar(36);not null" json:"user_id"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// ValidLocation reports whether loc is one of the recognized storage
// locations.
func ValidLocation(loc string) bool {
	return loc == LocationFridge || loc == LocationPantry
}
