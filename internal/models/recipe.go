package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe is a cookable dish. The required ingredients are persisted as
// a JSON array of name strings in a text column; decode failures are
// degraded to an empty set by DecodeIngredients rather than surfaced,
// so a corrupt row can never abort a catalog scan.
type Recipe struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Name         string    `gorm:"size:255;not null;index" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Ingredients  string    `gorm:"type:text;not null" json:"ingredients"`
	Instructions string    `gorm:"type:text;not null" json:"instructions"`
	PrepTime     *int      `json:"prep_time"`
	Servings     int       `gorm:"not null" json:"servings"`
	Calories     *int      `json:"calories"`
	IsHealthy    bool      `gorm:"not null" json:"is_healthy"`
	CreatedAt    time.Time `json:"created_at"`
	UserID       uuid.UUID `gorm:"type:varchar(36);not null" json:"user_id"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// EncodeIngredients serializes a set of ingredient names for storage.
// Duplicates are eliminated case-insensitively, keeping the first
// spelling seen; an empty set encodes as "[]".
func EncodeIngredients(names []string) (string, error) {
	deduped := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		key := CanonicalName(name)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, name)
	}

	data, err := json.Marshal(deduped)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeIngredients produces the recipe's required ingredient names
// from the stored encoding. A malformed encoding yields an empty slice,
// never an error: callers treat such a recipe as unmatchable.
func DecodeIngredients(r *Recipe) []string {
	var names []string
	if err := json.Unmarshal([]byte(r.Ingredients), &names); err != nil {
		return nil
	}
	return names
}

// CanonicalName normalizes an ingredient name for matching comparisons:
// lowercase with surrounding whitespace removed.
func CanonicalName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
