package testhelpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dcidan/grocery-mate/internal/models"
)

func createUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Email:          "pg@example.com",
		Username:       "pguser",
		HashedPassword: string(hashed),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// TestUniqueIngredientNameEnforcedByDatabase checks that the unique
// index catches duplicates even when application-level checks are
// bypassed.
func TestUniqueIngredientNameEnforcedByDatabase(t *testing.T) {
	db := SetupPostgres(t)
	user := createUser(t, db)

	first := &models.Ingredient{
		Name:     "Milk",
		Category: "dairy",
		Location: models.LocationFridge,
		Quantity: 1,
		Unit:     "liters",
		UserID:   user.ID,
	}
	require.NoError(t, db.Create(first).Error)

	dup := &models.Ingredient{
		Name:     "Milk",
		Category: "dairy",
		Location: models.LocationPantry,
		Quantity: 2,
		Unit:     "liters",
		UserID:   user.ID,
	}
	err := db.Create(dup).Error
	require.Error(t, err, "second row with the same name must be rejected")

	var count int64
	require.NoError(t, db.Model(&models.Ingredient{}).Where("name = ?", "Milk").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// TestShoppingItemsCascadeOnListDelete checks the ON DELETE CASCADE
// foreign key, deleting the list row directly rather than through the
// service layer.
func TestShoppingItemsCascadeOnListDelete(t *testing.T) {
	db := SetupPostgres(t)
	user := createUser(t, db)

	list := &models.ShoppingList{
		Name:      "Weekly Groceries",
		CreatedAt: time.Now().UTC(),
		UserID:    user.ID,
	}
	require.NoError(t, db.Create(list).Error)

	for _, name := range []string{"Bread", "Milk"} {
		item := &models.ShoppingItem{
			ShoppingListID: list.ID,
			ItemName:       name,
			Quantity:       1,
			Unit:           "pcs",
		}
		require.NoError(t, db.Create(item).Error)
	}

	require.NoError(t, db.Delete(&models.ShoppingList{}, "id = ?", list.ID).Error)

	var remaining int64
	require.NoError(t, db.Model(&models.ShoppingItem{}).Where("shopping_list_id = ?", list.ID).Count(&remaining).Error)
	assert.Equal(t, int64(0), remaining, "items must be removed with their list")
}
