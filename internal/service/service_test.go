package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dcidan/grocery-mate/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.ShoppingList{},
		&models.ShoppingItem{},
		&models.Recipe{},
	)
	require.NoError(t, err, "failed to migrate test schema")

	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Email:          "test@example.com",
		Username:       "testuser",
		HashedPassword: string(hashed),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func floatp(v float64) *float64 { return &v }
func strp(v string) *string     { return &v }
func intp(v int) *int           { return &v }
func boolp(v bool) *bool        { return &v }
