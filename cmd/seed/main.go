package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dcidan/grocery-mate/config"
	"github.com/dcidan/grocery-mate/internal/database"
	"github.com/dcidan/grocery-mate/internal/models"
	"github.com/dcidan/grocery-mate/internal/service"
)

// Seeds the database with a demo user, a starter inventory, a shopping
// list and the sample recipes. Safe to run repeatedly: existing rows
// are left alone.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()

	user, err := ensureDemoUser(db)
	if err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	inventory := service.NewInventoryService(db)
	created := 0
	for _, params := range sampleIngredients(user) {
		if _, err := inventory.CreateIngredient(ctx, params); err != nil {
			continue // already present
		}
		created++
	}
	log.Printf("Seeded %d ingredients", created)

	if err := ensureShoppingList(ctx, db, user); err != nil {
		log.Fatalf("Failed to seed shopping list: %v", err)
	}

	recipes := service.NewRecipeService(db)
	inserted, err := recipes.SeedSamples(ctx, user.ID)
	if err != nil {
		log.Fatalf("Failed to seed recipes: %v", err)
	}
	log.Printf("Seeded %d recipes", inserted)
}

func ensureDemoUser(db *gorm.DB) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", "demo@grocerymate.local").First(&user).Error; err == nil {
		return &user, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user = models.User{
		Email:          "demo@grocerymate.local",
		Username:       "demo",
		HashedPassword: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	log.Printf("Created demo user %s", user.Email)
	return &user, nil
}

func ensureShoppingList(ctx context.Context, db *gorm.DB, user *models.User) error {
	var existing models.ShoppingList
	if err := db.Where("name = ?", "Weekly Groceries").First(&existing).Error; err == nil {
		return nil
	}

	shopping := service.NewShoppingService(db)
	list, err := shopping.CreateShoppingList(ctx, "Weekly Groceries", user.ID)
	if err != nil {
		return err
	}

	items := []service.AddItemParams{
		{ItemName: "milk", Quantity: floatp(2), Unit: "liters"},
		{ItemName: "bread", Quantity: floatp(1), Unit: "pieces"},
		{ItemName: "eggs", Quantity: floatp(12), Unit: "pieces"},
	}
	for _, item := range items {
		if _, err := shopping.AddItem(ctx, list.ID, item); err != nil {
			return err
		}
	}
	log.Printf("Seeded shopping list %q with %d items", list.Name, len(items))
	return nil
}

func sampleIngredients(user *models.User) []service.CreateIngredientParams {
	expiry := func(days int) *time.Time {
		d := time.Now().AddDate(0, 0, days)
		return &d
	}

	return []service.CreateIngredientParams{
		{Name: "carrot", Category: "Vegetables", Location: models.LocationFridge, Quantity: floatp(1.0), Unit: "kg", ExpiryDate: expiry(10), UserID: user.ID},
		{Name: "broccoli", Category: "Vegetables", Location: models.LocationFridge, Quantity: floatp(0.5), Unit: "kg", ExpiryDate: expiry(5), UserID: user.ID},
		{Name: "bell pepper", Category: "Vegetables", Location: models.LocationFridge, Quantity: floatp(3), Unit: "pieces", ExpiryDate: expiry(7), UserID: user.ID},
		{Name: "banana", Category: "Fruits", Location: models.LocationPantry, Quantity: floatp(6), Unit: "pieces", ExpiryDate: expiry(4), UserID: user.ID},
		{Name: "strawberry", Category: "Fruits", Location: models.LocationFridge, Quantity: floatp(0.5), Unit: "kg", ExpiryDate: expiry(3), UserID: user.ID},
		{Name: "milk", Category: "Dairy", Location: models.LocationFridge, Quantity: floatp(1), Unit: "liters", ExpiryDate: expiry(6), UserID: user.ID},
		{Name: "yogurt", Category: "Dairy", Location: models.LocationFridge, Quantity: floatp(4), Unit: "pieces", ExpiryDate: expiry(8), UserID: user.ID},
		{Name: "chicken", Category: "Meat", Location: models.LocationFridge, Quantity: floatp(1), Unit: "kg", ExpiryDate: expiry(2), UserID: user.ID},
		{Name: "rice", Category: "Grains", Location: models.LocationPantry, Quantity: floatp(2), Unit: "kg", UserID: user.ID},
		{Name: "olive oil", Category: "Condiments", Location: models.LocationPantry, Quantity: floatp(1), Unit: "liters", UserID: user.ID},
		{Name: "soy sauce", Category: "Condiments", Location: models.LocationPantry, Quantity: floatp(0.5), Unit: "liters", UserID: user.ID},
		{Name: "garlic", Category: "Vegetables", Location: models.LocationPantry, Quantity: floatp(5), Unit: "pieces", UserID: user.ID},
		{Name: "honey", Category: "Condiments", Location: models.LocationPantry, Quantity: floatp(0.3), Unit: "kg", UserID: user.ID},
	}
}

func floatp(v float64) *float64 { return &v }
