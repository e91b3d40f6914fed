package api

// Request bodies accepted by the API. Pointer fields are optional;
// absent fields keep their defaults or, on update, the prior value.

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateIngredientRequest struct {
	Name       string   `json:"name" binding:"required"`
	Category   string   `json:"category" binding:"required"`
	Location   string   `json:"location" binding:"required"`
	Quantity   *float64 `json:"quantity"`
	Unit       string   `json:"unit" binding:"required"`
	ExpiryDate *string  `json:"expiry_date"`
}

type UpdateIngredientRequest struct {
	Name       *string  `json:"name"`
	Category   *string  `json:"category"`
	Location   *string  `json:"location"`
	Quantity   *float64 `json:"quantity"`
	Unit       *string  `json:"unit"`
	ExpiryDate *string  `json:"expiry_date"`
}

type CreateShoppingListRequest struct {
	Name string `json:"name" binding:"required"`
}

type AddShoppingItemRequest struct {
	ItemName    string   `json:"item_name" binding:"required"`
	Quantity    *float64 `json:"quantity"`
	Unit        string   `json:"unit" binding:"required"`
	IsPurchased bool     `json:"is_purchased"`
}

type UpdateShoppingItemRequest struct {
	IsPurchased *bool `json:"is_purchased" binding:"required"`
}

type CreateRecipeRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients" binding:"required"`
	Instructions string   `json:"instructions" binding:"required"`
	PrepTime     *int     `json:"prep_time"`
	Servings     *int     `json:"servings"`
	Calories     *int     `json:"calories"`
	IsHealthy    *bool    `json:"is_healthy"`
}
