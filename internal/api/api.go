package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/dcidan/grocery-mate/internal/middleware"
	"github.com/dcidan/grocery-mate/internal/service"
)

// SetupAPI wires services and handlers onto the router. redisClient may
// be nil; rate limiting and match caching are then disabled.
func SetupAPI(router *gin.Engine, db *gorm.DB, redisClient *redis.Client, jwtSecret string) {
	v1 := router.Group("/api/v1")
	{
		authService := service.NewAuthService(db, jwtSecret)
		inventoryService := service.NewInventoryService(db)
		shoppingService := service.NewShoppingService(db)
		recipeService := service.NewRecipeService(db)
		matcherService := service.NewMatcherService(db, redisClient)

		var rateLimiter *middleware.RateLimiter
		if redisClient != nil {
			rateLimiter = middleware.NewMutationRateLimiter(redisClient)
		}

		authHandler := NewAuthHandler(authService)
		ingredientHandler := NewIngredientHandler(inventoryService, authService)
		shoppingHandler := NewShoppingHandler(shoppingService, authService)
		recipeHandler := NewRecipeHandler(recipeService, matcherService, authService, rateLimiter)

		authHandler.RegisterRoutes(v1)
		ingredientHandler.RegisterRoutes(v1)
		shoppingHandler.RegisterRoutes(v1)
		recipeHandler.RegisterRoutes(v1)
	}
}
