package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dcidan/grocery-mate/internal/middleware"
	"github.com/dcidan/grocery-mate/internal/service"
)

type RecipeHandler struct {
	recipes     *service.RecipeService
	matcher     *service.MatcherService
	authService *service.AuthService
	rateLimiter *middleware.RateLimiter
}

// NewRecipeHandler creates the recipe handler. rateLimiter may be nil
// when no Redis client is configured.
func NewRecipeHandler(recipes *service.RecipeService, matcher *service.MatcherService, authService *service.AuthService, rateLimiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipes:     recipes,
		matcher:     matcher,
		authService: authService,
		rateLimiter: rateLimiter,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	create := []gin.HandlerFunc{middleware.AuthMiddleware(h.authService)}
	if h.rateLimiter != nil {
		create = append(create, h.rateLimiter.Middleware())
	}
	create = append(create, h.CreateRecipe)

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/match/ingredients", h.FindMatching)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", create...)
		recipes.DELETE("/:id", middleware.AuthMiddleware(h.authService), h.DeleteRecipe)
		recipes.POST("/seed-sample", middleware.AuthMiddleware(h.authService), h.SeedSamples)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	healthyOnly := c.Query("healthy_only") == "true"

	recipes, err := h.recipes.ListRecipes(c.Request.Context(), healthyOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), service.CreateRecipeParams{
		Name:         req.Name,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		PrepTime:     req.PrepTime,
		Servings:     req.Servings,
		Calories:     req.Calories,
		IsHealthy:    req.IsHealthy,
		UserID:       userID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.recipes.DeleteRecipe(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}

// FindMatching answers "what can I cook with what I have?".
func (h *RecipeHandler) FindMatching(c *gin.Context) {
	matches, err := h.matcher.FindMakeable(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": matches})
}

func (h *RecipeHandler) SeedSamples(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	inserted, err := h.recipes.SeedSamples(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Sample recipes seeded successfully",
		"inserted": inserted,
	})
}
