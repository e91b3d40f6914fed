package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dcidan/grocery-mate/internal/middleware"
	"github.com/dcidan/grocery-mate/internal/service"
)

type IngredientHandler struct {
	inventory   *service.InventoryService
	authService *service.AuthService
}

func NewIngredientHandler(inventory *service.InventoryService, authService *service.AuthService) *IngredientHandler {
	return &IngredientHandler{
		inventory:   inventory,
		authService: authService,
	}
}

func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	ingredients := router.Group("/ingredients")
	{
		ingredients.GET("", h.ListIngredients)
		ingredients.GET("/expiring/soon", h.ExpiringSoon)
		ingredients.GET("/:id", h.GetIngredient)
		ingredients.POST("", middleware.AuthMiddleware(h.authService), h.CreateIngredient)
		ingredients.PUT("/:id", middleware.AuthMiddleware(h.authService), h.UpdateIngredient)
		ingredients.DELETE("/:id", middleware.AuthMiddleware(h.authService), h.DeleteIngredient)
	}
}

func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	ingredients, err := h.inventory.ListIngredients(c.Request.Context(), c.Query("location"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}

func (h *IngredientHandler) GetIngredient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ingredient, err := h.inventory.GetIngredient(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ingredient)
}

func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	var req CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	expiry, ok := parseDate(c, req.ExpiryDate)
	if !ok {
		return
	}

	ingredient, err := h.inventory.CreateIngredient(c.Request.Context(), service.CreateIngredientParams{
		Name:       req.Name,
		Category:   req.Category,
		Location:   req.Location,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		ExpiryDate: expiry,
		UserID:     userID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ingredient)
}

func (h *IngredientHandler) UpdateIngredient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expiry, ok := parseDate(c, req.ExpiryDate)
	if !ok {
		return
	}

	ingredient, err := h.inventory.UpdateIngredient(c.Request.Context(), id, service.UpdateIngredientParams{
		Name:       req.Name,
		Category:   req.Category,
		Location:   req.Location,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		ExpiryDate: expiry,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ingredient)
}

func (h *IngredientHandler) DeleteIngredient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.inventory.DeleteIngredient(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ingredient deleted successfully"})
}

func (h *IngredientHandler) ExpiringSoon(c *gin.Context) {
	days := service.DefaultExpiryWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = parsed
	}

	ingredients, err := h.inventory.ExpiringSoon(c.Request.Context(), days)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}
