package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dcidan/grocery-mate/internal/middleware"
	"github.com/dcidan/grocery-mate/internal/service"
)

type ShoppingHandler struct {
	shopping    *service.ShoppingService
	authService *service.AuthService
}

func NewShoppingHandler(shopping *service.ShoppingService, authService *service.AuthService) *ShoppingHandler {
	return &ShoppingHandler{
		shopping:    shopping,
		authService: authService,
	}
}

func (h *ShoppingHandler) RegisterRoutes(router *gin.RouterGroup) {
	lists := router.Group("/shopping-lists")
	{
		lists.GET("", h.ListShoppingLists)
		lists.GET("/:id", h.GetShoppingList)
		lists.POST("", middleware.AuthMiddleware(h.authService), h.CreateShoppingList)
		lists.DELETE("/:id", middleware.AuthMiddleware(h.authService), h.DeleteShoppingList)
		lists.POST("/:id/items", middleware.AuthMiddleware(h.authService), h.AddItem)
		lists.PUT("/items/:itemId", middleware.AuthMiddleware(h.authService), h.UpdateItem)
		lists.DELETE("/items/:itemId", middleware.AuthMiddleware(h.authService), h.DeleteItem)
	}
}

func (h *ShoppingHandler) ListShoppingLists(c *gin.Context) {
	lists, err := h.shopping.ListShoppingLists(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"shopping_lists": lists})
}

func (h *ShoppingHandler) GetShoppingList(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	list, err := h.shopping.GetShoppingList(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *ShoppingHandler) CreateShoppingList(c *gin.Context) {
	var req CreateShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	list, err := h.shopping.CreateShoppingList(c.Request.Context(), req.Name, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, list)
}

func (h *ShoppingHandler) DeleteShoppingList(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.shopping.DeleteShoppingList(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shopping list deleted successfully"})
}

func (h *ShoppingHandler) AddItem(c *gin.Context) {
	listID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req AddShoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.shopping.AddItem(c.Request.Context(), listID, service.AddItemParams{
		ItemName:    req.ItemName,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		IsPurchased: req.IsPurchased,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *ShoppingHandler) UpdateItem(c *gin.Context) {
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	var req UpdateShoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.shopping.SetItemPurchased(c.Request.Context(), itemID, *req.IsPurchased)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *ShoppingHandler) DeleteItem(c *gin.Context) {
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	if err := h.shopping.DeleteItem(c.Request.Context(), itemID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shopping item deleted successfully"})
}
