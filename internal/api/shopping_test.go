package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoppingListLifecycle(t *testing.T) {
	router, db := setupTestRouter(t)
	token := createUserAndToken(t, db)

	w := doJSON(t, router, http.MethodPost, "/api/v1/shopping-lists", CreateShoppingListRequest{
		Name: "Weekly Groceries",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	listID := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodPost, "/api/v1/shopping-lists/"+listID+"/items", AddShoppingItemRequest{
		ItemName: "Bread",
		Unit:     "loaves",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	item := decodeBody(t, w)
	itemID := item["id"].(string)
	assert.Equal(t, 1.0, item["quantity"], "quantity defaults to one")
	assert.Equal(t, false, item["is_purchased"])

	w = doJSON(t, router, http.MethodGet, "/api/v1/shopping-lists/"+listID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	list := decodeBody(t, w)
	items, ok := list["items"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)

	purchased := true
	w = doJSON(t, router, http.MethodPut, "/api/v1/shopping-lists/items/"+itemID, UpdateShoppingItemRequest{
		IsPurchased: &purchased,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["is_purchased"])
}

func TestAddItemToMissingList(t *testing.T) {
	router, db := setupTestRouter(t)
	token := createUserAndToken(t, db)

	w := doJSON(t, router, http.MethodPost, "/api/v1/shopping-lists/41b7cbde-86cf-44f2-a5d8-26df3dd1bb8a/items", AddShoppingItemRequest{
		ItemName: "Bread",
		Unit:     "loaves",
	}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	router, db := setupTestRouter(t)
	token := createUserAndToken(t, db)

	w := doJSON(t, router, http.MethodPost, "/api/v1/shopping-lists", CreateShoppingListRequest{Name: "Party"}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	listID := decodeBody(t, w)["id"].(string)

	qty := -2.0
	w = doJSON(t, router, http.MethodPost, "/api/v1/shopping-lists/"+listID+"/items", AddShoppingItemRequest{
		ItemName: "Chips",
		Quantity: &qty,
		Unit:     "bags",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteShoppingListCascades(t *testing.T) {
	router, db := setupTestRouter(t)
	token := createUserAndToken(t, db)

	w := doJSON(t, router, http.MethodPost, "/api/v1/shopping-lists", CreateShoppingListRequest{Name: "Camping"}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	listID := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodPost, "/api/v1/shopping-lists/"+listID+"/items", AddShoppingItemRequest{
		ItemName: "Marshmallows",
		Unit:     "bags",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	itemID := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/shopping-lists/"+listID, nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/shopping-lists/"+listID, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	purchased := true
	w = doJSON(t, router, http.MethodPut, "/api/v1/shopping-lists/items/"+itemID, UpdateShoppingItemRequest{
		IsPurchased: &purchased,
	}, token)
	assert.Equal(t, http.StatusNotFound, w.Code, "items must not survive their list")
}

func TestDeleteShoppingItemKeepsList(t *testing.T) {
	router, db := setupTestRouter(t)
	token := createUserAndToken(t, db)

	w := doJSON(t, router, http.MethodPost, "/api/v1/shopping-lists", CreateShoppingListRequest{Name: "Brunch"}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	listID := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodPost, "/api/v1/shopping-lists/"+listID+"/items", AddShoppingItemRequest{
		ItemName: "Orange Juice",
		Unit:     "liters",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	itemID := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/shopping-lists/items/"+itemID, nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/shopping-lists/"+listID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	items := decodeBody(t, w)["items"].([]interface{})
	assert.Empty(t, items)
}

func TestListShoppingLists(t *testing.T) {
	router, db := setupTestRouter(t)
	token := createUserAndToken(t, db)

	for _, name := range []string{"One", "Two"} {
		w := doJSON(t, router, http.MethodPost, "/api/v1/shopping-lists", CreateShoppingListRequest{Name: name}, token)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/shopping-lists", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	lists := decodeBody(t, w)["shopping_lists"].([]interface{})
	assert.Len(t, lists, 2)
}
