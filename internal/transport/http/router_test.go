package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartsmemory "github.com/hungryhub/food-order-api/internal/domains/carts/adapters/memory"
	cartsproviders "github.com/hungryhub/food-order-api/internal/domains/carts/adapters/providers"
	cartsapp "github.com/hungryhub/food-order-api/internal/domains/carts/application"
	menusmemory "github.com/hungryhub/food-order-api/internal/domains/menus/adapters/memory"
	menusapp "github.com/hungryhub/food-order-api/internal/domains/menus/application"
	ordersmemory "github.com/hungryhub/food-order-api/internal/domains/orders/adapters/memory"
	ordersapp "github.com/hungryhub/food-order-api/internal/domains/orders/application"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	menuRepo := menusmemory.NewRepository()
	cartRepo := cartsmemory.NewRepository()
	orderRepo := ordersmemory.NewRepository()

	catalog := cartsproviders.NewMenuCatalog(menuRepo)
	cartService := cartsapp.NewService(cartRepo, orderRepo, catalog, catalog, cartsproviders.NewUserDirectory())
	menuService := menusapp.NewService(menuRepo)
	orderService := ordersapp.NewService(orderRepo)

	handlers := NewHandlers(cartService, menuService, orderService)
	return NewRouterWithGinEngine(gin.New(), handlers)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func TestRouter_OrderingFlow(t *testing.T) {
	router := newTestRouter(t)

	// Shop operator sets up a menu.
	rec := doJSON(t, router, http.MethodPost, "/v1/menus", gin.H{
		"shopId":    "shop-1",
		"name":      "Ramen Set",
		"basePrice": "12.00",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[resultEnvelope](t, rec)
	assert.Equal(t, statusSuccess, created.Status)
	require.NotEmpty(t, created.ID)
	menuID := created.ID

	rec = doJSON(t, router, http.MethodPost, "/v1/menus/"+menuID+"/option-groups", gin.H{
		"name":     "Toppings",
		"required": true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	menu := decodeBody[menuResponse](t, rec)
	require.Len(t, menu.OptionGroups, 1)
	groupID := menu.OptionGroups[0].ID

	rec = doJSON(t, router, http.MethodPost, "/v1/menus/"+menuID+"/option-groups/"+groupID+"/options", gin.H{
		"name":  "Extra Egg",
		"price": "0.50",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	menu = decodeBody[menuResponse](t, rec)
	require.Len(t, menu.OptionGroups[0].Options, 1)
	optionID := menu.OptionGroups[0].Options[0].ID

	rec = doJSON(t, router, http.MethodPost, "/v1/menus/"+menuID+"/open", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Customer builds a cart and checks out.
	rec = doJSON(t, router, http.MethodPost, "/v1/users/alice/cart/items", gin.H{
		"shopId":    "shop-1",
		"menuId":    menuID,
		"optionIds": []string{optionID},
		"quantity":  2,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	cart := decodeBody[cartResponse](t, rec)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "shop-1", cart.ShopID)

	rec = doJSON(t, router, http.MethodPost, "/v1/users/alice/cart/checkout", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	placed := decodeBody[resultEnvelope](t, rec)
	require.NotEmpty(t, placed.ID)

	rec = doJSON(t, router, http.MethodGet, "/v1/orders/"+placed.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	order := decodeBody[orderResponse](t, rec)
	assert.Equal(t, "alice", order.UserID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Ramen Set", order.Items[0].MenuName)
	// (12.00 + 0.50) * 2
	assert.Equal(t, "25.00", order.TotalPrice)

	// Cart is emptied by placement.
	rec = doJSON(t, router, http.MethodGet, "/v1/users/alice/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cart = decodeBody[cartResponse](t, rec)
	assert.Empty(t, cart.Items)

	rec = doJSON(t, router, http.MethodGet, "/v1/users/alice/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	orders := decodeBody[[]orderResponse](t, rec)
	assert.Len(t, orders, 1)
}

func TestRouter_ProblemResponses(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/orders/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")

	// Checkout on an empty cart is rejected as a validation problem.
	rec = doJSON(t, router, http.MethodGet, "/v1/users/bob/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/v1/users/bob/cart/checkout", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	// Adding an item from a closed shop fails.
	rec = doJSON(t, router, http.MethodPost, "/v1/users/bob/cart/items", gin.H{
		"shopId":   "shop-closed",
		"menuId":   "menu-x",
		"quantity": 1,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	// Malformed payload.
	rec = doJSON(t, router, http.MethodPost, "/v1/menus", gin.H{"name": "incomplete"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
