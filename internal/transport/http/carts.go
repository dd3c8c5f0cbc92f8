package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hungryhub/food-order-api/internal/domains/carts/ports"
	apierrors "github.com/hungryhub/food-order-api/internal/shared/errors"
	"github.com/hungryhub/food-order-api/internal/shared/id"
)

// CartAPI wires HTTP transport with the carts bounded context service.
type CartAPI struct {
	service ports.Service
	respond *apierrors.Responder
}

// NewCartAPI creates a CartAPI backed by the provided service.
func NewCartAPI(service ports.Service, respond *apierrors.Responder) CartAPI {
	return CartAPI{service: service, respond: respond}
}

type addItemRequest struct {
	ShopID    string   `json:"shopId" binding:"required"`
	MenuID    string   `json:"menuId" binding:"required"`
	OptionIDs []string `json:"optionIds"`
	Quantity  int      `json:"quantity" binding:"required"`
}

type removeItemRequest struct {
	MenuID    string   `json:"menuId" binding:"required"`
	OptionIDs []string `json:"optionIds"`
}

// Get /v1/users/:userId/cart
// Loads the user's cart, creating an empty one on first access.
func (api *CartAPI) GetCart(c *gin.Context) {
	userID, ok := api.userIDParam(c)
	if !ok {
		return
	}
	cart, err := api.service.GetCart(c.Request.Context(), userID)
	if err != nil {
		api.respond.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(cart))
}

// Post /v1/users/:userId/cart/items
// Adds or merges an item into the user's cart.
func (api *CartAPI) AddItem(c *gin.Context) {
	userID, ok := api.userIDParam(c)
	if !ok {
		return
	}
	var payload addItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.respond.BadRequest(c, err.Error())
		return
	}
	shopID, err := id.ShopIDFrom(payload.ShopID)
	if err != nil {
		api.respond.BadRequest(c, "shopId must not be blank")
		return
	}
	menuID, err := id.MenuIDFrom(payload.MenuID)
	if err != nil {
		api.respond.BadRequest(c, "menuId must not be blank")
		return
	}
	optionIDs, err := parseOptionIDs(payload.OptionIDs)
	if err != nil {
		api.respond.BadRequest(c, "optionIds must not contain blank entries")
		return
	}
	cart, err := api.service.AddItem(c.Request.Context(), ports.AddItemInput{
		UserID:    userID,
		ShopID:    shopID,
		MenuID:    menuID,
		OptionIDs: optionIDs,
		Quantity:  payload.Quantity,
	})
	if err != nil {
		api.respond.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(cart))
}

// Delete /v1/users/:userId/cart/items
// Removes the line matching the menu and option selection, if present.
func (api *CartAPI) RemoveItem(c *gin.Context) {
	userID, ok := api.userIDParam(c)
	if !ok {
		return
	}
	var payload removeItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.respond.BadRequest(c, err.Error())
		return
	}
	menuID, err := id.MenuIDFrom(payload.MenuID)
	if err != nil {
		api.respond.BadRequest(c, "menuId must not be blank")
		return
	}
	optionIDs, err := parseOptionIDs(payload.OptionIDs)
	if err != nil {
		api.respond.BadRequest(c, "optionIds must not contain blank entries")
		return
	}
	cart, err := api.service.RemoveItem(c.Request.Context(), userID, menuID, optionIDs)
	if err != nil {
		api.respond.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(cart))
}

// Delete /v1/users/:userId/cart
// Empties the user's cart and unsets its shop.
func (api *CartAPI) ClearCart(c *gin.Context) {
	userID, ok := api.userIDParam(c)
	if !ok {
		return
	}
	cart, err := api.service.ClearCart(c.Request.Context(), userID)
	if err != nil {
		api.respond.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(cart))
}

// Post /v1/users/:userId/cart/checkout
// Converts the cart into an order and empties the cart.
func (api *CartAPI) PlaceOrder(c *gin.Context) {
	userID, ok := api.userIDParam(c)
	if !ok {
		return
	}
	order, err := api.service.PlaceOrder(c.Request.Context(), userID)
	if err != nil {
		api.respond.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successEnvelope("order placed", order.ID().String()))
}

func (api *CartAPI) userIDParam(c *gin.Context) (id.UserID, bool) {
	userID, err := id.UserIDFrom(c.Param("userId"))
	if err != nil {
		api.respond.BadRequest(c, "userId must not be blank")
		return id.UserID{}, false
	}
	return userID, true
}

func parseOptionIDs(raw []string) ([]id.OptionID, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]id.OptionID, 0, len(raw))
	for _, value := range raw {
		optionID, err := id.OptionIDFrom(value)
		if err != nil {
			return nil, err
		}
		out = append(out, optionID)
	}
	return out, nil
}
