package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ordersapp "github.com/hungryhub/food-order-api/internal/domains/orders/application"
	apierrors "github.com/hungryhub/food-order-api/internal/shared/errors"
	"github.com/hungryhub/food-order-api/internal/shared/id"
)

// OrderAPI wires HTTP transport with the orders read service.
type OrderAPI struct {
	service *ordersapp.Service
	respond *apierrors.Responder
}

// NewOrderAPI creates an OrderAPI backed by the provided service.
func NewOrderAPI(service *ordersapp.Service, respond *apierrors.Responder) OrderAPI {
	return OrderAPI{service: service, respond: respond}
}

// Get /v1/orders/:orderId
// Loads a placed order.
func (api *OrderAPI) GetOrder(c *gin.Context) {
	orderID, err := id.OrderIDFrom(c.Param("orderId"))
	if err != nil {
		api.respond.BadRequest(c, "orderId must not be blank")
		return
	}
	order, err := api.service.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		api.respond.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// Get /v1/users/:userId/orders
// Lists the user's placed orders.
func (api *OrderAPI) ListOrders(c *gin.Context) {
	userID, err := id.UserIDFrom(c.Param("userId"))
	if err != nil {
		api.respond.BadRequest(c, "userId must not be blank")
		return
	}
	orders, err := api.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		api.respond.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}
