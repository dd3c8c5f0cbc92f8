package domain

import (
	"github.com/hungryhub/food-order-api/internal/shared/events"
	"github.com/hungryhub/food-order-api/internal/shared/id"
	"github.com/hungryhub/food-order-api/internal/shared/money"
)

// Placed is raised when an order is constructed from a cart.
type Placed struct {
	events.Base
	OrderID     id.OrderID
	UserID      id.UserID
	ShopID      id.ShopID
	TotalAmount money.Money
}

// EventName returns the event type identifier.
func (e Placed) EventName() string {
	return "orders.order.placed"
}
