package domain

import (
	"github.com/hungryhub/food-order-api/internal/shared/events"
	"github.com/hungryhub/food-order-api/internal/shared/id"
)

// ItemAdded is raised when an item is merged into a cart. Quantity is
// the amount just added, not the post-merge line total.
type ItemAdded struct {
	events.Base
	CartID   id.CartID
	UserID   id.UserID
	ShopID   id.ShopID
	MenuID   id.MenuID
	Quantity int
}

// EventName returns the event type identifier.
func (e ItemAdded) EventName() string {
	return "carts.cart.item_added"
}
