package domain

import (
	"github.com/hungryhub/food-order-api/internal/shared/events"
	"github.com/hungryhub/food-order-api/internal/shared/id"
)

// MenuOpened is raised when a menu becomes visible to customers.
type MenuOpened struct {
	events.Base
	MenuID      id.MenuID
	ShopID      id.ShopID
	MenuName    string
	Description string
}

// EventName returns the event type identifier.
func (e MenuOpened) EventName() string {
	return "menus.menu.opened"
}
