// Package providers implements the carts validation ports on top of
// the other bounded contexts in this process.
package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/hungryhub/food-order-api/internal/domains/carts/ports"
	menusports "github.com/hungryhub/food-order-api/internal/domains/menus/ports"
	"github.com/hungryhub/food-order-api/internal/shared/id"
)

// MenuCatalog answers shop and menu questions from the menus context.
// A shop counts as open while it has at least one open menu.
type MenuCatalog struct {
	menus menusports.Repository
}

// NewMenuCatalog builds a catalog over the menus repository.
func NewMenuCatalog(menus menusports.Repository) *MenuCatalog {
	return &MenuCatalog{menus: menus}
}

// IsShopOpen reports whether the shop currently accepts orders.
func (c *MenuCatalog) IsShopOpen(ctx context.Context, shopID id.ShopID) (bool, error) {
	menus, err := c.menus.ListByShop(ctx, shopID)
	if err != nil {
		return false, fmt.Errorf("list menus for shop %s: %w", shopID, err)
	}
	for _, menu := range menus {
		if menu.IsOpen() {
			return true, nil
		}
	}
	return false, nil
}

// GetMenuInfo resolves the read-only menu view used for validation.
func (c *MenuCatalog) GetMenuInfo(ctx context.Context, menuID id.MenuID) (ports.MenuInfo, error) {
	menu, err := c.menus.GetByID(ctx, menuID)
	if err != nil {
		if errors.Is(err, menusports.ErrNotFound) {
			return ports.MenuInfo{}, ports.ErrMenuNotFound
		}
		return ports.MenuInfo{}, fmt.Errorf("load menu %s: %w", menuID, err)
	}
	return ports.MenuInfo{
		MenuID:    menu.ID(),
		ShopID:    menu.ShopID(),
		Name:      menu.Name(),
		BasePrice: menu.BasePrice(),
		Open:      menu.IsOpen(),
	}, nil
}

// GetOptionInfos resolves the selected options by their content-derived
// identifiers against the menu's current option groups.
func (c *MenuCatalog) GetOptionInfos(ctx context.Context, menuID id.MenuID, optionIDs []id.OptionID) ([]ports.OptionInfo, error) {
	if len(optionIDs) == 0 {
		return nil, nil
	}
	menu, err := c.menus.GetByID(ctx, menuID)
	if err != nil {
		if errors.Is(err, menusports.ErrNotFound) {
			return nil, ports.ErrMenuNotFound
		}
		return nil, fmt.Errorf("load menu %s: %w", menuID, err)
	}

	known := make(map[id.OptionID]ports.OptionInfo)
	for _, group := range menu.OptionGroups() {
		for _, option := range group.Options() {
			optionID := option.IdentityOn(menu.ID())
			known[optionID] = ports.OptionInfo{
				OptionID: optionID,
				Name:     option.Name(),
				Price:    option.Price(),
			}
		}
	}

	out := make([]ports.OptionInfo, 0, len(optionIDs))
	for _, optionID := range optionIDs {
		info, ok := known[optionID]
		if !ok {
			return nil, fmt.Errorf("option %s on menu %s: %w", optionID, menuID, ports.ErrOptionNotFound)
		}
		out = append(out, info)
	}
	return out, nil
}

var (
	_ ports.ShopProvider = (*MenuCatalog)(nil)
	_ ports.MenuProvider = (*MenuCatalog)(nil)
)
