package ports

import (
	"context"

	"github.com/hungryhub/food-order-api/internal/domains/menus/domain"
	"github.com/hungryhub/food-order-api/internal/shared/id"
)

// CreateMenuInput carries the attributes of a new closed menu.
type CreateMenuInput struct {
	ShopID      id.ShopID
	Name        string
	Description string
	BasePrice   string
}

// OptionInput identifies an option by its (name, price) pair.
type OptionInput struct {
	Name  string
	Price string
}

// Service exposes menu use cases to adapters.
type Service interface {
	CreateMenu(ctx context.Context, input CreateMenuInput) (*domain.Menu, error)
	AddOptionGroup(ctx context.Context, menuID id.MenuID, name string, required bool) (*domain.Menu, error)
	AddOption(ctx context.Context, menuID id.MenuID, groupID id.OptionGroupID, option OptionInput) (*domain.Menu, error)
	RemoveOption(ctx context.Context, menuID id.MenuID, groupID id.OptionGroupID, option OptionInput) (*domain.Menu, error)
	RenameOption(ctx context.Context, menuID id.MenuID, groupID id.OptionGroupID, option OptionInput, newName string) (*domain.Menu, error)
	OpenMenu(ctx context.Context, menuID id.MenuID) (*domain.Menu, error)
	GetMenu(ctx context.Context, menuID id.MenuID) (*domain.Menu, error)
}
