package ports

import (
	"context"

	"github.com/hungryhub/food-order-api/internal/domains/carts/domain"
	ordersdomain "github.com/hungryhub/food-order-api/internal/domains/orders/domain"
	"github.com/hungryhub/food-order-api/internal/shared/id"
)

// AddItemInput carries one add-to-cart command.
type AddItemInput struct {
	UserID    id.UserID
	ShopID    id.ShopID
	MenuID    id.MenuID
	OptionIDs []id.OptionID
	Quantity  int
}

// Service exposes cart use cases to adapters.
type Service interface {
	GetCart(ctx context.Context, userID id.UserID) (*domain.Cart, error)
	AddItem(ctx context.Context, input AddItemInput) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID id.UserID, menuID id.MenuID, optionIDs []id.OptionID) (*domain.Cart, error)
	ClearCart(ctx context.Context, userID id.UserID) (*domain.Cart, error)
	PlaceOrder(ctx context.Context, userID id.UserID) (*ordersdomain.Order, error)
}
