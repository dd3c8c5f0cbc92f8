package ports

import (
	"context"
	"errors"

	"github.com/hungryhub/food-order-api/internal/domains/menus/domain"
	"github.com/hungryhub/food-order-api/internal/shared/id"
)

var ErrNotFound = errors.New("menu not found")

// Repository persists menu aggregates.
type Repository interface {
	Save(ctx context.Context, menu *domain.Menu) (*domain.Menu, error)
	GetByID(ctx context.Context, menuID id.MenuID) (*domain.Menu, error)
	ExistsByID(ctx context.Context, menuID id.MenuID) (bool, error)
	ListByShop(ctx context.Context, shopID id.ShopID) ([]*domain.Menu, error)
	Delete(ctx context.Context, menuID id.MenuID) error
}
