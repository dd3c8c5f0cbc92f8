package ports

import (
	"context"
	"errors"

	"github.com/hungryhub/food-order-api/internal/domains/orders/domain"
	"github.com/hungryhub/food-order-api/internal/shared/id"
)

var ErrNotFound = errors.New("order not found")

// Repository persists order aggregates. Orders are immutable; Save is
// insert-only.
type Repository interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, orderID id.OrderID) (*domain.Order, error)
	ListByUserID(ctx context.Context, userID id.UserID) ([]*domain.Order, error)
	ExistsByID(ctx context.Context, orderID id.OrderID) (bool, error)
	Delete(ctx context.Context, orderID id.OrderID) error
}
