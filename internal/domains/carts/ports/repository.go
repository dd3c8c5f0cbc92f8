package ports

import (
	"context"
	"errors"

	"github.com/hungryhub/food-order-api/internal/domains/carts/domain"
	"github.com/hungryhub/food-order-api/internal/shared/id"
)

var (
	ErrNotFound = errors.New("cart not found")
	// ErrVersionConflict signals a concurrent write was detected at save
	// time; the whole unit of work fails and may be repeated by the caller.
	ErrVersionConflict = errors.New("cart was modified concurrently")
)

// Repository persists cart aggregates. Save performs an optimistic
// version check: the stored version must equal the aggregate's loaded
// version or ErrVersionConflict is returned. At most one active cart
// per user is enforced here, not by the aggregate.
type Repository interface {
	Save(ctx context.Context, cart *domain.Cart) (*domain.Cart, error)
	GetByID(ctx context.Context, cartID id.CartID) (*domain.Cart, error)
	FindByUserID(ctx context.Context, userID id.UserID) (*domain.Cart, error)
	ExistsByID(ctx context.Context, cartID id.CartID) (bool, error)
	Delete(ctx context.Context, cartID id.CartID) error
}
