package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/hungryhub/food-order-api/internal/domains/carts/domain"
	"github.com/hungryhub/food-order-api/internal/domains/carts/ports"
	"github.com/hungryhub/food-order-api/internal/shared/id"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory cart persistence adapter with optimistic
// versioning: Save fails when the stored version no longer matches the
// version the aggregate was loaded with.
type Repository struct {
	mu     sync.RWMutex
	carts  map[id.CartID]*domain.Cart
	byUser map[id.UserID]id.CartID
}

func NewRepository() *Repository {
	return &Repository{
		carts:  map[id.CartID]*domain.Cart{},
		byUser: map[id.UserID]id.CartID{},
	}
}

func (r *Repository) Save(_ context.Context, cart *domain.Cart) (*domain.Cart, error) {
	if cart == nil {
		return nil, errors.New("cart is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stored, ok := r.carts[cart.ID()]; ok {
		if stored.Version() != cart.Version() {
			return nil, ports.ErrVersionConflict
		}
	}
	// one active cart per user
	if existing, ok := r.byUser[cart.UserID()]; ok && existing != cart.ID() {
		return nil, errors.New("user already has an active cart")
	}

	clone := cloneCart(cart, cart.Version()+1)
	r.carts[clone.ID()] = clone
	r.byUser[clone.UserID()] = clone.ID()
	return cloneCart(clone, clone.Version()), nil
}

func (r *Repository) GetByID(_ context.Context, cartID id.CartID) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cart, ok := r.carts[cartID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneCart(cart, cart.Version()), nil
}

func (r *Repository) FindByUserID(_ context.Context, userID id.UserID) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cartID, ok := r.byUser[userID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	cart := r.carts[cartID]
	return cloneCart(cart, cart.Version()), nil
}

func (r *Repository) ExistsByID(_ context.Context, cartID id.CartID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.carts[cartID]
	return ok, nil
}

func (r *Repository) Delete(_ context.Context, cartID id.CartID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[cartID]
	if !ok {
		return ports.ErrNotFound
	}
	delete(r.byUser, cart.UserID())
	delete(r.carts, cartID)
	return nil
}

func cloneCart(cart *domain.Cart, version int64) *domain.Cart {
	return domain.RestoreCart(cart.ID(), cart.UserID(), cart.ShopID(), cart.LineItems(), version)
}
