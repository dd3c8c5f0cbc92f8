package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/hungryhub/food-order-api/internal/domains/orders/domain"
	"github.com/hungryhub/food-order-api/internal/domains/orders/ports"
	"github.com/hungryhub/food-order-api/internal/shared/id"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order persistence adapter. Orders are
// immutable; saving an existing id is rejected.
type Repository struct {
	mu     sync.RWMutex
	orders map[id.OrderID]*domain.Order
}

func NewRepository() *Repository {
	return &Repository{orders: map[id.OrderID]*domain.Order{}}
}

func (r *Repository) Save(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID()]; ok {
		return nil, errors.New("order already persisted")
	}
	clone := cloneOrder(order)
	r.orders[clone.ID()] = clone
	return cloneOrder(clone), nil
}

func (r *Repository) GetByID(_ context.Context, orderID id.OrderID) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneOrder(order), nil
}

func (r *Repository) ListByUserID(_ context.Context, userID id.UserID) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*domain.Order
	for _, order := range r.orders {
		if order.UserID() == userID {
			list = append(list, cloneOrder(order))
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].OrderTime().Before(list[j].OrderTime())
	})
	return list, nil
}

func (r *Repository) ExistsByID(_ context.Context, orderID id.OrderID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.orders[orderID]
	return ok, nil
}

func (r *Repository) Delete(_ context.Context, orderID id.OrderID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[orderID]; !ok {
		return ports.ErrNotFound
	}
	delete(r.orders, orderID)
	return nil
}

func cloneOrder(order *domain.Order) *domain.Order {
	return domain.RestoreOrder(order.ID(), order.UserID(), order.ShopID(), order.LineItems(), order.OrderTime(), order.TotalPrice())
}
