package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/hungryhub/food-order-api/internal/domains/menus/domain"
	"github.com/hungryhub/food-order-api/internal/domains/menus/ports"
	"github.com/hungryhub/food-order-api/internal/shared/id"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory menu persistence adapter.
type Repository struct {
	mu    sync.RWMutex
	menus map[id.MenuID]*domain.Menu
}

func NewRepository() *Repository {
	return &Repository{menus: map[id.MenuID]*domain.Menu{}}
}

func (r *Repository) Save(_ context.Context, menu *domain.Menu) (*domain.Menu, error) {
	if menu == nil {
		return nil, errors.New("menu is nil")
	}
	clone := cloneMenu(menu)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.menus[clone.ID()] = clone
	return cloneMenu(clone), nil
}

func (r *Repository) GetByID(_ context.Context, menuID id.MenuID) (*domain.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	menu, ok := r.menus[menuID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneMenu(menu), nil
}

func (r *Repository) ExistsByID(_ context.Context, menuID id.MenuID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.menus[menuID]
	return ok, nil
}

func (r *Repository) ListByShop(_ context.Context, shopID id.ShopID) ([]*domain.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*domain.Menu
	for _, menu := range r.menus {
		if menu.ShopID() == shopID {
			list = append(list, cloneMenu(menu))
		}
	}
	return list, nil
}

func (r *Repository) Delete(_ context.Context, menuID id.MenuID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.menus[menuID]; !ok {
		return ports.ErrNotFound
	}
	delete(r.menus, menuID)
	return nil
}

// cloneMenu deep-copies the aggregate so callers never alias stored state.
func cloneMenu(menu *domain.Menu) *domain.Menu {
	groups := make([]*domain.OptionGroup, 0, len(menu.OptionGroups()))
	for _, g := range menu.OptionGroups() {
		groups = append(groups, domain.RestoreOptionGroup(g.ID(), g.Name(), g.Required(), g.Options()))
	}
	return domain.RestoreMenu(menu.ID(), menu.ShopID(), menu.Name(), menu.Description(), menu.BasePrice(), menu.IsOpen(), groups)
}
