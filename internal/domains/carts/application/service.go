package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hungryhub/food-order-api/internal/domains/carts/domain"
	"github.com/hungryhub/food-order-api/internal/domains/carts/ports"
	ordersdomain "github.com/hungryhub/food-order-api/internal/domains/orders/domain"
	ordersports "github.com/hungryhub/food-order-api/internal/domains/orders/ports"
	"github.com/hungryhub/food-order-api/internal/shared/id"
	"github.com/hungryhub/food-order-api/internal/shared/retry"
)

// Service orchestrates the carts bounded context. External facts are
// validated through the providers strictly before any aggregate call;
// the aggregates themselves never reach out.
type Service struct {
	carts  ports.Repository
	orders ordersports.Repository
	shops  ports.ShopProvider
	menus  ports.MenuProvider
	users  ports.UserProvider

	retryCfg retry.Config
	now      func() time.Time
}

// Option customizes the carts service.
type Option func(*Service)

// WithRetryConfig overrides the retry policy for the user lookup.
func WithRetryConfig(cfg retry.Config) Option {
	return func(s *Service) {
		s.retryCfg = cfg
	}
}

// NewService wires the carts service with its collaborators.
func NewService(
	carts ports.Repository,
	orders ordersports.Repository,
	shops ports.ShopProvider,
	menus ports.MenuProvider,
	users ports.UserProvider,
	opts ...Option,
) *Service {
	s := &Service{
		carts:    carts,
		orders:   orders,
		shops:    shops,
		menus:    menus,
		users:    users,
		retryCfg: retry.DefaultConfig(),
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// GetCart returns the user's active cart, creating an empty one when
// none exists yet.
func (s *Service) GetCart(ctx context.Context, userID id.UserID) (*domain.Cart, error) {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}
	fresh, err := domain.NewCart(userID)
	if err != nil {
		return nil, mapError(err)
	}
	return s.carts.Save(ctx, fresh)
}

// AddItem validates the command against the external providers and
// merges the item into the user's cart.
func (s *Service) AddItem(ctx context.Context, input ports.AddItemInput) (*domain.Cart, error) {
	if err := s.validateUser(ctx, input.UserID); err != nil {
		return nil, mapError(err)
	}
	open, err := s.shops.IsShopOpen(ctx, input.ShopID)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, mapError(ports.ErrShopClosed)
	}
	menuInfo, err := s.menus.GetMenuInfo(ctx, input.MenuID)
	if err != nil {
		return nil, mapError(err)
	}
	if menuInfo.ShopID != input.ShopID || !menuInfo.Open {
		return nil, mapError(ports.ErrMenuNotFound)
	}
	if len(input.OptionIDs) > 0 {
		if _, err := s.menus.GetOptionInfos(ctx, input.MenuID, input.OptionIDs); err != nil {
			return nil, mapError(err)
		}
	}

	cart, err := s.GetCart(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if err := cart.AddItem(input.ShopID, input.MenuID, input.OptionIDs, input.Quantity, s.now()); err != nil {
		return nil, mapError(err)
	}
	return s.save(ctx, cart)
}

// RemoveItem drops the line matching the (menu, option set) pair from
// the user's cart. An absent line is a no-op.
func (s *Service) RemoveItem(ctx context.Context, userID id.UserID, menuID id.MenuID, optionIDs []id.OptionID) (*domain.Cart, error) {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	cart.RemoveItem(menuID, optionIDs)
	return s.save(ctx, cart)
}

// ClearCart empties the user's cart.
func (s *Service) ClearCart(ctx context.Context, userID id.UserID) (*domain.Cart, error) {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	cart.Clear()
	return s.save(ctx, cart)
}

// PlaceOrder converts the user's cart into an immutable order. Line
// data is resolved from the menu provider before the aggregates run, so
// no collaborator call interleaves with them.
func (s *Service) PlaceOrder(ctx context.Context, userID id.UserID) (*ordersdomain.Order, error) {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, mapError(domain.ErrEmptyCart)
	}

	resolutions, err := s.resolveLines(ctx, cart.LineItems())
	if err != nil {
		return nil, mapError(err)
	}

	next := 0
	order, err := ordersdomain.FromCart(cart, func(domain.LineItem) (ordersdomain.LineResolution, error) {
		resolution := resolutions[next]
		next++
		return resolution, nil
	}, s.now())
	if err != nil {
		return nil, mapError(err)
	}

	saved, err := s.orders.Save(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ClearEvents()

	// the emptied cart is persisted as part of the same unit of work
	if _, err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return saved, nil
}

// resolveLines fetches menu names, option snapshots, and unit prices
// for every cart line, in line order.
func (s *Service) resolveLines(ctx context.Context, lines []domain.LineItem) ([]ordersdomain.LineResolution, error) {
	resolutions := make([]ordersdomain.LineResolution, 0, len(lines))
	for _, line := range lines {
		menuInfo, err := s.menus.GetMenuInfo(ctx, line.MenuID())
		if err != nil {
			return nil, err
		}
		unitPrice := menuInfo.BasePrice

		var snapshots []ordersdomain.OptionSnapshot
		if optionIDs := line.OptionIDs(); len(optionIDs) > 0 {
			optionInfos, err := s.menus.GetOptionInfos(ctx, line.MenuID(), optionIDs)
			if err != nil {
				return nil, err
			}
			for _, info := range optionInfos {
				snapshots = append(snapshots, ordersdomain.OptionSnapshot{
					OptionID: info.OptionID,
					Name:     info.Name,
					Price:    info.Price,
				})
				unitPrice, err = unitPrice.Add(info.Price)
				if err != nil {
					return nil, fmt.Errorf("option %s price: %w", info.OptionID, err)
				}
			}
		}
		resolutions = append(resolutions, ordersdomain.LineResolution{
			MenuName:  menuInfo.Name,
			UnitPrice: unitPrice,
			Options:   snapshots,
		})
	}
	return resolutions, nil
}

// validateUser checks user existence, retrying once on transient lookup
// failures. A negative answer is never retried.
func (s *Service) validateUser(ctx context.Context, userID id.UserID) error {
	valid, err := retry.Do(ctx, s.retryCfg, func() (bool, error) {
		return s.users.IsValidUser(ctx, userID)
	})
	if err != nil {
		return err
	}
	if !valid {
		return ports.ErrUserNotFound
	}
	return nil
}

func (s *Service) save(ctx context.Context, cart *domain.Cart) (*domain.Cart, error) {
	saved, err := s.carts.Save(ctx, cart)
	if err != nil {
		return nil, err
	}
	cart.ClearEvents()
	return saved, nil
}

var _ ports.Service = (*Service)(nil)
