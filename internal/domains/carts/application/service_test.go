package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hungryhub/food-order-api/internal/domains/carts/domain"
	"github.com/hungryhub/food-order-api/internal/domains/carts/ports"
	ordersdomain "github.com/hungryhub/food-order-api/internal/domains/orders/domain"
	ordersports "github.com/hungryhub/food-order-api/internal/domains/orders/ports"
	"github.com/hungryhub/food-order-api/internal/shared/id"
	"github.com/hungryhub/food-order-api/internal/shared/money"
	"github.com/hungryhub/food-order-api/internal/shared/retry"
)

type fakeCartRepo struct {
	carts map[id.CartID]*domain.Cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[id.CartID]*domain.Cart{}}
}

func (f *fakeCartRepo) Save(_ context.Context, cart *domain.Cart) (*domain.Cart, error) {
	f.carts[cart.ID()] = cart
	return cart, nil
}

func (f *fakeCartRepo) GetByID(_ context.Context, cartID id.CartID) (*domain.Cart, error) {
	cart, ok := f.carts[cartID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cart, nil
}

func (f *fakeCartRepo) FindByUserID(_ context.Context, userID id.UserID) (*domain.Cart, error) {
	for _, cart := range f.carts {
		if cart.UserID() == userID {
			return cart, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (f *fakeCartRepo) ExistsByID(_ context.Context, cartID id.CartID) (bool, error) {
	_, ok := f.carts[cartID]
	return ok, nil
}

func (f *fakeCartRepo) Delete(_ context.Context, cartID id.CartID) error {
	if _, ok := f.carts[cartID]; !ok {
		return ports.ErrNotFound
	}
	delete(f.carts, cartID)
	return nil
}

type fakeOrderRepo struct {
	orders map[id.OrderID]*ordersdomain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[id.OrderID]*ordersdomain.Order{}}
}

func (f *fakeOrderRepo) Save(_ context.Context, order *ordersdomain.Order) (*ordersdomain.Order, error) {
	f.orders[order.ID()] = order
	return order, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, orderID id.OrderID) (*ordersdomain.Order, error) {
	order, ok := f.orders[orderID]
	if !ok {
		return nil, ordersports.ErrNotFound
	}
	return order, nil
}

func (f *fakeOrderRepo) ListByUserID(_ context.Context, userID id.UserID) ([]*ordersdomain.Order, error) {
	var out []*ordersdomain.Order
	for _, order := range f.orders {
		if order.UserID() == userID {
			out = append(out, order)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ExistsByID(_ context.Context, orderID id.OrderID) (bool, error) {
	_, ok := f.orders[orderID]
	return ok, nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, orderID id.OrderID) error {
	if _, ok := f.orders[orderID]; !ok {
		return ordersports.ErrNotFound
	}
	delete(f.orders, orderID)
	return nil
}

type fakeShopProvider struct {
	open map[id.ShopID]bool
}

func (f *fakeShopProvider) IsShopOpen(_ context.Context, shopID id.ShopID) (bool, error) {
	return f.open[shopID], nil
}

type fakeMenuProvider struct {
	menus   map[id.MenuID]ports.MenuInfo
	options map[id.OptionID]ports.OptionInfo
}

func (f *fakeMenuProvider) GetMenuInfo(_ context.Context, menuID id.MenuID) (ports.MenuInfo, error) {
	info, ok := f.menus[menuID]
	if !ok {
		return ports.MenuInfo{}, ports.ErrMenuNotFound
	}
	return info, nil
}

func (f *fakeMenuProvider) GetOptionInfos(_ context.Context, _ id.MenuID, optionIDs []id.OptionID) ([]ports.OptionInfo, error) {
	out := make([]ports.OptionInfo, 0, len(optionIDs))
	for _, optID := range optionIDs {
		info, ok := f.options[optID]
		if !ok {
			return nil, ports.ErrOptionNotFound
		}
		out = append(out, info)
	}
	return out, nil
}

type fakeUserProvider struct {
	valid     map[id.UserID]bool
	failures  int
	callCount int
}

func (f *fakeUserProvider) IsValidUser(_ context.Context, userID id.UserID) (bool, error) {
	f.callCount++
	if f.failures > 0 {
		f.failures--
		return false, errors.New("user lookup timed out")
	}
	return f.valid[userID], nil
}

type fixture struct {
	svc      *Service
	carts    *fakeCartRepo
	orders   *fakeOrderRepo
	shop     id.ShopID
	menu     id.MenuID
	user     id.UserID
	users    *fakeUserProvider
	provider *fakeMenuProvider
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	shop := id.NewShopID()
	menu := id.NewMenuID()
	user := id.NewUserID()

	cartRepo := newFakeCartRepo()
	orderRepo := newFakeOrderRepo()
	shops := &fakeShopProvider{open: map[id.ShopID]bool{shop: true}}
	menus := &fakeMenuProvider{
		menus: map[id.MenuID]ports.MenuInfo{
			menu: {MenuID: menu, ShopID: shop, Name: "Fried Chicken", BasePrice: money.MustParse("12.00"), Open: true},
		},
		options: map[id.OptionID]ports.OptionInfo{},
	}
	users := &fakeUserProvider{valid: map[id.UserID]bool{user: true}}

	svc := NewService(cartRepo, orderRepo, shops, menus, users)
	svc.retryCfg = retry.Config{Attempts: 2, Delay: time.Millisecond}

	return &fixture{svc: svc, carts: cartRepo, orders: orderRepo, shop: shop, menu: menu, user: user, users: users, provider: menus}
}

func (f *fixture) addItem(t *testing.T, quantity int, optionIDs ...id.OptionID) *domain.Cart {
	t.Helper()
	cart, err := f.svc.AddItem(context.Background(), ports.AddItemInput{
		UserID:    f.user,
		ShopID:    f.shop,
		MenuID:    f.menu,
		OptionIDs: optionIDs,
		Quantity:  quantity,
	})
	require.NoError(t, err)
	return cart
}

func TestGetCart_CreatesOnFirstAccess(t *testing.T) {
	f := newFixture(t)

	cart, err := f.svc.GetCart(context.Background(), f.user)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	again, err := f.svc.GetCart(context.Background(), f.user)
	require.NoError(t, err)
	assert.Equal(t, cart.ID(), again.ID())
}

func TestAddItem_MergesAndPersists(t *testing.T) {
	f := newFixture(t)

	f.addItem(t, 2)
	cart := f.addItem(t, 3)

	lines := cart.LineItems()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity())
}

func TestAddItem_ShopClosed(t *testing.T) {
	f := newFixture(t)
	closed := id.NewShopID()

	_, err := f.svc.AddItem(context.Background(), ports.AddItemInput{
		UserID: f.user, ShopID: closed, MenuID: f.menu, Quantity: 1,
	})
	require.ErrorIs(t, err, ErrValidation)
	require.ErrorIs(t, err, ports.ErrShopClosed)
}

func TestAddItem_UnknownMenu(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.AddItem(context.Background(), ports.AddItemInput{
		UserID: f.user, ShopID: f.shop, MenuID: id.NewMenuID(), Quantity: 1,
	})
	require.ErrorIs(t, err, ports.ErrMenuNotFound)
}

func TestAddItem_MenuFromAnotherShopRejected(t *testing.T) {
	f := newFixture(t)
	foreign := id.NewMenuID()
	f.provider.menus[foreign] = ports.MenuInfo{MenuID: foreign, ShopID: id.NewShopID(), Name: "other", Open: true}

	_, err := f.svc.AddItem(context.Background(), ports.AddItemInput{
		UserID: f.user, ShopID: f.shop, MenuID: foreign, Quantity: 1,
	})
	require.ErrorIs(t, err, ports.ErrMenuNotFound)
}

func TestAddItem_InvalidUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.AddItem(context.Background(), ports.AddItemInput{
		UserID: id.NewUserID(), ShopID: f.shop, MenuID: f.menu, Quantity: 1,
	})
	require.ErrorIs(t, err, ports.ErrUserNotFound)
}

func TestAddItem_RetriesTransientUserLookup(t *testing.T) {
	f := newFixture(t)
	f.users.failures = 1

	cart := f.addItem(t, 1)
	assert.Len(t, cart.LineItems(), 1)
	assert.Equal(t, 2, f.users.callCount)
}

func TestAddItem_GivesUpAfterBoundedRetries(t *testing.T) {
	f := newFixture(t)
	f.users.failures = 5

	_, err := f.svc.AddItem(context.Background(), ports.AddItemInput{
		UserID: f.user, ShopID: f.shop, MenuID: f.menu, Quantity: 1,
	})
	require.Error(t, err)
	assert.Equal(t, 2, f.users.callCount)
}

func TestAddItem_InvalidQuantityRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.AddItem(context.Background(), ports.AddItemInput{
		UserID: f.user, ShopID: f.shop, MenuID: f.menu, Quantity: 0,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestRemoveItem_AbsentLineIsNoOp(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, 2)

	cart, err := f.svc.RemoveItem(context.Background(), f.user, id.NewMenuID(), nil)
	require.NoError(t, err)
	assert.Len(t, cart.LineItems(), 1)
}

func TestClearCart(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, 2)

	cart, err := f.svc.ClearCart(context.Background(), f.user)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.ShopID().IsZero())
}

func TestPlaceOrder_EmptyCartFails(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.GetCart(context.Background(), f.user)
	require.NoError(t, err)

	_, err = f.svc.PlaceOrder(context.Background(), f.user)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Empty(t, f.orders.orders)
}

func TestPlaceOrder_BuildsSnapshotOrderAndClearsCart(t *testing.T) {
	f := newFixture(t)
	hot := id.NewOptionID()
	f.provider.options[hot] = ports.OptionInfo{OptionID: hot, Name: "hot", Price: money.MustParse("0.50")}

	f.addItem(t, 2, hot)
	f.addItem(t, 1)

	order, err := f.svc.PlaceOrder(context.Background(), f.user)
	require.NoError(t, err)

	lines := order.LineItems()
	require.Len(t, lines, 2)
	assert.Equal(t, "Fried Chicken", lines[0].MenuName())
	// (12.00 + 0.50) * 2
	assert.True(t, lines[0].LinePrice().Equal(money.MustParse("25.00")))
	require.Len(t, lines[0].Options(), 1)
	assert.Equal(t, "hot", lines[0].Options()[0].Name)
	assert.True(t, order.TotalPrice().Equal(money.MustParse("37.00")))

	cart, err := f.svc.GetCart(context.Background(), f.user)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.ShopID().IsZero())

	stored, err := f.orders.GetByID(context.Background(), order.ID())
	require.NoError(t, err)
	assert.Equal(t, f.user, stored.UserID())
	assert.Empty(t, order.Events())
}
