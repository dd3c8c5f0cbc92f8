package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartsdomain "github.com/hungryhub/food-order-api/internal/domains/carts/domain"
	"github.com/hungryhub/food-order-api/internal/shared/id"
	"github.com/hungryhub/food-order-api/internal/shared/money"
)

func fixedResolver(menuName string, unitPrice money.Money, options ...OptionSnapshot) Resolver {
	return func(cartsdomain.LineItem) (LineResolution, error) {
		return LineResolution{MenuName: menuName, UnitPrice: unitPrice, Options: options}, nil
	}
}

func populatedCart(t *testing.T, shop id.ShopID, quantities ...int) *cartsdomain.Cart {
	t.Helper()
	cart, err := cartsdomain.NewCart(id.NewUserID())
	require.NoError(t, err)
	for _, q := range quantities {
		require.NoError(t, cart.AddItem(shop, id.NewMenuID(), nil, q, time.Now()))
	}
	return cart
}

func TestFromCart_EmptyCartFails(t *testing.T) {
	cart, err := cartsdomain.NewCart(id.NewUserID())
	require.NoError(t, err)

	_, err = FromCart(cart, fixedResolver("x", money.MustParse("1.00")), time.Now())
	require.ErrorIs(t, err, cartsdomain.ErrEmptyCart)
}

func TestFromCart_SnapshotsEveryLine(t *testing.T) {
	shop := id.NewShopID()
	cart := populatedCart(t, shop, 2, 3)
	userID := cart.UserID()

	hot := OptionSnapshot{OptionID: id.NewOptionID(), Name: "hot", Price: money.MustParse("0.50")}
	now := time.Now()
	order, err := FromCart(cart, fixedResolver("Fried Chicken", money.MustParse("12.00"), hot), now)
	require.NoError(t, err)

	lines := order.LineItems()
	require.Len(t, lines, 2)
	assert.Equal(t, "Fried Chicken", lines[0].MenuName())
	assert.Equal(t, 2, lines[0].Quantity())
	assert.True(t, lines[0].LinePrice().Equal(money.MustParse("24.00")))
	assert.True(t, lines[1].LinePrice().Equal(money.MustParse("36.00")))
	require.Len(t, lines[0].Options(), 1)
	assert.Equal(t, "hot", lines[0].Options()[0].Name)

	assert.True(t, order.TotalPrice().Equal(money.MustParse("60.00")))
	assert.Equal(t, userID, order.UserID())
	assert.Equal(t, shop, order.ShopID())
	assert.Equal(t, now, order.OrderTime())
}

func TestFromCart_ClearsTheCart(t *testing.T) {
	cart := populatedCart(t, id.NewShopID(), 1)

	_, err := FromCart(cart, fixedResolver("x", money.MustParse("5.00")), time.Now())
	require.NoError(t, err)

	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.ShopID().IsZero())
}

func TestFromCart_LineCountMatchesCart(t *testing.T) {
	cart := populatedCart(t, id.NewShopID(), 1, 2, 3)

	order, err := FromCart(cart, fixedResolver("x", money.MustParse("1.00")), time.Now())
	require.NoError(t, err)
	assert.Len(t, order.LineItems(), 3)
}

func TestFromCart_ResolverFailurePropagates(t *testing.T) {
	cart := populatedCart(t, id.NewShopID(), 1)
	boom := errors.New("catalog unavailable")

	_, err := FromCart(cart, func(cartsdomain.LineItem) (LineResolution, error) {
		return LineResolution{}, boom
	}, time.Now())
	require.ErrorIs(t, err, ErrLineUnresolved)
	require.ErrorIs(t, err, boom)
}

func TestFromCart_EmitsPlacedEvent(t *testing.T) {
	cart := populatedCart(t, id.NewShopID(), 2)
	userID := cart.UserID()
	shopID := cart.ShopID()

	order, err := FromCart(cart, fixedResolver("x", money.MustParse("7.50")), time.Now())
	require.NoError(t, err)

	recorded := order.Events()
	require.Len(t, recorded, 1)
	placed, ok := recorded[0].(Placed)
	require.True(t, ok)
	assert.Equal(t, order.ID(), placed.OrderID)
	assert.Equal(t, userID, placed.UserID)
	assert.Equal(t, shopID, placed.ShopID)
	assert.True(t, placed.TotalAmount.Equal(money.MustParse("15.00")))
}

func TestRestoreOrder_RoundTrip(t *testing.T) {
	line := RestoreLineItem(id.NewMenuID(), "Bibimbap", nil, 2, money.MustParse("20.00"))
	orderID := id.NewOrderID()
	now := time.Now()

	order := RestoreOrder(orderID, id.NewUserID(), id.NewShopID(), []LineItem{line}, now, money.MustParse("20.00"))
	assert.Equal(t, orderID, order.ID())
	assert.Len(t, order.LineItems(), 1)
	assert.Empty(t, order.Events())
}
