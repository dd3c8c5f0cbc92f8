package domain

import (
	"errors"
	"time"

	cartsdomain "github.com/hungryhub/food-order-api/internal/domains/carts/domain"
	"github.com/hungryhub/food-order-api/internal/shared/events"
	"github.com/hungryhub/food-order-api/internal/shared/id"
	"github.com/hungryhub/food-order-api/internal/shared/money"
)

var (
	ErrNoLineItems     = errors.New("order must have at least one line item")
	ErrLineUnresolved  = errors.New("cart line could not be resolved")
	ErrPriceInvalid    = errors.New("resolved line price is invalid")
)

// OptionSnapshot captures a selected option at order time. Later menu
// edits never change a placed order.
type OptionSnapshot struct {
	OptionID id.OptionID
	Name     string
	Price    money.Money
}

// LineResolution carries the externally resolved facts for one cart
// line: the menu name, the unit price, and the selected-option data.
type LineResolution struct {
	MenuName  string
	UnitPrice money.Money
	Options   []OptionSnapshot
}

// Resolver supplies a LineResolution per cart line. It is invoked by
// FromCart before the cart is cleared.
type Resolver func(line cartsdomain.LineItem) (LineResolution, error)

// LineItem is an immutable order entry built from a cart line.
type LineItem struct {
	menuID    id.MenuID
	menuName  string
	options   []OptionSnapshot
	quantity  int
	linePrice money.Money
}

func (l LineItem) MenuID() id.MenuID      { return l.menuID }
func (l LineItem) MenuName() string       { return l.menuName }
func (l LineItem) Quantity() int          { return l.quantity }
func (l LineItem) LinePrice() money.Money { return l.linePrice }

// Options returns a copy of the option snapshots.
func (l LineItem) Options() []OptionSnapshot {
	out := make([]OptionSnapshot, len(l.options))
	copy(out, l.options)
	return out
}

// Order is the immutable snapshot aggregate produced from a cart. No
// method mutates its lines, price, or time after construction.
type Order struct {
	events.Recorder

	id         id.OrderID
	userID     id.UserID
	shopID     id.ShopID
	items      []LineItem
	orderTime  time.Time
	totalPrice money.Money
}

// FromCart converts a cart into an order, clearing the cart as part of
// the same operation. The resolver supplies menu names, option
// snapshots, and unit prices so the order stays historically stable.
func FromCart(cart *cartsdomain.Cart, resolve Resolver, now time.Time) (*Order, error) {
	userID := cart.UserID()
	shopID := cart.ShopID()

	lines, err := cart.PlaceOrder()
	if err != nil {
		return nil, err
	}
	return newOrder(userID, shopID, lines, resolve, now)
}

// RestoreOrder rebuilds an order aggregate from persisted state.
func RestoreOrder(orderID id.OrderID, userID id.UserID, shopID id.ShopID, items []LineItem, orderTime time.Time, totalPrice money.Money) *Order {
	o := &Order{id: orderID, userID: userID, shopID: shopID, orderTime: orderTime, totalPrice: totalPrice}
	o.items = append(o.items, items...)
	return o
}

// RestoreLineItem rebuilds an order line from persisted state.
func RestoreLineItem(menuID id.MenuID, menuName string, options []OptionSnapshot, quantity int, linePrice money.Money) LineItem {
	l := LineItem{menuID: menuID, menuName: menuName, quantity: quantity, linePrice: linePrice}
	l.options = append(l.options, options...)
	return l
}

func newOrder(userID id.UserID, shopID id.ShopID, lines []cartsdomain.LineItem, resolve Resolver, now time.Time) (*Order, error) {
	// guarded by Cart.PlaceOrder as well; an order can never be built
	// with zero lines by any path
	if len(lines) == 0 {
		return nil, ErrNoLineItems
	}

	order := &Order{
		id:        id.NewOrderID(),
		userID:    userID,
		shopID:    shopID,
		orderTime: now,
	}

	total := money.Zero()
	for _, line := range lines {
		resolution, err := resolve(line)
		if err != nil {
			return nil, errors.Join(ErrLineUnresolved, err)
		}
		linePrice := resolution.UnitPrice.MultiplyInt(int64(line.Quantity()))
		sum, err := total.Add(linePrice)
		if err != nil {
			return nil, errors.Join(ErrPriceInvalid, err)
		}
		total = sum

		options := make([]OptionSnapshot, len(resolution.Options))
		copy(options, resolution.Options)
		order.items = append(order.items, LineItem{
			menuID:    line.MenuID(),
			menuName:  resolution.MenuName,
			options:   options,
			quantity:  line.Quantity(),
			linePrice: linePrice,
		})
	}
	order.totalPrice = total

	order.Record(Placed{
		Base:        events.Base{Timestamp: now},
		OrderID:     order.id,
		UserID:      userID,
		ShopID:      shopID,
		TotalAmount: total,
	})
	return order, nil
}

func (o *Order) ID() id.OrderID          { return o.id }
func (o *Order) UserID() id.UserID       { return o.userID }
func (o *Order) ShopID() id.ShopID       { return o.shopID }
func (o *Order) OrderTime() time.Time    { return o.orderTime }
func (o *Order) TotalPrice() money.Money { return o.totalPrice }

// LineItems returns the order lines in placement order.
func (o *Order) LineItems() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}
