package domain

import (
	"errors"
	"time"

	"github.com/hungryhub/food-order-api/internal/shared/events"
	"github.com/hungryhub/food-order-api/internal/shared/id"
	"github.com/hungryhub/food-order-api/internal/shared/money"
)

var (
	ErrMissingUser     = errors.New("cart must belong to a user")
	ErrMissingMenu     = errors.New("menu id is required")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrEmptyCart       = errors.New("cart has no line items")
	ErrNoShopSelected  = errors.New("cart has no shop selected")
)

// placeholderUnitPrice stands in for live menu/option price resolution
// when totalling a cart. Order line prices never use it; they are built
// from resolved prices at placement time.
var placeholderUnitPrice = money.MustParse("10.00")

// LineItem is a cart entry identified by its (menu, option set) pair.
// Two entries with the same menu and the same selected options are the
// same line regardless of option order.
type LineItem struct {
	menuID    id.MenuID
	optionIDs []id.OptionID
	quantity  int
}

// NewLineItem validates and builds a cart line.
func NewLineItem(menuID id.MenuID, optionIDs []id.OptionID, quantity int) (LineItem, error) {
	if menuID.IsZero() {
		return LineItem{}, ErrMissingMenu
	}
	if quantity <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}
	line := LineItem{menuID: menuID, quantity: quantity}
	line.optionIDs = append(line.optionIDs, optionIDs...)
	return line, nil
}

func (l LineItem) MenuID() id.MenuID { return l.menuID }
func (l LineItem) Quantity() int     { return l.quantity }

// OptionIDs returns a copy of the selected option ids.
func (l LineItem) OptionIDs() []id.OptionID {
	out := make([]id.OptionID, len(l.optionIDs))
	copy(out, l.optionIDs)
	return out
}

// SameLine reports whether other selects the same menu with the same
// option set, order irrelevant.
func (l LineItem) SameLine(other LineItem) bool {
	if l.menuID != other.menuID || len(l.optionIDs) != len(other.optionIDs) {
		return false
	}
	remaining := make(map[id.OptionID]int, len(l.optionIDs))
	for _, optID := range l.optionIDs {
		remaining[optID]++
	}
	for _, optID := range other.optionIDs {
		remaining[optID]--
		if remaining[optID] < 0 {
			return false
		}
	}
	return true
}

func (l LineItem) withQuantity(quantity int) LineItem {
	merged := LineItem{menuID: l.menuID, quantity: quantity}
	merged.optionIDs = append(merged.optionIDs, l.optionIDs...)
	return merged
}

// Cart is the aggregate root holding a user's pending selection. All
// line items belong to the single shop currently set; adding an item
// from another shop resets the cart first.
type Cart struct {
	events.Recorder

	id      id.CartID
	userID  id.UserID
	shopID  id.ShopID
	items   []LineItem
	version int64
}

// NewCart creates an empty cart for a user.
func NewCart(userID id.UserID) (*Cart, error) {
	if userID.IsZero() {
		return nil, ErrMissingUser
	}
	return &Cart{id: id.NewCartID(), userID: userID}, nil
}

// RestoreCart rebuilds a cart aggregate from persisted state.
func RestoreCart(cartID id.CartID, userID id.UserID, shopID id.ShopID, items []LineItem, version int64) *Cart {
	c := &Cart{id: cartID, userID: userID, shopID: shopID, version: version}
	c.items = append(c.items, items...)
	return c
}

func (c *Cart) ID() id.CartID     { return c.id }
func (c *Cart) UserID() id.UserID { return c.userID }

// ShopID returns the shop the cart is bound to; zero when none is set.
func (c *Cart) ShopID() id.ShopID { return c.shopID }

// Version is the optimistic-concurrency stamp compared at save time.
func (c *Cart) Version() int64 { return c.version }

// IsEmpty reports whether the cart holds no line items.
func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// LineItems returns the lines in insertion order.
func (c *Cart) LineItems() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// AddItem merges an item into the cart. Selecting a different shop than
// the one currently set clears every existing line first; no state from
// the old shop survives. The recorded event carries the quantity just
// added, not the post-merge total.
func (c *Cart) AddItem(shopID id.ShopID, menuID id.MenuID, optionIDs []id.OptionID, quantity int, now time.Time) error {
	if shopID.IsZero() {
		return ErrNoShopSelected
	}
	line, err := NewLineItem(menuID, optionIDs, quantity)
	if err != nil {
		return err
	}
	if !c.shopID.IsZero() && c.shopID != shopID {
		c.items = nil
	}
	c.shopID = shopID
	c.merge(line)
	c.Record(ItemAdded{
		Base:     events.Base{Timestamp: now},
		CartID:   c.id,
		UserID:   c.userID,
		ShopID:   shopID,
		MenuID:   menuID,
		Quantity: quantity,
	})
	return nil
}

// RemoveItem drops the line exactly matching the (menu, option set)
// pair. Removing an absent line is a deliberate no-op.
func (c *Cart) RemoveItem(menuID id.MenuID, optionIDs []id.OptionID) {
	probe := LineItem{menuID: menuID, optionIDs: optionIDs}
	for i, item := range c.items {
		if item.SameLine(probe) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart and unsets the shop.
func (c *Cart) Clear() {
	c.items = nil
	c.shopID = id.ShopID{}
}

// TotalPrice sums unit price times quantity across the lines. The unit
// price is the fixed placeholder; see placeholderUnitPrice.
func (c *Cart) TotalPrice() money.Money {
	total := money.Zero()
	for _, item := range c.items {
		linePrice := placeholderUnitPrice.MultiplyInt(int64(item.quantity))
		sum, err := total.Add(linePrice)
		if err != nil {
			// placeholder and zero share the default currency
			continue
		}
		total = sum
	}
	return total
}

// PlaceOrder validates the cart can become an order, captures its lines,
// and clears it. Callers construct the order from the returned lines in
// the same operation.
func (c *Cart) PlaceOrder() ([]LineItem, error) {
	if len(c.items) == 0 {
		return nil, ErrEmptyCart
	}
	if c.shopID.IsZero() {
		return nil, ErrNoShopSelected
	}
	lines := c.LineItems()
	c.Clear()
	return lines, nil
}

func (c *Cart) merge(line LineItem) {
	for i, item := range c.items {
		if item.SameLine(line) {
			c.items[i] = item.withQuantity(item.quantity + line.quantity)
			return
		}
	}
	c.items = append(c.items, line)
}
