// Package id defines the typed identifiers used across the ordering
// contexts. Each kind wraps an opaque string so identifiers of different
// kinds can never be interchanged.
package id

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrBlank = errors.New("identifier must not be blank")

// ShopID identifies a shop.
type ShopID struct{ value string }

// MenuID identifies a menu aggregate.
type MenuID struct{ value string }

// OptionID identifies an option within an option group.
type OptionID struct{ value string }

// OptionGroupID identifies an option group entity.
type OptionGroupID struct{ value string }

// CartID identifies a cart aggregate.
type CartID struct{ value string }

// OrderID identifies an order aggregate.
type OrderID struct{ value string }

// UserID identifies a customer.
type UserID struct{ value string }

func NewShopID() ShopID               { return ShopID{value: uuid.NewString()} }
func NewMenuID() MenuID               { return MenuID{value: uuid.NewString()} }
func NewOptionID() OptionID           { return OptionID{value: uuid.NewString()} }
func NewOptionGroupID() OptionGroupID { return OptionGroupID{value: uuid.NewString()} }
func NewCartID() CartID               { return CartID{value: uuid.NewString()} }
func NewOrderID() OrderID             { return OrderID{value: uuid.NewString()} }
func NewUserID() UserID               { return UserID{value: uuid.NewString()} }

func ShopIDFrom(raw string) (ShopID, error) {
	v, err := validate("shop", raw)
	return ShopID{value: v}, err
}

func MenuIDFrom(raw string) (MenuID, error) {
	v, err := validate("menu", raw)
	return MenuID{value: v}, err
}

func OptionIDFrom(raw string) (OptionID, error) {
	v, err := validate("option", raw)
	return OptionID{value: v}, err
}

func OptionGroupIDFrom(raw string) (OptionGroupID, error) {
	v, err := validate("option group", raw)
	return OptionGroupID{value: v}, err
}

func CartIDFrom(raw string) (CartID, error) {
	v, err := validate("cart", raw)
	return CartID{value: v}, err
}

func OrderIDFrom(raw string) (OrderID, error) {
	v, err := validate("order", raw)
	return OrderID{value: v}, err
}

func UserIDFrom(raw string) (UserID, error) {
	v, err := validate("user", raw)
	return UserID{value: v}, err
}

func (id ShopID) String() string        { return id.value }
func (id MenuID) String() string        { return id.value }
func (id OptionID) String() string      { return id.value }
func (id OptionGroupID) String() string { return id.value }
func (id CartID) String() string        { return id.value }
func (id OrderID) String() string       { return id.value }
func (id UserID) String() string        { return id.value }

func (id ShopID) IsZero() bool        { return id.value == "" }
func (id MenuID) IsZero() bool        { return id.value == "" }
func (id OptionID) IsZero() bool      { return id.value == "" }
func (id OptionGroupID) IsZero() bool { return id.value == "" }
func (id CartID) IsZero() bool        { return id.value == "" }
func (id OrderID) IsZero() bool       { return id.value == "" }
func (id UserID) IsZero() bool        { return id.value == "" }

func validate(kind, raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: %s id", ErrBlank, kind)
	}
	return trimmed, nil
}
