package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/hungryhub/food-order-api/internal/shared/id"
	"github.com/hungryhub/food-order-api/internal/shared/money"
)

var ErrEmptyOptionName = errors.New("option name is required")

// Option is an immutable selectable extra on a menu, compared by
// (name, price). A zero price means the option is free.
type Option struct {
	name  string
	price money.Money
}

// NewOption validates and builds an option value.
func NewOption(name string, price money.Money) (Option, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Option{}, ErrEmptyOptionName
	}
	return Option{name: trimmed, price: price}, nil
}

func (o Option) Name() string       { return o.name }
func (o Option) Price() money.Money { return o.price }

// Equal reports value equality on (name, price).
func (o Option) Equal(other Option) bool {
	return o.name == other.name && o.price.Equal(other.price)
}

// WithName returns a new option carrying the same price under a new name.
func (o Option) WithName(name string) (Option, error) {
	return NewOption(name, o.price)
}

// IdentityOn derives the stable identifier under which other contexts
// reference this option on a given menu. Options are value objects, so
// the identifier is content-based: renaming or repricing an option
// yields a new identity, which is exactly the snapshot semantics placed
// orders rely on.
func (o Option) IdentityOn(menuID id.MenuID) id.OptionID {
	name := uuid.NewSHA1(uuid.NameSpaceURL, []byte("menu:"+menuID.String()+"/option:"+o.name+"@"+o.price.String()))
	optionID, err := id.OptionIDFrom(name.String())
	if err != nil {
		// unreachable: a UUID string is never blank
		panic(err)
	}
	return optionID
}
