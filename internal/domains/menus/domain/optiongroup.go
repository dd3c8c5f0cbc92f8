package domain

import (
	"errors"
	"strings"

	"github.com/hungryhub/food-order-api/internal/shared/id"
	"github.com/hungryhub/food-order-api/internal/shared/money"
)

var (
	ErrEmptyGroupName  = errors.New("option group name is required")
	ErrDuplicateOption = errors.New("option with the same name and price already exists")
	ErrOptionNotFound  = errors.New("option not found")
)

// OptionGroup is an entity owned by exactly one Menu. It holds an
// ordered list of options and rejects duplicate (name, price) pairs.
type OptionGroup struct {
	id       id.OptionGroupID
	name     string
	required bool
	options  []Option
}

// NewOptionGroup builds an empty group with a fresh identity.
func NewOptionGroup(name string, required bool) (*OptionGroup, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyGroupName
	}
	return &OptionGroup{id: id.NewOptionGroupID(), name: trimmed, required: required}, nil
}

// RestoreOptionGroup rebuilds a group from persisted state.
func RestoreOptionGroup(groupID id.OptionGroupID, name string, required bool, options []Option) *OptionGroup {
	g := &OptionGroup{id: groupID, name: name, required: required}
	g.options = append(g.options, options...)
	return g
}

func (g *OptionGroup) ID() id.OptionGroupID { return g.id }
func (g *OptionGroup) Name() string         { return g.name }
func (g *OptionGroup) Required() bool       { return g.required }

// Options returns a copy of the option list in insertion order.
func (g *OptionGroup) Options() []Option {
	out := make([]Option, len(g.options))
	copy(out, g.options)
	return out
}

// AddOption appends an option, rejecting an exact (name, price) duplicate.
func (g *OptionGroup) AddOption(option Option) error {
	if g.indexOf(option.Name(), option.Price()) >= 0 {
		return ErrDuplicateOption
	}
	g.options = append(g.options, option)
	return nil
}

// RemoveOption drops the option matching the exact (name, price) pair.
func (g *OptionGroup) RemoveOption(name string, price money.Money) error {
	idx := g.indexOf(name, price)
	if idx < 0 {
		return ErrOptionNotFound
	}
	g.options = append(g.options[:idx], g.options[idx+1:]...)
	return nil
}

// ChangeOptionName replaces the matching option value in place, keeping
// its position in the list.
func (g *OptionGroup) ChangeOptionName(currentName string, currentPrice money.Money, newName string) error {
	idx := g.indexOf(currentName, currentPrice)
	if idx < 0 {
		return ErrOptionNotFound
	}
	renamed, err := g.options[idx].WithName(newName)
	if err != nil {
		return err
	}
	g.options[idx] = renamed
	return nil
}

// HasPricedOption reports whether any option carries a non-zero price.
func (g *OptionGroup) HasPricedOption() bool {
	for _, option := range g.options {
		if option.Price().IsPositive() {
			return true
		}
	}
	return false
}

func (g *OptionGroup) indexOf(name string, price money.Money) int {
	for i, option := range g.options {
		if option.Name() == name && option.Price().Equal(price) {
			return i
		}
	}
	return -1
}
