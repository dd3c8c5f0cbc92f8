package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/hungryhub/food-order-api/internal/shared/events"
	"github.com/hungryhub/food-order-api/internal/shared/id"
	"github.com/hungryhub/food-order-api/internal/shared/money"
)

// maxRequiredGroups bounds how many option groups may be marked required
// before a menu can open.
const maxRequiredGroups = 3

var (
	ErrEmptyMenuName         = errors.New("menu name is required")
	ErrMissingShop           = errors.New("menu must belong to a shop")
	ErrDuplicateGroupName    = errors.New("option group with the same name already exists")
	ErrGroupNotFound         = errors.New("option group not found")
	ErrMenuAlreadyOpen       = errors.New("menu is already open")
	ErrNoOptionGroups        = errors.New("menu needs at least one option group to open")
	ErrTooManyRequiredGroups = errors.New("menu cannot open with more than three required option groups")
	ErrNoPricedOption        = errors.New("menu needs at least one priced option to open")
)

// Menu is the aggregate root owning option groups. It is created closed
// and transitions to open exactly once, when the eligibility rules hold.
// Option-group mutations remain legal after opening.
type Menu struct {
	events.Recorder

	id          id.MenuID
	shopID      id.ShopID
	name        string
	description string
	basePrice   money.Money
	open        bool
	groups      []*OptionGroup
}

// NewMenu builds a closed menu for a shop.
func NewMenu(shopID id.ShopID, name, description string, basePrice money.Money) (*Menu, error) {
	if shopID.IsZero() {
		return nil, ErrMissingShop
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyMenuName
	}
	return &Menu{
		id:          id.NewMenuID(),
		shopID:      shopID,
		name:        trimmed,
		description: description,
		basePrice:   basePrice,
	}, nil
}

// RestoreMenu rebuilds a menu aggregate from persisted state.
func RestoreMenu(menuID id.MenuID, shopID id.ShopID, name, description string, basePrice money.Money, open bool, groups []*OptionGroup) *Menu {
	m := &Menu{
		id:          menuID,
		shopID:      shopID,
		name:        name,
		description: description,
		basePrice:   basePrice,
		open:        open,
	}
	m.groups = append(m.groups, groups...)
	return m
}

func (m *Menu) ID() id.MenuID           { return m.id }
func (m *Menu) ShopID() id.ShopID       { return m.shopID }
func (m *Menu) Name() string            { return m.name }
func (m *Menu) Description() string     { return m.description }
func (m *Menu) BasePrice() money.Money  { return m.basePrice }
func (m *Menu) IsOpen() bool            { return m.open }

// OptionGroups returns the owned groups in insertion order.
func (m *Menu) OptionGroups() []*OptionGroup {
	out := make([]*OptionGroup, len(m.groups))
	copy(out, m.groups)
	return out
}

// AddOptionGroup appends a new group, rejecting a duplicate trimmed name.
func (m *Menu) AddOptionGroup(name string, required bool) (*OptionGroup, error) {
	trimmed := strings.TrimSpace(name)
	for _, g := range m.groups {
		if g.Name() == trimmed {
			return nil, ErrDuplicateGroupName
		}
	}
	group, err := NewOptionGroup(trimmed, required)
	if err != nil {
		return nil, err
	}
	m.groups = append(m.groups, group)
	return group, nil
}

// OptionGroupByID locates an owned group.
func (m *Menu) OptionGroupByID(groupID id.OptionGroupID) (*OptionGroup, error) {
	for _, g := range m.groups {
		if g.ID() == groupID {
			return g, nil
		}
	}
	return nil, ErrGroupNotFound
}

// Open transitions the menu to open when all eligibility rules hold:
// at least one option group, no more than three required groups, and at
// least one option with a non-zero price. A second call fails rather
// than being accepted silently.
func (m *Menu) Open(now time.Time) error {
	if m.open {
		return ErrMenuAlreadyOpen
	}
	if len(m.groups) == 0 {
		return ErrNoOptionGroups
	}
	required := 0
	for _, g := range m.groups {
		if g.Required() {
			required++
		}
	}
	if required > maxRequiredGroups {
		return ErrTooManyRequiredGroups
	}
	if !m.hasPricedOption() {
		return ErrNoPricedOption
	}
	m.open = true
	m.Record(MenuOpened{
		Base:        events.Base{Timestamp: now},
		MenuID:      m.id,
		ShopID:      m.shopID,
		MenuName:    m.name,
		Description: m.description,
	})
	return nil
}

func (m *Menu) hasPricedOption() bool {
	for _, g := range m.groups {
		if g.HasPricedOption() {
			return true
		}
	}
	return false
}
