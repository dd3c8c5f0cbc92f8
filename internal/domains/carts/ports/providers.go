package ports

import (
	"context"
	"errors"

	"github.com/hungryhub/food-order-api/internal/shared/id"
	"github.com/hungryhub/food-order-api/internal/shared/money"
)

var (
	ErrShopClosed     = errors.New("shop is not open")
	ErrMenuNotFound   = errors.New("menu not found in shop catalog")
	ErrOptionNotFound = errors.New("selected option not found")
	ErrUserNotFound   = errors.New("user does not exist")
)

// MenuInfo is the read-only menu view supplied by the shop context.
type MenuInfo struct {
	MenuID    id.MenuID
	ShopID    id.ShopID
	Name      string
	BasePrice money.Money
	Open      bool
}

// OptionInfo is the read-only option view supplied by the shop context.
type OptionInfo struct {
	OptionID id.OptionID
	Name     string
	Price    money.Money
}

// ShopProvider answers whether a shop currently accepts orders.
type ShopProvider interface {
	IsShopOpen(ctx context.Context, shopID id.ShopID) (bool, error)
}

// MenuProvider resolves menu and option details for validation and for
// snapshotting at order placement.
type MenuProvider interface {
	GetMenuInfo(ctx context.Context, menuID id.MenuID) (MenuInfo, error)
	GetOptionInfos(ctx context.Context, menuID id.MenuID, optionIDs []id.OptionID) ([]OptionInfo, error)
}

// UserProvider answers whether a user id is valid. Lookups may fail
// transiently and are retried by the caller with a bounded attempt count.
type UserProvider interface {
	IsValidUser(ctx context.Context, userID id.UserID) (bool, error)
}
