package providers

import (
	"context"

	"github.com/hungryhub/food-order-api/internal/domains/carts/ports"
	"github.com/hungryhub/food-order-api/internal/shared/id"
)

// UserDirectory validates user identifiers. With an empty allowlist
// every non-blank identifier is accepted, which is the deployment mode
// when an upstream gateway has already authenticated the user.
type UserDirectory struct {
	allowed map[id.UserID]struct{}
}

// NewUserDirectory builds a directory; pass known user ids to restrict
// validation to an allowlist.
func NewUserDirectory(users ...id.UserID) *UserDirectory {
	if len(users) == 0 {
		return &UserDirectory{}
	}
	allowed := make(map[id.UserID]struct{}, len(users))
	for _, userID := range users {
		allowed[userID] = struct{}{}
	}
	return &UserDirectory{allowed: allowed}
}

// IsValidUser reports whether the user may own a cart.
func (d *UserDirectory) IsValidUser(_ context.Context, userID id.UserID) (bool, error) {
	if userID.IsZero() {
		return false, nil
	}
	if d.allowed == nil {
		return true, nil
	}
	_, ok := d.allowed[userID]
	return ok, nil
}

var _ ports.UserProvider = (*UserDirectory)(nil)
