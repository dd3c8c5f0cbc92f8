package application

import (
	"errors"
	"fmt"

	"github.com/hungryhub/food-order-api/internal/domains/carts/domain"
	"github.com/hungryhub/food-order-api/internal/domains/carts/ports"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid cart input")
	// ErrValidation signals an external validation collaborator rejected
	// the request before the aggregate was touched.
	ErrValidation = errors.New("cart command validation failed")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrMissingUser) ||
		errors.Is(err, domain.ErrMissingMenu) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrEmptyCart) ||
		errors.Is(err, domain.ErrNoShopSelected) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if errors.Is(err, ports.ErrShopClosed) ||
		errors.Is(err, ports.ErrMenuNotFound) ||
		errors.Is(err, ports.ErrOptionNotFound) ||
		errors.Is(err, ports.ErrUserNotFound) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return err
}
