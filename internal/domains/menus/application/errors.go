package application

import (
	"errors"
	"fmt"

	"github.com/hungryhub/food-order-api/internal/domains/menus/domain"
	"github.com/hungryhub/food-order-api/internal/shared/money"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid menu input")
	// ErrNotEligible signals the menu failed a publication rule.
	ErrNotEligible = errors.New("menu is not eligible to open")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyMenuName) ||
		errors.Is(err, domain.ErrMissingShop) ||
		errors.Is(err, domain.ErrEmptyGroupName) ||
		errors.Is(err, domain.ErrEmptyOptionName) ||
		errors.Is(err, domain.ErrDuplicateGroupName) ||
		errors.Is(err, domain.ErrDuplicateOption) ||
		errors.Is(err, money.ErrInvalidAmount) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if errors.Is(err, domain.ErrNoOptionGroups) ||
		errors.Is(err, domain.ErrTooManyRequiredGroups) ||
		errors.Is(err, domain.ErrNoPricedOption) ||
		errors.Is(err, domain.ErrMenuAlreadyOpen) {
		return fmt.Errorf("%w: %w", ErrNotEligible, err)
	}
	return err
}
