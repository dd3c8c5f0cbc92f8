package http

import (
	"errors"

	cartsapp "github.com/hungryhub/food-order-api/internal/domains/carts/application"
	cartsports "github.com/hungryhub/food-order-api/internal/domains/carts/ports"
	menusapp "github.com/hungryhub/food-order-api/internal/domains/menus/application"
	menusports "github.com/hungryhub/food-order-api/internal/domains/menus/ports"
	ordersports "github.com/hungryhub/food-order-api/internal/domains/orders/ports"
	apierrors "github.com/hungryhub/food-order-api/internal/shared/errors"
)

// newResponder builds the shared problem responder with the mappers
// for every bounded context served by this router.
func newResponder() *apierrors.Responder {
	return apierrors.NewResponder("", mapDomainError)
}

func mapDomainError(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, cartsports.ErrNotFound),
		errors.Is(err, menusports.ErrNotFound),
		errors.Is(err, ordersports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true

	case errors.Is(err, cartsports.ErrVersionConflict):
		return apierrors.NewConflictProblem("version_conflict", err.Error()), true

	case errors.Is(err, menusapp.ErrNotEligible):
		return apierrors.NewUnprocessableProblem("menu_not_eligible", err.Error()), true

	case errors.Is(err, cartsapp.ErrValidation):
		return apierrors.NewUnprocessableProblem("validation_failed", err.Error()), true

	case errors.Is(err, cartsapp.ErrInvalidInput),
		errors.Is(err, menusapp.ErrInvalidInput):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}
