package application

import (
	"context"

	"github.com/hungryhub/food-order-api/internal/domains/orders/domain"
	"github.com/hungryhub/food-order-api/internal/domains/orders/ports"
	"github.com/hungryhub/food-order-api/internal/shared/id"
)

// Service exposes read use cases over placed orders. Orders are only
// created through the cart placement flow, never directly.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// GetOrder loads a single order aggregate.
func (s *Service) GetOrder(ctx context.Context, orderID id.OrderID) (*domain.Order, error) {
	return s.repo.GetByID(ctx, orderID)
}

// ListByUser returns the user's placed orders.
func (s *Service) ListByUser(ctx context.Context, userID id.UserID) ([]*domain.Order, error) {
	return s.repo.ListByUserID(ctx, userID)
}
