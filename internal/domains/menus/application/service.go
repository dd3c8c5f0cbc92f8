package application

import (
	"context"
	"time"

	"github.com/hungryhub/food-order-api/internal/domains/menus/domain"
	"github.com/hungryhub/food-order-api/internal/domains/menus/ports"
	"github.com/hungryhub/food-order-api/internal/shared/id"
	"github.com/hungryhub/food-order-api/internal/shared/money"
)

// Service orchestrates the menus bounded context use cases. Each call
// loads one aggregate, performs one mutation, and saves the result.
type Service struct {
	repo ports.Repository
	now  func() time.Time
}

// NewService wires the menus service with its dependencies.
func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// CreateMenu builds a new closed menu for a shop and persists it.
func (s *Service) CreateMenu(ctx context.Context, input ports.CreateMenuInput) (*domain.Menu, error) {
	basePrice, err := money.Parse(input.BasePrice)
	if err != nil {
		return nil, mapError(err)
	}
	menu, err := domain.NewMenu(input.ShopID, input.Name, input.Description, basePrice)
	if err != nil {
		return nil, mapError(err)
	}
	return s.save(ctx, menu)
}

// AddOptionGroup appends an option group to an existing menu.
func (s *Service) AddOptionGroup(ctx context.Context, menuID id.MenuID, name string, required bool) (*domain.Menu, error) {
	menu, err := s.repo.GetByID(ctx, menuID)
	if err != nil {
		return nil, err
	}
	if _, err := menu.AddOptionGroup(name, required); err != nil {
		return nil, mapError(err)
	}
	return s.save(ctx, menu)
}

// AddOption appends an option to one of the menu's groups.
func (s *Service) AddOption(ctx context.Context, menuID id.MenuID, groupID id.OptionGroupID, input ports.OptionInput) (*domain.Menu, error) {
	menu, group, err := s.loadGroup(ctx, menuID, groupID)
	if err != nil {
		return nil, err
	}
	price, err := money.Parse(input.Price)
	if err != nil {
		return nil, mapError(err)
	}
	option, err := domain.NewOption(input.Name, price)
	if err != nil {
		return nil, mapError(err)
	}
	if err := group.AddOption(option); err != nil {
		return nil, mapError(err)
	}
	return s.save(ctx, menu)
}

// RemoveOption drops the option matching the exact (name, price) pair.
func (s *Service) RemoveOption(ctx context.Context, menuID id.MenuID, groupID id.OptionGroupID, input ports.OptionInput) (*domain.Menu, error) {
	menu, group, err := s.loadGroup(ctx, menuID, groupID)
	if err != nil {
		return nil, err
	}
	price, err := money.Parse(input.Price)
	if err != nil {
		return nil, mapError(err)
	}
	if err := group.RemoveOption(input.Name, price); err != nil {
		return nil, mapError(err)
	}
	return s.save(ctx, menu)
}

// RenameOption replaces the matching option value under a new name.
func (s *Service) RenameOption(ctx context.Context, menuID id.MenuID, groupID id.OptionGroupID, input ports.OptionInput, newName string) (*domain.Menu, error) {
	menu, group, err := s.loadGroup(ctx, menuID, groupID)
	if err != nil {
		return nil, err
	}
	price, err := money.Parse(input.Price)
	if err != nil {
		return nil, mapError(err)
	}
	if err := group.ChangeOptionName(input.Name, price, newName); err != nil {
		return nil, mapError(err)
	}
	return s.save(ctx, menu)
}

// OpenMenu runs the publication-eligibility check and opens the menu.
func (s *Service) OpenMenu(ctx context.Context, menuID id.MenuID) (*domain.Menu, error) {
	menu, err := s.repo.GetByID(ctx, menuID)
	if err != nil {
		return nil, err
	}
	if err := menu.Open(s.now()); err != nil {
		return nil, mapError(err)
	}
	return s.save(ctx, menu)
}

// GetMenu loads a single menu aggregate.
func (s *Service) GetMenu(ctx context.Context, menuID id.MenuID) (*domain.Menu, error) {
	return s.repo.GetByID(ctx, menuID)
}

func (s *Service) loadGroup(ctx context.Context, menuID id.MenuID, groupID id.OptionGroupID) (*domain.Menu, *domain.OptionGroup, error) {
	menu, err := s.repo.GetByID(ctx, menuID)
	if err != nil {
		return nil, nil, err
	}
	group, err := menu.OptionGroupByID(groupID)
	if err != nil {
		return nil, nil, mapError(err)
	}
	return menu, group, nil
}

func (s *Service) save(ctx context.Context, menu *domain.Menu) (*domain.Menu, error) {
	saved, err := s.repo.Save(ctx, menu)
	if err != nil {
		return nil, err
	}
	menu.ClearEvents()
	return saved, nil
}

var _ ports.Service = (*Service)(nil)
