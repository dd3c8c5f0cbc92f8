package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hungryhub/food-order-api/internal/domains/menus/domain"
	"github.com/hungryhub/food-order-api/internal/domains/menus/ports"
	"github.com/hungryhub/food-order-api/internal/shared/id"
)

type fakeMenuRepo struct {
	menus map[id.MenuID]*domain.Menu
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{menus: map[id.MenuID]*domain.Menu{}}
}

func (f *fakeMenuRepo) Save(_ context.Context, menu *domain.Menu) (*domain.Menu, error) {
	f.menus[menu.ID()] = menu
	return menu, nil
}

func (f *fakeMenuRepo) GetByID(_ context.Context, menuID id.MenuID) (*domain.Menu, error) {
	menu, ok := f.menus[menuID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return menu, nil
}

func (f *fakeMenuRepo) ExistsByID(_ context.Context, menuID id.MenuID) (bool, error) {
	_, ok := f.menus[menuID]
	return ok, nil
}

func (f *fakeMenuRepo) ListByShop(_ context.Context, shopID id.ShopID) ([]*domain.Menu, error) {
	var out []*domain.Menu
	for _, m := range f.menus {
		if m.ShopID() == shopID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMenuRepo) Delete(_ context.Context, menuID id.MenuID) error {
	if _, ok := f.menus[menuID]; !ok {
		return ports.ErrNotFound
	}
	delete(f.menus, menuID)
	return nil
}

func createMenu(t *testing.T, svc *Service) *domain.Menu {
	t.Helper()
	menu, err := svc.CreateMenu(context.Background(), ports.CreateMenuInput{
		ShopID:      id.NewShopID(),
		Name:        "Bulgogi Set",
		Description: "with rice",
		BasePrice:   "14.90",
	})
	require.NoError(t, err)
	return menu
}

func TestCreateMenu_PersistsClosedMenu(t *testing.T) {
	svc := NewService(newFakeMenuRepo())
	menu := createMenu(t, svc)

	assert.False(t, menu.IsOpen())
	assert.Equal(t, "Bulgogi Set", menu.Name())
}

func TestCreateMenu_InvalidPrice(t *testing.T) {
	svc := NewService(newFakeMenuRepo())
	_, err := svc.CreateMenu(context.Background(), ports.CreateMenuInput{
		ShopID:    id.NewShopID(),
		Name:      "Bulgogi Set",
		BasePrice: "cheap",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestOpenMenu_EligibleMenuOpensOnce(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := NewService(repo)
	menu := createMenu(t, svc)

	withGroup, err := svc.AddOptionGroup(context.Background(), menu.ID(), "Size", true)
	require.NoError(t, err)
	groupID := withGroup.OptionGroups()[0].ID()

	_, err = svc.AddOption(context.Background(), menu.ID(), groupID, ports.OptionInput{Name: "large", Price: "2.00"})
	require.NoError(t, err)

	opened, err := svc.OpenMenu(context.Background(), menu.ID())
	require.NoError(t, err)
	assert.True(t, opened.IsOpen())

	_, err = svc.OpenMenu(context.Background(), menu.ID())
	require.ErrorIs(t, err, ErrNotEligible)
	require.ErrorIs(t, err, domain.ErrMenuAlreadyOpen)
}

func TestOpenMenu_IneligibleWithoutGroups(t *testing.T) {
	svc := NewService(newFakeMenuRepo())
	menu := createMenu(t, svc)

	_, err := svc.OpenMenu(context.Background(), menu.ID())
	require.ErrorIs(t, err, ErrNotEligible)
	require.ErrorIs(t, err, domain.ErrNoOptionGroups)
}

func TestAddOption_DuplicateRejected(t *testing.T) {
	svc := NewService(newFakeMenuRepo())
	menu := createMenu(t, svc)

	withGroup, err := svc.AddOptionGroup(context.Background(), menu.ID(), "Spice", false)
	require.NoError(t, err)
	groupID := withGroup.OptionGroups()[0].ID()

	_, err = svc.AddOption(context.Background(), menu.ID(), groupID, ports.OptionInput{Name: "hot", Price: "0.50"})
	require.NoError(t, err)

	_, err = svc.AddOption(context.Background(), menu.ID(), groupID, ports.OptionInput{Name: "hot", Price: "0.50"})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrDuplicateOption)
}

func TestRenameOption_ReplacesValue(t *testing.T) {
	svc := NewService(newFakeMenuRepo())
	menu := createMenu(t, svc)

	withGroup, err := svc.AddOptionGroup(context.Background(), menu.ID(), "Spice", false)
	require.NoError(t, err)
	groupID := withGroup.OptionGroups()[0].ID()

	_, err = svc.AddOption(context.Background(), menu.ID(), groupID, ports.OptionInput{Name: "hot", Price: "0.50"})
	require.NoError(t, err)

	renamed, err := svc.RenameOption(context.Background(), menu.ID(), groupID, ports.OptionInput{Name: "hot", Price: "0.50"}, "extra hot")
	require.NoError(t, err)

	group, err := renamed.OptionGroupByID(groupID)
	require.NoError(t, err)
	require.Len(t, group.Options(), 1)
	assert.Equal(t, "extra hot", group.Options()[0].Name())
}

func TestRemoveOption_NotFound(t *testing.T) {
	svc := NewService(newFakeMenuRepo())
	menu := createMenu(t, svc)

	withGroup, err := svc.AddOptionGroup(context.Background(), menu.ID(), "Spice", false)
	require.NoError(t, err)
	groupID := withGroup.OptionGroups()[0].ID()

	_, err = svc.RemoveOption(context.Background(), menu.ID(), groupID, ports.OptionInput{Name: "missing", Price: "1.00"})
	require.ErrorIs(t, err, domain.ErrOptionNotFound)
}

func TestGetMenu_NotFound(t *testing.T) {
	svc := NewService(newFakeMenuRepo())
	_, err := svc.GetMenu(context.Background(), id.NewMenuID())
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestOpenMenu_DrainsEventsAfterSave(t *testing.T) {
	svc := NewService(newFakeMenuRepo())
	menu := createMenu(t, svc)

	withGroup, err := svc.AddOptionGroup(context.Background(), menu.ID(), "Size", true)
	require.NoError(t, err)
	groupID := withGroup.OptionGroups()[0].ID()
	_, err = svc.AddOption(context.Background(), menu.ID(), groupID, ports.OptionInput{Name: "large", Price: "2.00"})
	require.NoError(t, err)

	opened, err := svc.OpenMenu(context.Background(), menu.ID())
	require.NoError(t, err)
	assert.Empty(t, opened.Events())
}
