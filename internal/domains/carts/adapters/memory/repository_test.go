package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hungryhub/food-order-api/internal/domains/carts/domain"
	"github.com/hungryhub/food-order-api/internal/domains/carts/ports"
	"github.com/hungryhub/food-order-api/internal/shared/id"
)

func TestSaveAndFindByUserID(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	cart, err := domain.NewCart(id.NewUserID())
	require.NoError(t, err)
	require.NoError(t, cart.AddItem(id.NewShopID(), id.NewMenuID(), nil, 2, time.Now()))

	saved, err := repo.Save(ctx, cart)
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.Version())

	found, err := repo.FindByUserID(ctx, cart.UserID())
	require.NoError(t, err)
	assert.Equal(t, cart.ID(), found.ID())
	assert.Len(t, found.LineItems(), 1)
}

func TestSave_VersionConflict(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	cart, err := domain.NewCart(id.NewUserID())
	require.NoError(t, err)
	first, err := repo.Save(ctx, cart)
	require.NoError(t, err)

	// two units of work load the same version
	a, err := repo.GetByID(ctx, first.ID())
	require.NoError(t, err)
	b, err := repo.GetByID(ctx, first.ID())
	require.NoError(t, err)

	require.NoError(t, a.AddItem(id.NewShopID(), id.NewMenuID(), nil, 1, time.Now()))
	_, err = repo.Save(ctx, a)
	require.NoError(t, err)

	require.NoError(t, b.AddItem(id.NewShopID(), id.NewMenuID(), nil, 1, time.Now()))
	_, err = repo.Save(ctx, b)
	require.ErrorIs(t, err, ports.ErrVersionConflict)
}

func TestSave_ReturnedCartDoesNotAliasStore(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	cart, err := domain.NewCart(id.NewUserID())
	require.NoError(t, err)
	saved, err := repo.Save(ctx, cart)
	require.NoError(t, err)

	require.NoError(t, saved.AddItem(id.NewShopID(), id.NewMenuID(), nil, 1, time.Now()))

	stored, err := repo.GetByID(ctx, cart.ID())
	require.NoError(t, err)
	assert.True(t, stored.IsEmpty())
}

func TestDelete(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	cart, err := domain.NewCart(id.NewUserID())
	require.NoError(t, err)
	_, err = repo.Save(ctx, cart)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, cart.ID()))
	_, err = repo.FindByUserID(ctx, cart.UserID())
	require.ErrorIs(t, err, ports.ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, cart.ID()), ports.ErrNotFound)
}
