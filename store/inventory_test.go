package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddUserItemUpserts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	shopID, itemID := newTestShop(t, s, "bread", 10, -1)

	require.NoError(t, s.AddUserItem(ctx, "42", shopID, itemID, 1))
	require.NoError(t, s.AddUserItem(ctx, "42", shopID, itemID, 4))

	inv, err := s.GetInventory(ctx, "42")
	require.NoError(t, err)
	require.Len(t, inv, 1)
	assert.Equal(t, int64(5), inv[0].Quantity)
	assert.Equal(t, "bread", inv[0].ItemName)
	assert.Equal(t, "General Store", inv[0].ShopName)
}

func TestRemoveUserItem(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	shopID, itemID := newTestShop(t, s, "bread", 10, -1)

	require.NoError(t, s.AddUserItem(ctx, "42", shopID, itemID, 5))
	require.NoError(t, s.RemoveUserItem(ctx, "42", shopID, itemID, 2))

	inv, err := s.GetInventory(ctx, "42")
	require.NoError(t, err)
	require.Len(t, inv, 1)
	assert.Equal(t, int64(3), inv[0].Quantity)

	// removing more than held fails without effect
	err = s.RemoveUserItem(ctx, "42", shopID, itemID, 4)
	assert.ErrorIs(t, err, ErrInsufficientInventory)
	inv, _ = s.GetInventory(ctx, "42")
	assert.Equal(t, int64(3), inv[0].Quantity)

	// removing the exact quantity deletes the row
	require.NoError(t, s.RemoveUserItem(ctx, "42", shopID, itemID, 3))
	inv, err = s.GetInventory(ctx, "42")
	require.NoError(t, err)
	assert.Empty(t, inv)

	err = s.RemoveUserItem(ctx, "42", shopID, itemID, 1)
	assert.ErrorIs(t, err, ErrInsufficientInventory)
}

func TestInventoryInvalidQuantity(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	shopID, itemID := newTestShop(t, s, "bread", 10, -1)

	assert.ErrorIs(t, s.AddUserItem(ctx, "42", shopID, itemID, 0), ErrInvalidAmount)
	assert.ErrorIs(t, s.RemoveUserItem(ctx, "42", shopID, itemID, -1), ErrInvalidAmount)
}
