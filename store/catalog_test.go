package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListShops(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id1, err := s.CreateShop(ctx, "Bakery", "bread and cakes")
	require.NoError(t, err)
	id2, err := s.CreateShop(ctx, "Armory", "")
	require.NoError(t, err)
	assert.Equal(t, id1+1, id2)

	shops, err := s.ListShops(ctx)
	require.NoError(t, err)
	require.Len(t, shops, 2)
	assert.Equal(t, "Bakery", shops[0].Name)
	assert.Equal(t, "bread and cakes", shops[0].Description)
	assert.Equal(t, "Armory", shops[1].Name)
}

func TestAddItemValidation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	shopID, err := s.CreateShop(ctx, "Bakery", "")
	require.NoError(t, err)

	_, err = s.AddItem(ctx, shopID, "bread", 0, "", -1)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = s.AddItem(ctx, shopID+99, "bread", 10, "", -1)
	assert.ErrorIs(t, err, ErrShopNotFound)

	_, err = s.AddItem(ctx, shopID, "bread", 10, "", -1)
	require.NoError(t, err)

	// duplicate name in the same shop is rejected, even for inactive rows
	_, err = s.AddItem(ctx, shopID, "bread", 20, "", -1)
	assert.ErrorIs(t, err, ErrDuplicateItemName)

	// same name in another shop is fine
	otherID, err := s.CreateShop(ctx, "Deli", "")
	require.NoError(t, err)
	_, err = s.AddItem(ctx, otherID, "bread", 15, "", -1)
	assert.NoError(t, err)
}

func TestItemLookupConsistency(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	shopID, err := s.CreateShop(ctx, "Bakery", "")
	require.NoError(t, err)
	itemID, err := s.AddItem(ctx, shopID, "bread", 12, "fresh loaf", 7)
	require.NoError(t, err)

	byName, err := s.FindItemByName(ctx, "bread")
	require.NoError(t, err)
	byID, err := s.GetItem(ctx, itemID)
	require.NoError(t, err)

	assert.Equal(t, byName, byID)
	assert.Equal(t, int64(12), byID.Price)
	assert.Equal(t, "fresh loaf", byID.Description)
	assert.Equal(t, int64(7), byID.Stock)
	assert.True(t, byID.Active)
}

func TestFindItemByNamePrefersActiveLowestID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	shop1, err := s.CreateShop(ctx, "Bakery", "")
	require.NoError(t, err)
	shop2, err := s.CreateShop(ctx, "Deli", "")
	require.NoError(t, err)

	first, err := s.AddItem(ctx, shop1, "bread", 10, "", -1)
	require.NoError(t, err)
	second, err := s.AddItem(ctx, shop2, "bread", 20, "", -1)
	require.NoError(t, err)

	// both active: lowest id wins
	it, err := s.FindItemByName(ctx, "bread")
	require.NoError(t, err)
	assert.Equal(t, first, it.ID)

	// deactivating the first makes the active row win despite its higher id
	require.NoError(t, s.DeactivateItem(ctx, first))
	it, err = s.FindItemByName(ctx, "bread")
	require.NoError(t, err)
	assert.Equal(t, second, it.ID)

	_, err = s.FindItemByName(ctx, "cake")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestDeactivateReactivateItem(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	shopID, itemID := newTestShop(t, s, "bread", 10, 5)

	require.NoError(t, s.DeactivateItem(ctx, itemID))

	items, err := s.ListActiveItems(ctx, shopID)
	require.NoError(t, err)
	assert.Empty(t, items)

	all, err := s.ListAllItems(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].Active)

	// reactivate without a stock argument: stock untouched
	require.NoError(t, s.ReactivateItem(ctx, itemID, nil))
	it, err := s.GetItem(ctx, itemID)
	require.NoError(t, err)
	assert.True(t, it.Active)
	assert.Equal(t, int64(5), it.Stock)

	// reactivating an already-active item is idempotent
	require.NoError(t, s.ReactivateItem(ctx, itemID, nil))
	it, err = s.GetItem(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), it.Stock)

	// with a stock argument the stock is replaced
	restock := int64(20)
	require.NoError(t, s.ReactivateItem(ctx, itemID, &restock))
	it, err = s.GetItem(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, int64(20), it.Stock)

	assert.ErrorIs(t, s.DeactivateItem(ctx, itemID+99), ErrItemNotFound)
	assert.ErrorIs(t, s.ReactivateItem(ctx, itemID+99, nil), ErrItemNotFound)
}

func TestDecrementStock(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	shopID, itemID := newTestShop(t, s, "bread", 10, 5)

	require.NoError(t, s.DecrementStock(ctx, shopID, itemID, 3))
	it, err := s.GetItem(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), it.Stock)

	err = s.DecrementStock(ctx, shopID, itemID, 3)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	it, _ = s.GetItem(ctx, itemID)
	assert.Equal(t, int64(2), it.Stock)
}

func TestDecrementStockUnlimited(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	shopID, itemID := newTestShop(t, s, "water", 1, -1)

	require.NoError(t, s.DecrementStock(ctx, shopID, itemID, 1000))
	it, err := s.GetItem(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), it.Stock)
}

func TestDeleteShopCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	shop1, item1 := newTestShop(t, s, "bread", 10, -1)
	shop2, err := s.CreateShop(ctx, "Deli", "")
	require.NoError(t, err)
	item2, err := s.AddItem(ctx, shop2, "ham", 10, "", -1)
	require.NoError(t, err)

	require.NoError(t, s.AddUserItem(ctx, "42", shop1, item1, 2))
	require.NoError(t, s.AddUserItem(ctx, "42", shop2, item2, 3))

	require.NoError(t, s.DeleteShop(ctx, shop1))

	_, err = s.ListActiveItems(ctx, shop1)
	assert.ErrorIs(t, err, ErrShopNotFound)

	// the other shop's inventory survives, with no dangling rows
	inv, err := s.GetInventory(ctx, "42")
	require.NoError(t, err)
	require.Len(t, inv, 1)
	assert.Equal(t, "ham", inv[0].ItemName)
	assert.Equal(t, int64(3), inv[0].Quantity)

	assert.ErrorIs(t, s.DeleteShop(ctx, shop1), ErrShopNotFound)
}
