package store

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseInsufficientFunds(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	shopID, itemID := newTestShop(t, s, "bread", 30, -1)

	require.NoError(t, s.SetBalance(ctx, "42", 100))

	// 4 units at 30 cost 120
	_, err := s.Purchase(ctx, "42", shopID, "bread", 4)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// fully rejected: no money moved, nothing in the inventory
	balance, _ := s.GetBalance(ctx, "42")
	assert.Equal(t, int64(100), balance)
	inv, _ := s.GetInventory(ctx, "42")
	assert.Empty(t, inv)

	it, _ := s.GetItem(ctx, itemID)
	assert.Equal(t, int64(-1), it.Stock)
}

func TestPurchaseDebitsWalletAndStock(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	shopID, itemID := newTestShop(t, s, "bread", 40, 5)

	require.NoError(t, s.SetBalance(ctx, "42", 100))

	receipt, err := s.Purchase(ctx, "42", shopID, "bread", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(80), receipt.Total)
	assert.Equal(t, int64(2), receipt.Quantity)

	balance, _ := s.GetBalance(ctx, "42")
	assert.Equal(t, int64(20), balance)

	it, _ := s.GetItem(ctx, itemID)
	assert.Equal(t, int64(3), it.Stock)

	inv, err := s.GetInventory(ctx, "42")
	require.NoError(t, err)
	require.Len(t, inv, 1)
	assert.Equal(t, int64(2), inv[0].Quantity)
}

func TestPurchaseInsufficientStockRollsBack(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	shopID, itemID := newTestShop(t, s, "bread", 10, 1)

	require.NoError(t, s.SetBalance(ctx, "42", 1000))

	_, err := s.Purchase(ctx, "42", shopID, "bread", 2)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// the wallet debit inside the transaction was rolled back
	balance, _ := s.GetBalance(ctx, "42")
	assert.Equal(t, int64(1000), balance)
	inv, _ := s.GetInventory(ctx, "42")
	assert.Empty(t, inv)
	it, _ := s.GetItem(ctx, itemID)
	assert.Equal(t, int64(1), it.Stock)
}

func TestPurchaseInactiveItem(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	shopID, itemID := newTestShop(t, s, "bread", 10, -1)

	require.NoError(t, s.SetBalance(ctx, "42", 100))
	require.NoError(t, s.DeactivateItem(ctx, itemID))

	_, err := s.Purchase(ctx, "42", shopID, "bread", 1)
	assert.ErrorIs(t, err, ErrItemInactive)

	_, err = s.Purchase(ctx, "42", shopID, "cake", 1)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestSellCreditsEightyPercent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	shopID, itemID := newTestShop(t, s, "bread", 50, -1)

	require.NoError(t, s.AddUserItem(ctx, "42", shopID, itemID, 1))

	receipt, err := s.Sell(ctx, "42", shopID, "bread", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(40), receipt.Total)

	balance, _ := s.GetBalance(ctx, "42")
	assert.Equal(t, int64(40), balance)

	// quantity hit zero, so the row is gone
	inv, err := s.GetInventory(ctx, "42")
	require.NoError(t, err)
	assert.Empty(t, inv)
}

func TestSellRoundsUnitPriceDown(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	shopID, itemID := newTestShop(t, s, "trinket", 7, -1)

	require.NoError(t, s.AddUserItem(ctx, "42", shopID, itemID, 3))

	// floor(7*0.8)=5 per unit, not floor(7*0.8*3)=16
	receipt, err := s.Sell(ctx, "42", shopID, "trinket", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(15), receipt.Total)
}

func TestSellWithoutInventory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	shopID, itemID := newTestShop(t, s, "bread", 50, -1)

	_, err := s.Sell(ctx, "42", shopID, "bread", 1)
	assert.ErrorIs(t, err, ErrInsufficientInventory)

	require.NoError(t, s.AddUserItem(ctx, "42", shopID, itemID, 1))
	_, err = s.Sell(ctx, "42", shopID, "bread", 2)
	assert.ErrorIs(t, err, ErrInsufficientInventory)

	// rejected sale paid nothing
	balance, _ := s.GetBalance(ctx, "42")
	assert.Zero(t, balance)
}

func TestSellInactiveItemStillWorks(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	shopID, itemID := newTestShop(t, s, "bread", 50, -1)

	require.NoError(t, s.AddUserItem(ctx, "42", shopID, itemID, 1))
	require.NoError(t, s.DeactivateItem(ctx, itemID))

	receipt, err := s.Sell(ctx, "42", shopID, "bread", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(40), receipt.Total)
}

func TestPurchaseQuantityOverflow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	shopID, _ := newTestShop(t, s, "bread", 3, -1)

	require.NoError(t, s.SetBalance(ctx, "42", 10))

	// price*qty wraps around; the order must be rejected, not debited at
	// the wrapped total
	_, err := s.Purchase(ctx, "42", shopID, "bread", math.MaxInt64/3+1)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	balance, _ := s.GetBalance(ctx, "42")
	assert.Equal(t, int64(10), balance)
	inv, _ := s.GetInventory(ctx, "42")
	assert.Empty(t, inv)
}

func TestSellQuantityOverflow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	shopID, itemID := newTestShop(t, s, "bread", 3, -1)

	require.NoError(t, s.AddUserItem(ctx, "42", shopID, itemID, math.MaxInt64))

	// unit proceeds are 2; a quantity past MaxInt64/2 would wrap
	_, err := s.Sell(ctx, "42", shopID, "bread", math.MaxInt64)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	balance, _ := s.GetBalance(ctx, "42")
	assert.Zero(t, balance)
	inv, _ := s.GetInventory(ctx, "42")
	require.Len(t, inv, 1)
	assert.Equal(t, int64(math.MaxInt64), inv[0].Quantity)
}
