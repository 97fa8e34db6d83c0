package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// newTestShop seeds a shop with one item and returns both ids.
func newTestShop(t *testing.T, s *Store, itemName string, price, stock int64) (shopID, itemID int64) {
	t.Helper()
	ctx := context.Background()
	shopID, err := s.CreateShop(ctx, "General Store", "a bit of everything")
	require.NoError(t, err)
	itemID, err = s.AddItem(ctx, shopID, itemName, price, "", stock)
	require.NoError(t, err)
	return shopID, itemID
}
