package store

import (
	"context"
	"database/sql"
	"math"
)

// Receipt summarizes a completed purchase or sale.
type Receipt struct {
	Item     Item
	Quantity int64
	// Total is the wallet delta: price*qty on a purchase, the 80% resale
	// proceeds on a sale.
	Total int64
}

// Purchase buys qty units of the named item from a shop: the wallet is
// debited by price*qty, the item lands in the user's inventory and tracked
// stock is decremented, all in one transaction. Any failed step aborts the
// whole purchase.
func (s *Store) Purchase(ctx context.Context, userID string, shopID int64, itemName string, qty int64) (Receipt, error) {
	if qty <= 0 {
		return Receipt{}, ErrInvalidAmount
	}
	var receipt Receipt
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		item, err := shopItemByName(tx, shopID, itemName)
		if err != nil {
			return err
		}
		if !item.Active {
			return ErrItemInactive
		}
		// price is at least 1, so an overflowing qty can never pass the
		// wallet check
		if qty > math.MaxInt64/item.Price {
			return ErrInvalidAmount
		}
		total := item.Price * qty
		if err := debitWallet(tx, userID, total); err != nil {
			return err
		}
		if err := addUserItem(tx, userID, shopID, item.ID, qty); err != nil {
			return err
		}
		if err := decrementStock(tx, shopID, item.ID, qty); err != nil {
			return err
		}
		receipt = Receipt{Item: item, Quantity: qty, Total: total}
		return nil
	})
	if err != nil {
		return Receipt{}, err
	}
	return receipt, nil
}

// Sell sells qty units of the named item back to its shop. The inventory is
// decremented and the wallet credited with floor(price*0.8) per unit, in one
// transaction. Inactive items stay sellable.
func (s *Store) Sell(ctx context.Context, userID string, shopID int64, itemName string, qty int64) (Receipt, error) {
	if qty <= 0 {
		return Receipt{}, ErrInvalidAmount
	}
	var receipt Receipt
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		item, err := shopItemByName(tx, shopID, itemName)
		if err != nil {
			return err
		}
		if item.Price > math.MaxInt64/8 {
			return ErrInvalidAmount
		}
		unit := item.Price * 8 / 10
		if unit > 0 && qty > math.MaxInt64/unit {
			return ErrInvalidAmount
		}
		if err := removeUserItem(tx, userID, shopID, item.ID, qty); err != nil {
			return err
		}
		proceeds := unit * qty
		if err := creditWallet(tx, userID, proceeds); err != nil {
			return err
		}
		receipt = Receipt{Item: item, Quantity: qty, Total: proceeds}
		return nil
	})
	if err != nil {
		return Receipt{}, err
	}
	return receipt, nil
}

// shopItemByName resolves an item name within one shop. Names are unique per
// shop, so at most one row matches.
func shopItemByName(tx *sql.Tx, shopID int64, name string) (Item, error) {
	row := tx.QueryRow(`
		SELECT item_id, shop_id, name, price, description, stock, active
		FROM items
		WHERE shop_id = $1 AND name = $2
	`, shopID, name)
	return scanItem(row)
}
