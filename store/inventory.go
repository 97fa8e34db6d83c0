package store

import (
	"context"
	"database/sql"
	"fmt"
)

// InventoryEntry is one line of a user's inventory, joined with the catalog
// for display.
type InventoryEntry struct {
	ShopID   int64
	ShopName string
	ItemID   int64
	ItemName string
	Quantity int64
}

// AddUserItem upserts an inventory row, incrementing the quantity when the
// (user, shop, item) row already exists.
func (s *Store) AddUserItem(ctx context.Context, userID string, shopID, itemID, qty int64) error {
	if qty <= 0 {
		return ErrInvalidAmount
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		return addUserItem(tx, userID, shopID, itemID, qty)
	})
}

// RemoveUserItem decrements an inventory row, deleting it when the quantity
// reaches zero. It fails without effect when the user holds less than qty.
func (s *Store) RemoveUserItem(ctx context.Context, userID string, shopID, itemID, qty int64) error {
	if qty <= 0 {
		return ErrInvalidAmount
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		return removeUserItem(tx, userID, shopID, itemID, qty)
	})
}

// GetInventory returns the user's full inventory joined with item and shop
// names, ordered by shop then item.
func (s *Store) GetInventory(ctx context.Context, userID string) ([]InventoryEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT ui.shop_id, sh.name, ui.item_id, i.name, ui.quantity
		FROM user_items ui
		JOIN items i ON ui.item_id = i.item_id AND ui.shop_id = i.shop_id
		JOIN shops sh ON ui.shop_id = sh.shop_id
		WHERE ui.user_id = $1
		ORDER BY ui.shop_id, ui.item_id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	defer rows.Close()

	var entries []InventoryEntry
	for rows.Next() {
		var e InventoryEntry
		if err := rows.Scan(&e.ShopID, &e.ShopName, &e.ItemID, &e.ItemName, &e.Quantity); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func addUserItem(tx *sql.Tx, userID string, shopID, itemID, qty int64) error {
	_, err := tx.Exec(`
		INSERT INTO user_items (user_id, shop_id, item_id, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, shop_id, item_id)
		DO UPDATE SET quantity = user_items.quantity + EXCLUDED.quantity
	`, userID, shopID, itemID, qty)
	if err != nil {
		return fmt.Errorf("add user item: %w", err)
	}
	return nil
}

func removeUserItem(tx *sql.Tx, userID string, shopID, itemID, qty int64) error {
	var current int64
	err := tx.QueryRow(`
		SELECT quantity FROM user_items
		WHERE user_id = $1 AND shop_id = $2 AND item_id = $3
	`, userID, shopID, itemID).Scan(&current)
	if err == sql.ErrNoRows {
		return ErrInsufficientInventory
	}
	if err != nil {
		return fmt.Errorf("query user item: %w", err)
	}
	if current < qty {
		return ErrInsufficientInventory
	}
	if current == qty {
		_, err = tx.Exec(`
			DELETE FROM user_items
			WHERE user_id = $1 AND shop_id = $2 AND item_id = $3
		`, userID, shopID, itemID)
	} else {
		_, err = tx.Exec(`
			UPDATE user_items SET quantity = quantity - $1
			WHERE user_id = $2 AND shop_id = $3 AND item_id = $4
		`, qty, userID, shopID, itemID)
	}
	if err != nil {
		return fmt.Errorf("remove user item: %w", err)
	}
	return nil
}
