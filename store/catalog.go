package store

import (
	"context"
	"database/sql"
	"fmt"
)

type Shop struct {
	ID          int64
	Name        string
	Description string
}

type Item struct {
	ID          int64
	ShopID      int64
	Name        string
	Price       int64
	Description string
	// Stock of -1 means unlimited supply.
	Stock  int64
	Active bool
}

// CreateShop creates a shop and returns its id.
func (s *Store) CreateShop(ctx context.Context, name, description string) (int64, error) {
	var id int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRow(`
			INSERT INTO shops (shop_id, name, description)
			VALUES ((SELECT COALESCE(MAX(shop_id), 0) + 1 FROM shops), $1, $2)
			RETURNING shop_id
		`, name, description).Scan(&id)
	})
	if err != nil {
		return 0, fmt.Errorf("create shop: %w", err)
	}
	return id, nil
}

// DeleteShop removes a shop together with its items and every inventory row
// that references it, so user inventories never hold dangling entries.
func (s *Store) DeleteShop(ctx context.Context, shopID int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.Exec("DELETE FROM shops WHERE shop_id = $1", shopID)
		if err != nil {
			return fmt.Errorf("delete shop: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrShopNotFound
		}
		if _, err := tx.Exec("DELETE FROM items WHERE shop_id = $1", shopID); err != nil {
			return fmt.Errorf("delete shop items: %w", err)
		}
		if _, err := tx.Exec("DELETE FROM user_items WHERE shop_id = $1", shopID); err != nil {
			return fmt.Errorf("delete shop inventories: %w", err)
		}
		return nil
	})
}

// ListShops returns all shops ordered by id.
func (s *Store) ListShops(ctx context.Context) ([]Shop, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT shop_id, name, description FROM shops ORDER BY shop_id")
	if err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	defer rows.Close()

	var shops []Shop
	for rows.Next() {
		var sh Shop
		if err := rows.Scan(&sh.ID, &sh.Name, &sh.Description); err != nil {
			return nil, err
		}
		shops = append(shops, sh)
	}
	return shops, rows.Err()
}

// AddItem adds an item to a shop. Item names are unique per shop, inactive
// rows included, so name lookups stay unambiguous.
func (s *Store) AddItem(ctx context.Context, shopID int64, name string, price int64, description string, stock int64) (int64, error) {
	if price <= 0 {
		return 0, ErrInvalidAmount
	}
	var id int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRow("SELECT 1 FROM shops WHERE shop_id = $1", shopID).Scan(&exists)
		if err == sql.ErrNoRows {
			return ErrShopNotFound
		}
		if err != nil {
			return fmt.Errorf("check shop: %w", err)
		}
		err = tx.QueryRow(
			"SELECT 1 FROM items WHERE shop_id = $1 AND name = $2", shopID, name).Scan(&exists)
		if err == nil {
			return ErrDuplicateItemName
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check item name: %w", err)
		}
		return tx.QueryRow(`
			INSERT INTO items (item_id, shop_id, name, price, description, stock, active)
			VALUES ((SELECT COALESCE(MAX(item_id), 0) + 1 FROM items), $1, $2, $3, $4, $5, 1)
			RETURNING item_id
		`, shopID, name, price, description, stock).Scan(&id)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// DeactivateItem soft-deletes an item. It disappears from browsing and
// purchase but stays addressable by id.
func (s *Store) DeactivateItem(ctx context.Context, itemID int64) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE items SET active = 0 WHERE item_id = $1", itemID)
	if err != nil {
		return fmt.Errorf("deactivate item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrItemNotFound
	}
	return nil
}

// ReactivateItem re-enables a soft-deleted item. A nil stock leaves the
// stored stock untouched.
func (s *Store) ReactivateItem(ctx context.Context, itemID int64, stock *int64) error {
	var (
		res sql.Result
		err error
	)
	if stock != nil {
		res, err = s.db.ExecContext(ctx,
			"UPDATE items SET active = 1, stock = $1 WHERE item_id = $2", *stock, itemID)
	} else {
		res, err = s.db.ExecContext(ctx,
			"UPDATE items SET active = 1 WHERE item_id = $1", itemID)
	}
	if err != nil {
		return fmt.Errorf("reactivate item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrItemNotFound
	}
	return nil
}

// ListActiveItems returns a shop's purchasable items ordered by id.
func (s *Store) ListActiveItems(ctx context.Context, shopID int64) ([]Item, error) {
	var exists int
	err := s.db.QueryRowContext(ctx,
		"SELECT 1 FROM shops WHERE shop_id = $1", shopID).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, ErrShopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("check shop: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT item_id, shop_id, name, price, description, stock, active
		FROM items
		WHERE shop_id = $1 AND active = 1
		ORDER BY item_id
	`, shopID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// ListAllItems returns every item, inactive rows included (admin view).
func (s *Store) ListAllItems(ctx context.Context) ([]Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT item_id, shop_id, name, price, description, stock, active
		FROM items
		ORDER BY item_id
	`)
	if err != nil {
		return nil, fmt.Errorf("list all items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// FindItemByName resolves a name to a single item: active rows win, then the
// lowest id.
func (s *Store) FindItemByName(ctx context.Context, name string) (Item, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT item_id, shop_id, name, price, description, stock, active
		FROM items
		WHERE name = $1
		ORDER BY active DESC, item_id ASC
		LIMIT 1
	`, name)
	return scanItem(row)
}

// GetItem fetches an item by id, inactive rows included.
func (s *Store) GetItem(ctx context.Context, itemID int64) (Item, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT item_id, shop_id, name, price, description, stock, active
		FROM items
		WHERE item_id = $1
	`, itemID)
	return scanItem(row)
}

// DecrementStock subtracts qty from a tracked stock. Unlimited (-1) stock is
// left untouched; a tracked stock below qty fails without effect.
func (s *Store) DecrementStock(ctx context.Context, shopID, itemID, qty int64) error {
	if qty <= 0 {
		return ErrInvalidAmount
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		return decrementStock(tx, shopID, itemID, qty)
	})
}

func decrementStock(tx *sql.Tx, shopID, itemID, qty int64) error {
	res, err := tx.Exec(`
		UPDATE items
		SET stock = CASE WHEN stock = -1 THEN stock ELSE stock - $1 END
		WHERE shop_id = $2 AND item_id = $3 AND (stock = -1 OR stock >= $4)
	`, qty, shopID, itemID, qty)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrInsufficientStock
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (Item, error) {
	var (
		it     Item
		active int64
	)
	err := row.Scan(&it.ID, &it.ShopID, &it.Name, &it.Price, &it.Description, &it.Stock, &active)
	if err == sql.ErrNoRows {
		return Item{}, ErrItemNotFound
	}
	if err != nil {
		return Item{}, fmt.Errorf("scan item: %w", err)
	}
	it.Active = active == 1
	return it, nil
}

func scanItems(rows *sql.Rows) ([]Item, error) {
	var items []Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
