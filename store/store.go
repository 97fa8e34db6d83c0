package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    user_id TEXT PRIMARY KEY,
    balance INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS bank_deposits (
    user_id TEXT PRIMARY KEY,
    amount INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS shops (
    shop_id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS items (
    item_id INTEGER PRIMARY KEY,
    shop_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    price INTEGER NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    stock INTEGER NOT NULL DEFAULT -1,
    active INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS user_items (
    user_id TEXT NOT NULL,
    shop_id INTEGER NOT NULL,
    item_id INTEGER NOT NULL,
    quantity INTEGER NOT NULL DEFAULT 1,
    PRIMARY KEY (user_id, shop_id, item_id)
);

CREATE TABLE IF NOT EXISTS role_salaries (
    role_id TEXT PRIMARY KEY,
    salary INTEGER NOT NULL,
    cooldown INTEGER NOT NULL DEFAULT 3600
);

CREATE TABLE IF NOT EXISTS salary_cooldowns (
    user_id TEXT PRIMARY KEY,
    last_collect BIGINT NOT NULL
);`

// Store owns the connection pool for the economy tables. All multi-step
// mutations run inside a single transaction; sufficiency checks are
// conditional updates so concurrent commands cannot drive balances or stock
// negative.
//
// SQL is written in the dialect subset shared by postgres and sqlite:
// sequential $n placeholders, ON CONFLICT upserts, RETURNING, and epoch
// timestamps supplied from Go.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open connects with the given driver ("postgres" or "sqlite") and creates
// the schema if needed.
func Open(driver, dsn string) (*Store, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == "sqlite" {
		// sqlite supports a single writer
		db.SetMaxOpenConns(1)
	}
	s, err := New(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an existing pool and creates the schema if needed.
func New(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// withTx runs fn in a transaction, rolling back on error.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// ensureUser lazily creates the ledger row with a zero balance.
func ensureUser(tx *sql.Tx, userID string) error {
	_, err := tx.Exec(`
		INSERT INTO users (user_id, balance)
		VALUES ($1, 0)
		ON CONFLICT (user_id) DO NOTHING
	`, userID)
	return err
}
