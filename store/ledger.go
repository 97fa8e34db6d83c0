package store

import (
	"context"
	"database/sql"
	"fmt"
)

// GetBalance returns the user's wallet balance, 0 if they have no ledger row.
func (s *Store) GetBalance(ctx context.Context, userID string) (int64, error) {
	var balance int64
	err := s.db.QueryRowContext(ctx,
		"SELECT balance FROM users WHERE user_id = $1", userID).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query balance: %w", err)
	}
	return balance, nil
}

// SetBalance overwrites the user's wallet balance, creating the row if
// needed. Negative amounts are rejected at the command layer.
func (s *Store) SetBalance(ctx context.Context, userID string, amount int64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (user_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET balance = EXCLUDED.balance
	`, userID, amount)
	if err != nil {
		return fmt.Errorf("set balance: %w", err)
	}
	return nil
}

// AddMoney credits the wallet, lazily creating the ledger row.
func (s *Store) AddMoney(ctx context.Context, userID string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		return creditWallet(tx, userID, amount)
	})
}

// RemoveMoney debits the wallet, failing without effect when the balance is
// insufficient.
func (s *Store) RemoveMoney(ctx context.Context, userID string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		return debitWallet(tx, userID, amount)
	})
}

// Transfer moves funds between two wallets atomically. The recipient's
// ledger row is created on demand.
func (s *Store) Transfer(ctx context.Context, fromID, toID string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := debitWallet(tx, fromID, amount); err != nil {
			return err
		}
		return creditWallet(tx, toID, amount)
	})
}

// GetDeposit returns the user's bank balance, 0 if they never deposited.
func (s *Store) GetDeposit(ctx context.Context, userID string) (int64, error) {
	var amount int64
	err := s.db.QueryRowContext(ctx,
		"SELECT amount FROM bank_deposits WHERE user_id = $1", userID).Scan(&amount)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query deposit: %w", err)
	}
	return amount, nil
}

// Deposit moves funds from the wallet into the bank.
func (s *Store) Deposit(ctx context.Context, userID string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := debitWallet(tx, userID, amount); err != nil {
			return err
		}
		_, err := tx.Exec(`
			INSERT INTO bank_deposits (user_id, amount)
			VALUES ($1, $2)
			ON CONFLICT (user_id) DO UPDATE SET amount = bank_deposits.amount + EXCLUDED.amount
		`, userID, amount)
		if err != nil {
			return fmt.Errorf("credit bank: %w", err)
		}
		return nil
	})
}

// Withdraw moves funds from the bank back into the wallet.
func (s *Store) Withdraw(ctx context.Context, userID string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.Exec(`
			UPDATE bank_deposits SET amount = amount - $1
			WHERE user_id = $2 AND amount >= $3
		`, amount, userID, amount)
		if err != nil {
			return fmt.Errorf("debit bank: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrInsufficientFunds
		}
		return creditWallet(tx, userID, amount)
	})
}

// debitWallet applies a guarded debit; zero rows affected means the balance
// was insufficient.
func debitWallet(tx *sql.Tx, userID string, amount int64) error {
	res, err := tx.Exec(`
		UPDATE users SET balance = balance - $1
		WHERE user_id = $2 AND balance >= $3
	`, amount, userID, amount)
	if err != nil {
		return fmt.Errorf("debit wallet: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrInsufficientFunds
	}
	return nil
}

func creditWallet(tx *sql.Tx, userID string, amount int64) error {
	if err := ensureUser(tx, userID); err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}
	_, err := tx.Exec(
		"UPDATE users SET balance = balance + $1 WHERE user_id = $2", amount, userID)
	if err != nil {
		return fmt.Errorf("credit wallet: %w", err)
	}
	return nil
}
