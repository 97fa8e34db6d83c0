package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBalanceUnknownUser(t *testing.T) {
	s := newTestStore(t)
	balance, err := s.GetBalance(context.Background(), "42")
	require.NoError(t, err)
	assert.Zero(t, balance)
}

func TestSetBalanceRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetBalance(ctx, "42", 500))
	balance, err := s.GetBalance(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, int64(500), balance)

	// overwrite, not add
	require.NoError(t, s.SetBalance(ctx, "42", 100))
	balance, err = s.GetBalance(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)
}

func TestAddRemoveMoney(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddMoney(ctx, "42", 300))
	require.NoError(t, s.RemoveMoney(ctx, "42", 100))

	balance, err := s.GetBalance(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, int64(200), balance)

	err = s.RemoveMoney(ctx, "42", 999)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	assert.ErrorIs(t, s.AddMoney(ctx, "42", 0), ErrInvalidAmount)
	assert.ErrorIs(t, s.RemoveMoney(ctx, "42", -5), ErrInvalidAmount)
}

func TestTransfer(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetBalance(ctx, "alice", 100))

	// recipient row is created lazily
	require.NoError(t, s.Transfer(ctx, "alice", "bob", 60))

	aliceBalance, err := s.GetBalance(ctx, "alice")
	require.NoError(t, err)
	bobBalance, err := s.GetBalance(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(40), aliceBalance)
	assert.Equal(t, int64(60), bobBalance)

	err = s.Transfer(ctx, "alice", "bob", 100)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// failed transfer leaves both sides untouched
	aliceBalance, _ = s.GetBalance(ctx, "alice")
	bobBalance, _ = s.GetBalance(ctx, "bob")
	assert.Equal(t, int64(40), aliceBalance)
	assert.Equal(t, int64(60), bobBalance)
}

func TestDepositWithdrawConservesFunds(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetBalance(ctx, "42", 1000))

	total := func() int64 {
		wallet, err := s.GetBalance(ctx, "42")
		require.NoError(t, err)
		bank, err := s.GetDeposit(ctx, "42")
		require.NoError(t, err)
		return wallet + bank
	}

	require.NoError(t, s.Deposit(ctx, "42", 400))
	assert.Equal(t, int64(1000), total())

	require.NoError(t, s.Deposit(ctx, "42", 100))
	require.NoError(t, s.Withdraw(ctx, "42", 250))
	assert.Equal(t, int64(1000), total())

	wallet, err := s.GetBalance(ctx, "42")
	require.NoError(t, err)
	bank, err := s.GetDeposit(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, int64(750), wallet)
	assert.Equal(t, int64(250), bank)
}

func TestDepositInsufficientWallet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetBalance(ctx, "42", 50))
	assert.ErrorIs(t, s.Deposit(ctx, "42", 100), ErrInsufficientFunds)

	wallet, _ := s.GetBalance(ctx, "42")
	bank, _ := s.GetDeposit(ctx, "42")
	assert.Equal(t, int64(50), wallet)
	assert.Zero(t, bank)
}

func TestWithdrawInsufficientBank(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, s.Withdraw(ctx, "42", 1), ErrInsufficientFunds)

	require.NoError(t, s.SetBalance(ctx, "42", 100))
	require.NoError(t, s.Deposit(ctx, "42", 30))
	assert.ErrorIs(t, s.Withdraw(ctx, "42", 31), ErrInsufficientFunds)
}
