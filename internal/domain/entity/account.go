package entity

import (
	"math"
	"time"

	errs "github.com/amirhossein-jamali/transfer-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transfer-processor/internal/domain/port/core"
)

// Account represents a balance-holding account identified by a string ID
type Account struct {
	ID        string    // Unique identifier for the account
	balance   int64     // Balance in minor units (private)
	CreatedAt time.Time // When the account was created
	UpdatedAt time.Time // When the balance was last written
}

// NewAccount creates a new account with the given ID and initial balance.
// Negative balances are accepted; no non-negative rule is enforced on accounts.
func NewAccount(id string, initialBalance int64, timeProvider coreport.TimeProvider) (*Account, error) {
	if id == "" {
		return nil, errs.ErrInvalidAccountID
	}

	now := timeProvider.Now()
	return &Account{
		ID:        id,
		balance:   initialBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RestoreAccount rebuilds an account from persisted state
func RestoreAccount(id string, balance int64, createdAt, updatedAt time.Time) *Account {
	return &Account{
		ID:        id,
		balance:   balance,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Balance returns the current balance
func (a *Account) Balance() int64 {
	return a.balance
}

// BalanceAfterDebit returns the balance that would result from withdrawing amount.
// The account itself is not modified.
func (a *Account) BalanceAfterDebit(amount int64) (int64, error) {
	if amount > 0 && a.balance < math.MinInt64+amount {
		return 0, errs.ErrAmountOverflow
	}
	if amount < 0 && a.balance > math.MaxInt64+amount {
		return 0, errs.ErrAmountOverflow
	}
	return a.balance - amount, nil
}

// BalanceAfterCredit returns the balance that would result from depositing amount.
// The account itself is not modified.
func (a *Account) BalanceAfterCredit(amount int64) (int64, error) {
	if amount > 0 && a.balance > math.MaxInt64-amount {
		return 0, errs.ErrAmountOverflow
	}
	if amount < 0 && a.balance < math.MinInt64-amount {
		return 0, errs.ErrAmountOverflow
	}
	return a.balance + amount, nil
}
