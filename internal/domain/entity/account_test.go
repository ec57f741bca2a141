package entity

import (
	"math"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/transfer-processor/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/transfer-processor/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid account creation", func(t *testing.T) {
		account, err := NewAccount("memberA", 10000, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "memberA", account.ID)
		assert.Equal(t, int64(10000), account.Balance())
		assert.Equal(t, fixedTime, account.CreatedAt)
		assert.Equal(t, fixedTime, account.UpdatedAt)
	})

	t.Run("Empty ID should return error", func(t *testing.T) {
		account, err := NewAccount("", 10000, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidAccountID)
		assert.Nil(t, account)
	})

	t.Run("Negative balance is accepted", func(t *testing.T) {
		account, err := NewAccount("memberB", -50, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(-50), account.Balance())
	})
}

func TestAccountBalanceArithmetic(t *testing.T) {
	account := RestoreAccount("memberA", 10000, time.Time{}, time.Time{})

	t.Run("Debit", func(t *testing.T) {
		balance, err := account.BalanceAfterDebit(2000)
		require.NoError(t, err)
		assert.Equal(t, int64(8000), balance)
		assert.Equal(t, int64(10000), account.Balance(), "account must not be modified")
	})

	t.Run("Debit below zero is allowed", func(t *testing.T) {
		balance, err := account.BalanceAfterDebit(12000)
		require.NoError(t, err)
		assert.Equal(t, int64(-2000), balance)
	})

	t.Run("Credit", func(t *testing.T) {
		balance, err := account.BalanceAfterCredit(2000)
		require.NoError(t, err)
		assert.Equal(t, int64(12000), balance)
	})

	t.Run("Credit overflow", func(t *testing.T) {
		rich := RestoreAccount("rich", math.MaxInt64-10, time.Time{}, time.Time{})
		_, err := rich.BalanceAfterCredit(11)
		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
	})

	t.Run("Debit overflow", func(t *testing.T) {
		poor := RestoreAccount("poor", math.MinInt64+10, time.Time{}, time.Time{})
		_, err := poor.BalanceAfterDebit(11)
		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
	})
}
