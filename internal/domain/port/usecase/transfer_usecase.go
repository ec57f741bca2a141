package usecase

import (
	"context"
)

// TransferUseCase moves an amount between two accounts atomically
type TransferUseCase interface {
	// Transfer debits fromID and credits toID.
	// Possible errors:
	// - errs.ErrInvalidAmount, errs.ErrInvalidAccountID, errs.ErrSameAccount: for invalid input
	// - errs.NotFoundError: if either account does not exist
	// - errs.BusinessInvariantError: if the target account is blocked
	// - errs.ErrAmountOverflow: if the credit would overflow
	// - errs.DataAccessError, errs.PoolExhaustedError: for storage faults
	// On any error no balance has changed.
	Transfer(ctx context.Context, fromID, toID string, amount int64) error
}
