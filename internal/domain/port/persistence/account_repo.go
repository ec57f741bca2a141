package persistence

import (
	"context"

	"github.com/amirhossein-jamali/transfer-processor/internal/domain/entity"
)

// AccountRepository defines data access operations for accounts.
// Every operation runs on the connection of the active unit of work when ctx carries one,
// otherwise on a connection acquired and released for that single call.
type AccountRepository interface {
	// Save inserts a new account.
	// Possible errors:
	// - errs.DataAccessError: on any storage fault (matches errs.ErrDuplicateAccount for an existing ID)
	// - errs.PoolExhaustedError: if no connection could be acquired
	Save(ctx context.Context, account *entity.Account) (*entity.Account, error)

	// FindByID retrieves an account by its ID.
	// Possible errors:
	// - errs.NotFoundError: if no account has the ID
	// - errs.DataAccessError: on any storage fault
	// - errs.PoolExhaustedError: if no connection could be acquired
	FindByID(ctx context.Context, id string) (*entity.Account, error)

	// UpdateBalance overwrites the balance of an account.
	// Possible errors:
	// - errs.NotFoundError: if no account has the ID
	// - errs.DataAccessError: on any storage fault
	// - errs.PoolExhaustedError: if no connection could be acquired
	UpdateBalance(ctx context.Context, id string, newBalance int64) error

	// Delete removes an account. Deleting a missing account is not an error.
	// Possible errors:
	// - errs.DataAccessError: on any storage fault
	// - errs.PoolExhaustedError: if no connection could be acquired
	Delete(ctx context.Context, id string) error

	// List returns all accounts ordered by ID.
	// Possible errors:
	// - errs.DataAccessError: on any storage fault
	// - errs.PoolExhaustedError: if no connection could be acquired
	List(ctx context.Context) ([]*entity.Account, error)
}
