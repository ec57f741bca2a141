package usecase

import (
	"context"

	"github.com/amirhossein-jamali/transfer-processor/internal/domain/entity"
)

// SeedAccount describes an account created at bootstrap when missing
type SeedAccount struct {
	ID      string `mapstructure:"id"`
	Balance int64  `mapstructure:"balance"`
}

// AccountUseCase defines account management operations
type AccountUseCase interface {
	// CreateAccount creates a new account with an initial balance
	CreateAccount(ctx context.Context, id string, balance int64) (*entity.Account, error)

	// GetAccount returns an account by ID
	GetAccount(ctx context.Context, id string) (*entity.Account, error)

	// ListAccounts returns every account ordered by ID
	ListAccounts(ctx context.Context) ([]*entity.Account, error)

	// DeleteAccount removes an account
	DeleteAccount(ctx context.Context, id string) error

	// SeedAccounts creates the accounts that do not exist yet and returns how many were created
	SeedAccounts(ctx context.Context, seeds []SeedAccount) (int, error)
}
