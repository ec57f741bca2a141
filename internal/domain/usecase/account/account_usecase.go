package account

import (
	"context"

	"github.com/amirhossein-jamali/transfer-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transfer-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transfer-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-processor/internal/domain/port/persistence"
)

// AccountUseCase handles account management. Each call runs with its own connection.
type AccountUseCase struct {
	accountRepo  persistence.AccountRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAccountUseCase creates a new AccountUseCase
func NewAccountUseCase(
	accountRepo persistence.AccountRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AccountUseCase {
	return &AccountUseCase{
		accountRepo:  accountRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetAccount returns an account by ID
func (u *AccountUseCase) GetAccount(ctx context.Context, id string) (*entity.Account, error) {
	if id == "" {
		return nil, errs.ErrInvalidAccountID
	}
	return u.accountRepo.FindByID(ctx, id)
}

// ListAccounts returns every account ordered by ID
func (u *AccountUseCase) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	return u.accountRepo.List(ctx)
}

// DeleteAccount removes an account
func (u *AccountUseCase) DeleteAccount(ctx context.Context, id string) error {
	if id == "" {
		return errs.ErrInvalidAccountID
	}
	if err := u.accountRepo.Delete(ctx, id); err != nil {
		return err
	}

	u.logger.Info("Account deleted", map[string]any{
		"account_id": id,
	})
	return nil
}

// accountExists checks if an account with the given ID exists
func (u *AccountUseCase) accountExists(ctx context.Context, id string) (bool, error) {
	_, err := u.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
