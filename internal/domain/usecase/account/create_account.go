package account

import (
	"context"

	"github.com/amirhossein-jamali/transfer-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transfer-processor/internal/domain/error"
	"github.com/amirhossein-jamali/transfer-processor/internal/domain/port/usecase"
)

// CreateAccount creates a new account with the given ID and initial balance
func (u *AccountUseCase) CreateAccount(ctx context.Context, id string, balance int64) (*entity.Account, error) {
	account, err := entity.NewAccount(id, balance, u.timeProvider)
	if err != nil {
		return nil, err
	}

	exists, err := u.accountExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.ErrDuplicateAccount
	}

	saved, err := u.accountRepo.Save(ctx, account)
	if err != nil {
		return nil, err
	}

	u.logger.Info("Account created", map[string]any{
		"account_id": saved.ID,
		"balance":    saved.Balance(),
	})
	return saved, nil
}

// SeedAccounts creates the configured accounts that do not exist yet.
// Existing accounts keep their balance.
func (u *AccountUseCase) SeedAccounts(ctx context.Context, seeds []usecase.SeedAccount) (int, error) {
	created := 0
	for _, seed := range seeds {
		exists, err := u.accountExists(ctx, seed.ID)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		if _, err := u.CreateAccount(ctx, seed.ID, seed.Balance); err != nil {
			// Another process may have created it in between
			if errs.ErrorCode(err) == errs.CodeDuplicateAccount {
				continue
			}
			return created, err
		}
		created++
	}

	u.logger.Info("Seed accounts ensured", map[string]any{
		"requested": len(seeds),
		"created":   created,
	})
	return created, nil
}
