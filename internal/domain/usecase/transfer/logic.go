package transfer

import (
	"context"

	errs "github.com/amirhossein-jamali/transfer-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transfer-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-processor/internal/domain/port/persistence"
)

// ValidateRequest checks transfer input before any connection is taken
func ValidateRequest(fromID, toID string, amount int64) error {
	if fromID == "" || toID == "" {
		return errs.ErrInvalidAccountID
	}
	if fromID == toID {
		return errs.ErrSameAccount
	}
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	return nil
}

// Logic holds the transfer steps without any transaction handling.
// Callers decide where the unit of work begins and ends.
type Logic struct {
	accountRepo persistence.AccountRepository
	policy      *BlockedAccountPolicy
	logger      coreport.Logger
}

// NewLogic creates the transfer business logic
func NewLogic(accountRepo persistence.AccountRepository, policy *BlockedAccountPolicy, logger coreport.Logger) *Logic {
	return &Logic{
		accountRepo: accountRepo,
		policy:      policy,
		logger:      logger,
	}
}

// Apply reads both accounts, writes the debit, checks the target and writes the credit.
// Any error aborts the remaining steps and is returned unchanged.
func (l *Logic) Apply(ctx context.Context, fromID, toID string, amount int64) error {
	from, err := l.accountRepo.FindByID(ctx, fromID)
	if err != nil {
		return err
	}
	to, err := l.accountRepo.FindByID(ctx, toID)
	if err != nil {
		return err
	}

	debited, err := from.BalanceAfterDebit(amount)
	if err != nil {
		return err
	}
	if err := l.accountRepo.UpdateBalance(ctx, from.ID, debited); err != nil {
		return err
	}

	if err := l.policy.Check(to); err != nil {
		l.logger.Warn("Transfer target rejected", map[string]any{
			"from_account": fromID,
			"to_account":   toID,
			"amount":       amount,
		})
		return err
	}

	credited, err := to.BalanceAfterCredit(amount)
	if err != nil {
		return err
	}
	return l.accountRepo.UpdateBalance(ctx, to.ID, credited)
}
