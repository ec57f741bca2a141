package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/transfer-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transfer-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transfer-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/model"
)

// sessionConnection is a connection that can run gorm statements
type sessionConnection interface {
	persistence.Connection
	Session(ctx context.Context) (*gorm.DB, error)
}

// AccountRepository implements persistence.AccountRepository using GORM.
// It has no transaction logic of its own: statements run on the connection bound to
// the caller's unit of work, or on a connection borrowed for the single call.
type AccountRepository struct {
	txContext    persistence.TransactionContext
	pool         persistence.ConnectionPool
	classifier   *database.ErrorClassifier
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(
	txContext persistence.TransactionContext,
	pool persistence.ConnectionPool,
	classifier *database.ErrorClassifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AccountRepository {
	if classifier == nil {
		classifier = database.NewErrorClassifier()
	}
	return &AccountRepository{
		txContext:    txContext,
		pool:         pool,
		classifier:   classifier,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// withSession runs fn on the connection of the active unit of work, or on an ad-hoc
// autocommit connection that is released when fn returns
func (r *AccountRepository) withSession(ctx context.Context, op string, fn func(db *gorm.DB) error) error {
	conn, err := r.txContext.Current(ctx)
	if err != nil {
		if !errors.Is(err, errs.ErrUnbound) {
			return err
		}
		conn, err = r.pool.Acquire(ctx)
		if err != nil {
			return err
		}
		defer r.pool.Release(conn)
	}

	sc, ok := conn.(sessionConnection)
	if !ok {
		return errs.NewDataAccessError(op, errs.KindUnknown, errors.New("connection cannot run statements"))
	}
	db, err := sc.Session(ctx)
	if err != nil {
		return r.classifier.Translate(op, err)
	}

	if err := fn(db); err != nil {
		return r.classifier.Translate(op, err)
	}
	return nil
}

// Save inserts a new account
func (r *AccountRepository) Save(ctx context.Context, account *entity.Account) (*entity.Account, error) {
	row := model.FromEntity(account)
	err := r.withSession(ctx, "save", func(db *gorm.DB) error {
		return db.Create(row).Error
	})
	if err != nil {
		r.logger.Warn("Failed to save account", map[string]any{
			"account_id": account.ID,
			"error":      err.Error(),
		})
		return nil, err
	}

	r.logger.Debug("Account saved", map[string]any{
		"account_id": account.ID,
		"balance":    row.Balance,
	})
	return row.ToEntity(), nil
}

// FindByID retrieves an account by ID
func (r *AccountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	var row model.Account
	err := r.withSession(ctx, "find_by_id", func(db *gorm.DB) error {
		return db.Where("id = ?", id).Take(&row).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError(id)
		}
		return nil, err
	}
	return row.ToEntity(), nil
}

// UpdateBalance overwrites the balance of an account
func (r *AccountRepository) UpdateBalance(ctx context.Context, id string, newBalance int64) error {
	var rows int64
	err := r.withSession(ctx, "update_balance", func(db *gorm.DB) error {
		result := db.Model(&model.Account{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"balance":    newBalance,
				"updated_at": r.timeProvider.Now(),
			})
		rows = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return errs.NewNotFoundError(id)
	}

	r.logger.Debug("Account balance updated", map[string]any{
		"account_id": id,
		"balance":    newBalance,
	})
	return nil
}

// Delete removes an account; a missing account is not an error
func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	var rows int64
	err := r.withSession(ctx, "delete", func(db *gorm.DB) error {
		result := db.Where("id = ?", id).Delete(&model.Account{})
		rows = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return err
	}

	r.logger.Debug("Account deleted", map[string]any{
		"account_id": id,
		"existed":    rows > 0,
	})
	return nil
}

// List returns all accounts ordered by ID
func (r *AccountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	var rows []model.Account
	err := r.withSession(ctx, "list", func(db *gorm.DB) error {
		return db.Order("id").Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	accounts := make([]*entity.Account, 0, len(rows))
	for i := range rows {
		accounts = append(accounts, rows[i].ToEntity())
	}
	return accounts, nil
}
