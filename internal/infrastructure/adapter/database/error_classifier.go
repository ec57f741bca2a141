package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/transfer-processor/internal/domain/error"
)

// ErrorClassifier classifies driver errors from postgres and sqlite by message,
// and translates them into domain errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Translate wraps a storage fault raised during op into a DataAccessError.
// Errors that already belong to the domain pass through unchanged.
func (c *ErrorClassifier) Translate(op string, err error) error {
	if err == nil {
		return nil
	}
	var dataErr *errs.DataAccessError
	if errors.As(err, &dataErr) ||
		errs.IsPoolExhaustedError(err) ||
		errs.IsNotFoundError(err) ||
		errors.Is(err, errs.ErrConnectionClosed) {
		return err
	}
	return errs.NewDataAccessError(op, c.Kind(err), err)
}

// Kind returns the classification of err
func (c *ErrorClassifier) Kind(err error) errs.DataAccessKind {
	switch {
	case err == nil:
		return ""
	case c.IsDuplicateKeyError(err):
		return errs.KindDuplicateKey
	case c.IsLockError(err):
		return errs.KindLock
	case c.IsTransientError(err):
		return errs.KindTransient
	case c.IsConnectionError(err):
		return errs.KindConnection
	case c.IsConstraintError(err):
		return errs.KindConstraint
	default:
		return errs.KindUnknown
	}
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return containsAny(err, "duplicate key", "unique constraint", "duplicate entry")
}

// IsTransientError checks if an error is transient and can be retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return containsAny(err,
		"connection reset",
		"connection refused",
		"timeout",
		"eof",
		"server closed",
		"broken pipe",
		"the database system is starting up",
	)
}

// IsLockError checks if the error is due to locking
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	return containsAny(err,
		"deadlock",
		"lock wait timeout",
		"could not serialize access",
		"serialization failure",
		"database is locked",
		"database table is locked",
	)
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, sql.ErrTxDone) {
		return true
	}
	return containsAny(err, "connection", "dial", "network") || c.IsTransientError(err)
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return containsAny(err, "constraint", "violates", "foreign key", "not null") ||
		c.IsDuplicateKeyError(err)
}

func containsAny(err error, fragments ...string) bool {
	msg := strings.ToLower(err.Error())
	for _, f := range fragments {
		if strings.Contains(msg, f) {
			return true
		}
	}
	return false
}
