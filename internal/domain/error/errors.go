package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount       = 4002
	CodeInvalidAccountID    = 4003
	CodeSameAccount         = 4004
	CodeConstraintViolation = 4005
	CodeAmountOverflow      = 4006
	CodeDuplicateAccount    = 4009
	CodeBusinessInvariant   = 4220
	CodeAccountNotFound     = 4040

	// 5xxx - Server errors
	CodeInternalServer          = 5000
	CodeDataAccess              = 5001
	CodeInvalidTransactionState = 5002
	CodePoolExhausted           = 5030
)

// Base error types
var (
	// ErrInvalidAmount is returned when a transfer amount is not strictly positive
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidAccountID is returned when an account ID is empty
	ErrInvalidAccountID = errors.New("account ID cannot be empty")

	// ErrSameAccount is returned when source and target of a transfer are the same account
	ErrSameAccount = errors.New("source and target account must differ")

	// ErrAmountOverflow is returned when the amount is too large and would cause overflow
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrAccountNotFound is returned when the requested account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateAccount is returned when trying to create an account that already exists
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrBusinessInvariant is returned when a business rule aborts a unit of work
	ErrBusinessInvariant = errors.New("business invariant violated")

	// ErrDataAccess is returned for any storage-layer fault during a repository call
	ErrDataAccess = errors.New("data access error")

	// ErrPoolExhausted is returned when no connection could be acquired from the pool
	ErrPoolExhausted = errors.New("connection pool exhausted")

	// ErrInvalidTransactionState is returned when a unit of work is begun or ended incorrectly
	ErrInvalidTransactionState = errors.New("invalid transaction state")

	// ErrAlreadyBound is returned when a connection is already bound to the unit of work
	ErrAlreadyBound = errors.New("connection already bound to unit of work")

	// ErrUnbound is returned when no connection is bound to the calling unit of work
	ErrUnbound = errors.New("no connection bound to unit of work")

	// ErrRollbackOnly is returned when committing a unit of work a participant marked for rollback
	ErrRollbackOnly = errors.New("unit of work was marked rollback-only")

	// ErrConnectionClosed is returned when using a connection that was already released
	ErrConnectionClosed = errors.New("connection already closed")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidAccountID):
		return CodeInvalidAccountID
	case errors.Is(err, ErrSameAccount):
		return CodeSameAccount
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrDuplicateAccount):
		return CodeDuplicateAccount
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrBusinessInvariant):
		return CodeBusinessInvariant
	case errors.Is(err, ErrPoolExhausted):
		return CodePoolExhausted
	case errors.Is(err, ErrInvalidTransactionState):
		return CodeInvalidTransactionState
	case errors.Is(err, ErrDataAccess):
		return CodeDataAccess
	default:
		return CodeInternalServer
	}
}

// DataAccessKind classifies the storage fault behind a DataAccessError
type DataAccessKind string

const (
	KindDuplicateKey DataAccessKind = "duplicate_key"
	KindTransient    DataAccessKind = "transient"
	KindLock         DataAccessKind = "lock"
	KindConnection   DataAccessKind = "connection"
	KindConstraint   DataAccessKind = "constraint"
	KindUnknown      DataAccessKind = "unknown"
)

// DataAccessError wraps any storage-layer fault raised during a repository or connection call.
// The original cause stays reachable through Unwrap.
type DataAccessError struct {
	Op   string
	Kind DataAccessKind
	Err  error
}

// NewDataAccessError creates a DataAccessError for the given operation
func NewDataAccessError(op string, kind DataAccessKind, err error) error {
	return &DataAccessError{Op: op, Kind: kind, Err: err}
}

// Error implements the error interface for DataAccessError
func (e *DataAccessError) Error() string {
	return fmt.Sprintf("data access failed during %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error
func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// Is matches ErrDataAccess, and the constraint sentinels for classified faults
func (e *DataAccessError) Is(target error) bool {
	switch target {
	case ErrDataAccess:
		return true
	case ErrDuplicateAccount:
		return e.Kind == KindDuplicateKey
	case ErrConstraintViolation:
		return e.Kind == KindConstraint
	}
	return false
}

// LogFields returns a map of fields for structured logging
func (e *DataAccessError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "data_access",
		"operation":  e.Op,
		"kind":       string(e.Kind),
		"error":      errorText(e.Err),
		"error_code": ErrorCode(e),
	}
}

// NotFoundError is returned when a lookup matched zero rows
type NotFoundError struct {
	AccountID string
}

// NewNotFoundError creates a NotFoundError for the given account
func NewNotFoundError(accountID string) error {
	return &NotFoundError{AccountID: accountID}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("account %q not found", e.AccountID)
}

// Is checks if the target error is ErrAccountNotFound or ErrNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrAccountNotFound || target == ErrNotFound
}

// LogFields returns a map of fields for structured logging
func (e *NotFoundError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "not_found",
		"account_id": e.AccountID,
		"error_code": CodeAccountNotFound,
	}
}

// BusinessInvariantError is returned when an application rule aborts a transfer
type BusinessInvariantError struct {
	AccountID string
	Rule      string
}

// NewBusinessInvariantError creates a BusinessInvariantError
func NewBusinessInvariantError(accountID, rule string) error {
	return &BusinessInvariantError{AccountID: accountID, Rule: rule}
}

// Error implements the error interface
func (e *BusinessInvariantError) Error() string {
	return fmt.Sprintf("business invariant %q violated for account %q", e.Rule, e.AccountID)
}

// Is checks if the target error is ErrBusinessInvariant
func (e *BusinessInvariantError) Is(target error) bool {
	return target == ErrBusinessInvariant
}

// LogFields returns a map of fields for structured logging
func (e *BusinessInvariantError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "business_invariant",
		"account_id": e.AccountID,
		"rule":       e.Rule,
		"error_code": CodeBusinessInvariant,
	}
}

// PoolExhaustedError is returned when acquiring a connection did not succeed in time
type PoolExhaustedError struct {
	Waited string
	Err    error
}

// NewPoolExhaustedError creates a PoolExhaustedError
func NewPoolExhaustedError(waited string, err error) error {
	return &PoolExhaustedError{Waited: waited, Err: err}
}

// Error implements the error interface
func (e *PoolExhaustedError) Error() string {
	return fmt.Sprintf("no connection available after %s: %v", e.Waited, e.Err)
}

// Unwrap returns the underlying error
func (e *PoolExhaustedError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is ErrPoolExhausted
func (e *PoolExhaustedError) Is(target error) bool {
	return target == ErrPoolExhausted
}

// LogFields returns a map of fields for structured logging
func (e *PoolExhaustedError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "pool_exhausted",
		"waited":     e.Waited,
		"error":      errorText(e.Err),
		"error_code": CodePoolExhausted,
	}
}

// InvalidTransactionStateError reports misuse of a unit of work handle,
// such as ending it twice or ending a handle that was never begun.
type InvalidTransactionStateError struct {
	UnitOfWorkID string
	State        string
	Operation    string
	Err          error
}

// NewInvalidTransactionStateError creates an InvalidTransactionStateError
func NewInvalidTransactionStateError(unitOfWorkID, state, operation string, err error) error {
	return &InvalidTransactionStateError{
		UnitOfWorkID: unitOfWorkID,
		State:        state,
		Operation:    operation,
		Err:          err,
	}
}

// Error implements the error interface
func (e *InvalidTransactionStateError) Error() string {
	msg := fmt.Sprintf("cannot %s unit of work %q in state %s", e.Operation, e.UnitOfWorkID, e.State)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error
func (e *InvalidTransactionStateError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is ErrInvalidTransactionState
func (e *InvalidTransactionStateError) Is(target error) bool {
	return target == ErrInvalidTransactionState
}

// LogFields returns a map of fields for structured logging
func (e *InvalidTransactionStateError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "invalid_transaction_state",
		"unit_of_work": e.UnitOfWorkID,
		"state":        e.State,
		"operation":    e.Operation,
		"error":        errorText(e.Err),
		"error_code":   CodeInvalidTransactionState,
	}
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// IsDataAccessError checks if the error is a storage-layer fault
func IsDataAccessError(err error) bool {
	return errors.Is(err, ErrDataAccess)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrAccountNotFound)
}

// IsBusinessInvariantError checks if the error is a business rule violation
func IsBusinessInvariantError(err error) bool {
	return errors.Is(err, ErrBusinessInvariant)
}

// IsPoolExhaustedError checks if no connection could be acquired
func IsPoolExhaustedError(err error) bool {
	return errors.Is(err, ErrPoolExhausted)
}

// IsInvalidTransactionStateError checks if the error reports unit of work misuse
func IsInvalidTransactionStateError(err error) bool {
	return errors.Is(err, ErrInvalidTransactionState)
}

// IsClientError reports whether the error was caused by caller input rather than the system
func IsClientError(err error) bool {
	code := ErrorCode(err)
	return code >= 4000 && code < 5000
}
