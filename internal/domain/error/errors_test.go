package error

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInvalidAmount.Error() != "amount must be positive" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
	if ErrAccountNotFound.Error() != "account not found" {
		t.Errorf("ErrAccountNotFound has unexpected message: %s", ErrAccountNotFound.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"InvalidAccountID", ErrInvalidAccountID, 4003},
		{"SameAccount", ErrSameAccount, 4004},
		{"AmountOverflow", ErrAmountOverflow, 4006},
		{"AccountNotFound", NewNotFoundError("memberA"), 4040},
		{"BusinessInvariant", NewBusinessInvariantError("ex", "blocked_account"), 4220},
		{"PoolExhausted", NewPoolExhaustedError("1s", context.DeadlineExceeded), 5030},
		{"InvalidState", NewInvalidTransactionStateError("u1", "RELEASED", "commit", nil), 5002},
		{"DataAccess", NewDataAccessError("find_by_id", KindConnection, errors.New("boom")), 5001},
		{"DuplicateAccount", NewDataAccessError("save", KindDuplicateKey, errors.New("dup")), 4009},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidAccountID), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestDataAccessError(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := NewDataAccessError("update_balance", KindConnection, cause)

	expectedErrMsg := "data access failed during update_balance (connection): connection reset by peer"
	if err.Error() != expectedErrMsg {
		t.Errorf("DataAccessError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
	if !IsDataAccessError(err) {
		t.Errorf("IsDataAccessError(err) = false, want true")
	}
	if errors.Is(err, ErrDuplicateAccount) {
		t.Errorf("errors.Is(err, ErrDuplicateAccount) = true, want false")
	}

	var dae *DataAccessError
	if !errors.As(fmt.Errorf("outer: %w", err), &dae) {
		t.Fatalf("errors.As failed: not a *DataAccessError")
	}
	if dae.Op != "update_balance" {
		t.Errorf("Op = %s, want update_balance", dae.Op)
	}
	if dae.LogFields()["kind"] != "connection" {
		t.Errorf("LogFields kind = %v, want connection", dae.LogFields()["kind"])
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("memberA")

	expectedErrMsg := `account "memberA" not found`
	if err.Error() != expectedErrMsg {
		t.Errorf("NotFoundError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}
	if !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("errors.Is(err, ErrAccountNotFound) = false, want true")
	}
	if !IsNotFoundError(err) {
		t.Errorf("IsNotFoundError(err) = false, want true")
	}
}

func TestBusinessInvariantError(t *testing.T) {
	err := NewBusinessInvariantError("ex", "blocked_account")

	if !IsBusinessInvariantError(err) {
		t.Errorf("IsBusinessInvariantError(err) = false, want true")
	}
	if IsDataAccessError(err) {
		t.Errorf("IsDataAccessError(err) = true, want false")
	}
	if !IsClientError(err) {
		t.Errorf("IsClientError(err) = false, want true")
	}
}

func TestInvalidTransactionStateError(t *testing.T) {
	err := NewInvalidTransactionStateError("uow-1", "RELEASED", "commit", nil)

	expectedErrMsg := `cannot commit unit of work "uow-1" in state RELEASED`
	if err.Error() != expectedErrMsg {
		t.Errorf("InvalidTransactionStateError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}
	if !IsInvalidTransactionStateError(err) {
		t.Errorf("IsInvalidTransactionStateError(err) = false, want true")
	}

	withCause := NewInvalidTransactionStateError("uow-2", "ACTIVE", "commit", ErrRollbackOnly)
	if !errors.Is(withCause, ErrRollbackOnly) {
		t.Errorf("errors.Is(withCause, ErrRollbackOnly) = false, want true")
	}
}

func TestPoolExhaustedError(t *testing.T) {
	err := NewPoolExhaustedError("250ms", context.DeadlineExceeded)

	if !IsPoolExhaustedError(err) {
		t.Errorf("IsPoolExhaustedError(err) = false, want true")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("errors.Is(err, context.DeadlineExceeded) = false, want true")
	}
	if IsClientError(err) {
		t.Errorf("IsClientError(err) = true, want false")
	}
}
