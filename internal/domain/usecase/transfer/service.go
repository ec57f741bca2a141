package transfer

import (
	"context"
	"fmt"

	errs "github.com/amirhossein-jamali/transfer-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transfer-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/transfer-processor/internal/domain/usecase/transaction"
)

// Demarcation modes accepted by New
const (
	DemarcationProgrammatic = "programmatic"
	DemarcationDeclarative  = "declarative"
	DemarcationNone         = "none"
)

// New builds the transfer use case for the configured demarcation mode
func New(
	mode string,
	manager *transaction.TransactionManager,
	logic *Logic,
	metrics coreport.TransactionMetrics,
	logger coreport.Logger,
) (usecase.TransferUseCase, error) {
	switch mode {
	case DemarcationProgrammatic, "":
		return NewService(manager, logic, metrics, logger), nil
	case DemarcationDeclarative:
		return NewDeclarativeService(manager, logic, metrics, logger), nil
	case DemarcationNone:
		return NewNonTransactionalService(logic, metrics, logger), nil
	default:
		return nil, fmt.Errorf("unknown transfer demarcation %q", mode)
	}
}

// Service demarcates each transfer explicitly with Begin, CommitAndEnd and RollbackAndEnd
type Service struct {
	manager *transaction.TransactionManager
	logic   *Logic
	metrics coreport.TransactionMetrics
	logger  coreport.Logger
}

// NewService creates a transfer service with programmatic demarcation
func NewService(manager *transaction.TransactionManager, logic *Logic, metrics coreport.TransactionMetrics, logger coreport.Logger) *Service {
	return &Service{
		manager: manager,
		logic:   logic,
		metrics: metrics,
		logger:  logger,
	}
}

// Transfer moves amount from fromID to toID in one unit of work
func (s *Service) Transfer(ctx context.Context, fromID, toID string, amount int64) (err error) {
	defer finish(s.metrics, s.logger, fromID, toID, amount, &err)

	if err := ValidateRequest(fromID, toID, amount); err != nil {
		return err
	}

	u, err := s.manager.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := s.manager.RollbackAndEnd(u); rbErr != nil {
				s.logger.Error("Rollback after panic failed", map[string]any{
					"unit_of_work": u.ID(),
					"error":        rbErr.Error(),
				})
			}
			panic(p)
		}
	}()

	if err := s.logic.Apply(u.Context(), fromID, toID, amount); err != nil {
		if rbErr := s.manager.RollbackAndEnd(u); rbErr != nil {
			s.logger.Error("Rollback failed", map[string]any{
				"unit_of_work":   u.ID(),
				"error":          err.Error(),
				"rollback_error": rbErr.Error(),
			})
		}
		return err
	}

	return s.manager.CommitAndEnd(u)
}

// DeclarativeService runs the transfer logic through transaction.Transactional.
// The logic itself never touches the unit of work.
type DeclarativeService struct {
	manager *transaction.TransactionManager
	logic   *Logic
	metrics coreport.TransactionMetrics
	logger  coreport.Logger
}

// NewDeclarativeService creates a transfer service with declarative demarcation
func NewDeclarativeService(manager *transaction.TransactionManager, logic *Logic, metrics coreport.TransactionMetrics, logger coreport.Logger) *DeclarativeService {
	return &DeclarativeService{
		manager: manager,
		logic:   logic,
		metrics: metrics,
		logger:  logger,
	}
}

// Transfer moves amount from fromID to toID in one unit of work
func (s *DeclarativeService) Transfer(ctx context.Context, fromID, toID string, amount int64) (err error) {
	defer finish(s.metrics, s.logger, fromID, toID, amount, &err)

	if err := ValidateRequest(fromID, toID, amount); err != nil {
		return err
	}

	return transaction.Transactional(s.manager, func(ctx context.Context) error {
		return s.logic.Apply(ctx, fromID, toID, amount)
	})(ctx)
}

// NonTransactionalService runs every step on its own connection in autocommit mode.
// A failure after the debit leaves the debit in place.
type NonTransactionalService struct {
	logic   *Logic
	metrics coreport.TransactionMetrics
	logger  coreport.Logger
}

// NewNonTransactionalService creates a transfer service without a unit of work
func NewNonTransactionalService(logic *Logic, metrics coreport.TransactionMetrics, logger coreport.Logger) *NonTransactionalService {
	return &NonTransactionalService{
		logic:   logic,
		metrics: metrics,
		logger:  logger,
	}
}

// Transfer moves amount from fromID to toID statement by statement
func (s *NonTransactionalService) Transfer(ctx context.Context, fromID, toID string, amount int64) (err error) {
	defer finish(s.metrics, s.logger, fromID, toID, amount, &err)

	if err := ValidateRequest(fromID, toID, amount); err != nil {
		return err
	}
	return s.logic.Apply(transaction.Detach(ctx), fromID, toID, amount)
}

// finish records the outcome of a transfer. It is deferred with a pointer to the named
// error so a panic unwinding through Transfer is reported as a failure and re-raised.
func finish(metrics coreport.TransactionMetrics, logger coreport.Logger, fromID, toID string, amount int64, errp *error) {
	err := *errp
	if p := recover(); p != nil {
		defer panic(p)
		err = fmt.Errorf("transfer panicked: %v", p)
	}

	fields := map[string]any{
		"from_account": fromID,
		"to_account":   toID,
		"amount":       amount,
	}

	if err == nil {
		if metrics != nil {
			metrics.TransferFinished(coreport.OutcomeCommitted, 0)
		}
		logger.Info("Transfer completed", fields)
		return
	}

	if metrics != nil {
		metrics.TransferFinished(coreport.OutcomeFailed, errs.ErrorCode(err))
	}
	if lf, ok := err.(interface{ LogFields() map[string]any }); ok {
		for k, v := range lf.LogFields() {
			fields[k] = v
		}
	}
	fields["error"] = err.Error()
	logger.Warn("Transfer failed", fields)
}
