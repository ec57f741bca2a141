package core

// Outcome labels how a unit of work ended
type Outcome string

const (
	OutcomeCommitted  Outcome = "committed"
	OutcomeRolledBack Outcome = "rolled_back"
	OutcomeFailed     Outcome = "failed"
)

// TransactionMetrics records unit of work and transfer activity
type TransactionMetrics interface {
	// UnitOfWorkBegan is called once a connection is bound to a new unit of work
	UnitOfWorkBegan()
	// UnitOfWorkEnded is called after the connection has been released
	UnitOfWorkEnded(outcome Outcome, elapsed Duration)
	// TransferFinished is called when a transfer returns, with the error code of a failure or 0
	TransferFinished(outcome Outcome, errorCode int)
}
