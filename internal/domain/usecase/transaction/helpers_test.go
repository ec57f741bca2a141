package transaction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	coreport "github.com/amirhossein-jamali/transfer-processor/internal/domain/port/core"
	mockcore "github.com/amirhossein-jamali/transfer-processor/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/transfer-processor/mocks/port/persistence"
)

var fixedTime = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newQuietLogger(t *testing.T) *mockcore.MockLogger {
	logger := mockcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Return().Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Return().Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Return().Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Return().Maybe()
	return logger
}

type managerFixture struct {
	pool     *mockpersistence.MockConnectionPool
	conn     *mockpersistence.MockConnection
	metrics  *mockcore.MockTransactionMetrics
	registry *ConnectionRegistry
	manager  *TransactionManager
}

func newManagerFixture(t *testing.T) *managerFixture {
	pool := mockpersistence.NewMockConnectionPool(t)
	conn := mockpersistence.NewMockConnection(t)
	conn.EXPECT().ID().Return("conn-1").Maybe()

	timeProvider := mockcore.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(fixedTime).Maybe()
	timeProvider.EXPECT().Since(mock.Anything).Return(coreport.Duration(5 * time.Millisecond)).Maybe()

	metrics := mockcore.NewMockTransactionMetrics(t)
	registry := NewConnectionRegistry()

	return &managerFixture{
		pool:     pool,
		conn:     conn,
		metrics:  metrics,
		registry: registry,
		manager:  NewTransactionManager(pool, registry, timeProvider, metrics, newQuietLogger(t)),
	}
}

// expectBegin sets up a successful Begin on a connection that starts in autocommit mode
func (f *managerFixture) expectBegin() {
	f.pool.EXPECT().Acquire(mock.Anything).Return(f.conn, nil).Once()
	f.conn.EXPECT().AutoCommit().Return(true).Once()
	f.conn.EXPECT().SetAutoCommit(mock.Anything, false).Return(nil).Once()
	f.metrics.EXPECT().UnitOfWorkBegan().Return().Once()
}

// expectEnd sets up the cleanup steps every end path performs
func (f *managerFixture) expectEnd(outcome coreport.Outcome) {
	f.conn.EXPECT().SetAutoCommit(mock.Anything, true).Return(nil).Once()
	f.pool.EXPECT().Release(f.conn).Return().Once()
	f.metrics.EXPECT().UnitOfWorkEnded(outcome, mock.Anything).Return().Once()
}
