package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/logger"
)

func TestHealthChecker_CheckRefreshesSnapshot(t *testing.T) {
	db := NewTestDBManager(t, logger.NewNoopLogger(), 3)
	checker := db.Manager.HealthChecker()
	ctx := context.Background()

	conn, err := db.Pool().Acquire(ctx)
	require.NoError(t, err)

	require.NoError(t, checker.Check(ctx))
	metrics := checker.GetMetrics()
	assert.Equal(t, 3, metrics.MaxOpenConnections)
	assert.Equal(t, 1, metrics.InUse)

	db.Pool().Release(conn)

	require.NoError(t, checker.Check(ctx))
	assert.Equal(t, 0, checker.GetMetrics().InUse)
}
