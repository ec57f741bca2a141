package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/transfer-processor/internal/domain/port/core"
	timeprovider "github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/time"
)

// TestDBManager provides a file-backed SQLite database with the schema in place
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to a fresh SQLite database under t.TempDir.
// The database is closed when the test finishes.
func NewTestDBManager(t *testing.T, logger coreport.Logger, maxOpenConns int) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()
	base := &Config{
		Driver:          DriverSQLite,
		Database:        filepath.Join(t.TempDir(), "transfers.db"),
		MaxIdleConns:    maxOpenConns,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		BusyTimeout:     5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1,
	}
	config := base.WithMaxOpenConnections(maxOpenConns).WithAcquireTimeout(2 * time.Second)

	manager := NewManager(config, logger, timeProvider)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.SchemaManager().EnsureSchema(context.Background()); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// Pool returns the connection pool of the test database
func (m *TestDBManager) Pool() *ConnectionPool {
	return m.Manager.Pool()
}

// Balance reads a balance outside any unit of work
func (m *TestDBManager) Balance(t *testing.T, id string) int64 {
	t.Helper()

	var balance int64
	if err := m.Manager.DB().Table("accounts").Select("balance").Where("id = ?", id).Scan(&balance).Error; err != nil {
		t.Fatalf("Failed to read balance of %s: %v", id, err)
	}
	return balance
}

// CreateTestAccount inserts an account directly
func (m *TestDBManager) CreateTestAccount(t *testing.T, id string, balance int64) {
	t.Helper()

	now := m.TimeProvider.Now()
	if err := m.Manager.DB().Exec(
		"INSERT INTO accounts (id, balance, created_at, updated_at) VALUES (?, ?, ?, ?)",
		id, balance, now, now,
	).Error; err != nil {
		t.Fatalf("Failed to create test account: %v", err)
	}
}
