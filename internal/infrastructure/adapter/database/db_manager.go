package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/transfer-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/database/migration"
)

// Manager manages the database handle and the connection pool built on it
type Manager struct {
	config        *Config
	db            *gorm.DB
	pool          *ConnectionPool
	classifier    *ErrorClassifier
	healthChecker *HealthChecker
	contextFields ContextFieldsFunc
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		classifier:   NewErrorClassifier(),
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// UseContextFields makes SQL logs carry the fields fn extracts from each statement's context.
// It must be called before Connect.
func (m *Manager) UseContextFields(fn ContextFieldsFunc) {
	m.contextFields = fn
}

// Connect opens the database, retrying transient failures, and configures the pool
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	})

	var gormDB *gorm.DB
	err := RetryOnTransientError(ctx, RetryConfigFrom(m.config), func(ctx context.Context) error {
		db, err := m.open()
		if err != nil {
			m.logger.Error("Failed to connect to database", map[string]any{
				"error": err.Error(),
			})
			return err
		}
		gormDB = db
		return nil
	}, m.classifier, m.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	pool, err := NewConnectionPool(gormDB, m.config.AcquireTimeout, m.classifier, m.timeProvider, m.logger)
	if err != nil {
		return nil, err
	}

	m.db = gormDB
	m.pool = pool
	m.healthChecker = NewHealthChecker(sqlDB, defaultHealthCheckPeriod, m.logger)
	m.healthChecker.StartMonitoring()

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":          m.config.Driver,
		"name":            m.config.Database,
		"max_open_conns":  m.config.MaxOpenConns,
		"max_idle_conns":  m.config.MaxIdleConns,
		"acquire_timeout": m.config.AcquireTimeout.String(),
	})
	return m.db, nil
}

func (m *Manager) open() (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch m.config.Driver {
	case DriverPostgres:
		dialector = postgres.Open(m.config.DSN())
	case DriverSQLite:
		dialector = sqlite.Open(m.config.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}

	// Transactions are demarcated by the transaction manager only; gorm must not
	// wrap single statements in transactions of its own.
	return gorm.Open(dialector, &gorm.Config{
		Logger: NewDatabaseLogger(
			m.logger, m.timeProvider, m.config.LogLevel, m.config.SlowQueryThreshold, m.contextFields,
		),
		NowFunc: func() time.Time {
			return m.timeProvider.Now()
		},
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Pool returns the connection pool, nil before Connect
func (m *Manager) Pool() *ConnectionPool {
	return m.pool
}

// HealthChecker returns the database health checker, nil before Connect
func (m *Manager) HealthChecker() *HealthChecker {
	return m.healthChecker
}

// Classifier returns the driver error classifier
func (m *Manager) Classifier() *ErrorClassifier {
	return m.classifier
}

// SchemaManager returns a schema manager bound to the database
func (m *Manager) SchemaManager() *migration.SchemaManager {
	return migration.NewSchemaManager(m.db, m.logger)
}

// Close stops monitoring and closes the database
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.healthChecker != nil {
		m.healthChecker.StopMonitoring()
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}
