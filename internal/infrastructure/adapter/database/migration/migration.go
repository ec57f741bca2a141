package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/transfer-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/model"
)

// SchemaManager creates the tables the service needs when they are missing.
// It never alters or drops existing tables.
type SchemaManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewSchemaManager creates a new schema manager
func NewSchemaManager(db *gorm.DB, logger coreport.Logger) *SchemaManager {
	return &SchemaManager{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema creates the accounts table if it does not exist
func (m *SchemaManager) EnsureSchema(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	db := m.db.WithContext(ctx)
	if db.Migrator().HasTable(&model.Account{}) {
		m.logger.Debug("Schema already present", map[string]any{
			"table": model.Account{}.TableName(),
		})
		return nil
	}

	m.logger.Info("Creating schema", map[string]any{
		"table": model.Account{}.TableName(),
	})
	if err := db.Migrator().CreateTable(&model.Account{}); err != nil {
		m.logger.Error("Failed to create schema", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to create %s table: %w", model.Account{}.TableName(), err)
	}
	return nil
}

// DropSchema drops the accounts table. Used by tests and the schema command.
func (m *SchemaManager) DropSchema(ctx context.Context) error {
	m.logger.Warn("Dropping schema", map[string]any{
		"table": model.Account{}.TableName(),
	})
	return m.db.WithContext(ctx).Migrator().DropTable(&model.Account{})
}
