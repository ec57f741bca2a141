package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/transfer-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-processor/internal/domain/port/usecase"
	accountUseCase "github.com/amirhossein-jamali/transfer-processor/internal/domain/usecase/account"
	"github.com/amirhossein-jamali/transfer-processor/internal/domain/usecase/transaction"
	"github.com/amirhossein-jamali/transfer-processor/internal/domain/usecase/transfer"
	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/config"
)

// App holds the wired components of the service
type App struct {
	Config       *config.Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider

	DB       *database.Manager
	Pool     *database.ConnectionPool
	Registry *transaction.ConnectionRegistry
	Manager  *transaction.TransactionManager
	Metrics  *metrics.PrometheusMetrics

	Accounts        *repository.AccountRepository
	AccountUseCase  *accountUseCase.AccountUseCase
	TransferUseCase usecase.TransferUseCase
}

// New connects to the database and wires repositories, the transaction manager and use cases.
// The caller must Close the returned App.
func New(ctx context.Context, cfg *config.Config, logger coreport.Logger, timeProvider coreport.TimeProvider) (*App, error) {
	dbConfig := database.CreateConfigFromViperConfig(cfg)

	dbManager := database.NewManager(dbConfig, logger, timeProvider)
	dbManager.UseContextFields(unitOfWorkFields)
	if _, err := dbManager.Connect(ctx); err != nil {
		return nil, err
	}

	a := &App{
		Config:       cfg,
		Logger:       logger,
		TimeProvider: timeProvider,
		DB:           dbManager,
		Pool:         dbManager.Pool(),
		Registry:     transaction.NewConnectionRegistry(),
		Metrics:      metrics.NewPrometheusMetrics(),
	}

	if err := a.wire(ctx); err != nil {
		if closeErr := dbManager.Close(); closeErr != nil {
			logger.Warn("Failed to close database after startup failure", map[string]any{
				"error": closeErr.Error(),
			})
		}
		return nil, err
	}
	return a, nil
}

func (a *App) wire(ctx context.Context) error {
	cfg := a.Config

	if cfg.Database.EnsureSchema {
		if err := a.DB.SchemaManager().EnsureSchema(ctx); err != nil {
			return err
		}
	}

	sqlDB, err := a.DB.DB().DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	if err := a.Metrics.Register(database.NewPoolStatsCollector(sqlDB, cfg.Database.Driver)); err != nil {
		return fmt.Errorf("failed to register pool metrics: %w", err)
	}

	a.Manager = transaction.NewTransactionManager(a.Pool, a.Registry, a.TimeProvider, a.Metrics, a.Logger)
	a.Accounts = repository.NewAccountRepository(a.Registry, a.Pool, a.DB.Classifier(), a.TimeProvider, a.Logger)
	a.AccountUseCase = accountUseCase.NewAccountUseCase(a.Accounts, a.TimeProvider, a.Logger)

	blocked := cfg.Transfer.BlockedAccounts
	if len(blocked) == 0 {
		blocked = transfer.DefaultBlockedAccounts
	}
	logic := transfer.NewLogic(a.Accounts, transfer.NewBlockedAccountPolicy(blocked), a.Logger)

	a.TransferUseCase, err = transfer.New(cfg.Transfer.Demarcation, a.Manager, logic, a.Metrics, a.Logger)
	if err != nil {
		return err
	}

	if len(cfg.Transfer.SeedAccounts) > 0 {
		created, err := a.AccountUseCase.SeedAccounts(ctx, cfg.Transfer.SeedAccounts)
		if err != nil {
			return fmt.Errorf("failed to seed accounts: %w", err)
		}
		a.Logger.Info("Seed accounts ensured", map[string]any{
			"configured": len(cfg.Transfer.SeedAccounts),
			"created":    created,
		})
	}

	a.Logger.Info("Transfer processor wired", map[string]any{
		"demarcation":      cfg.Transfer.Demarcation,
		"blocked_accounts": blocked,
	})
	return nil
}

// Router builds the gin engine serving the HTTP API
func (a *App) Router() *gin.Engine {
	router := gin.New()
	routes.SetupMiddlewares(router, a.Logger)
	routes.SetupRoutes(router, routes.Handlers{
		Transfer: handler.NewTransferHandler(a.TransferUseCase, a.Logger),
		Account:  handler.NewAccountHandler(a.AccountUseCase, a.Logger),
		Health:   handler.NewHealthHandler(a.DB.HealthChecker()),
		Metrics:  a.Metrics.Handler(),
	})
	return router
}

// Server builds the HTTP server for the configured address and timeouts
func (a *App) Server() *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", a.Config.Server.Host, a.Config.Server.Port),
		Handler:           a.Router(),
		ReadTimeout:       a.Config.Server.ReadTimeout,
		WriteTimeout:      a.Config.Server.WriteTimeout,
		ReadHeaderTimeout: a.Config.Server.ReadHeaderTimeout,
		IdleTimeout:       a.Config.Server.IdleTimeout,
	}
}

// Close releases the database. Units of work still open at this point are reported.
func (a *App) Close() error {
	if active := a.Registry.Active(); active > 0 {
		a.Logger.Warn("Closing with units of work still active", map[string]any{
			"active": active,
		})
	}
	return a.DB.Close()
}

func unitOfWorkFields(ctx context.Context) map[string]any {
	if id := transaction.UnitOfWorkID(ctx); id != "" {
		return map[string]any{"unit_of_work": id}
	}
	return nil
}
