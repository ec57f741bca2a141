package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/transfer-processor/internal/app"
	coreport "github.com/amirhossein-jamali/transfer-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var env string

	rootCmd := &cobra.Command{
		Use:           "transfer-processor",
		Short:         "Account transfers executed as database units of work",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "environment to load (development, test, production)")

	rootCmd.AddCommand(
		newServeCommand(&env),
		newSchemaCommand(&env),
		newTransferCommand(&env),
		newAccountCommand(&env),
	)
	return rootCmd
}

// bootstrap loads configuration, builds the logger and wires the application
func bootstrap(ctx context.Context, env string) (*app.App, error) {
	cfg, err := config.LoadConfig(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.IsProduction())
	appLogger.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))

	a, err := app.New(ctx, cfg, appLogger, timeProvider.NewRealTimeProvider())
	if err != nil {
		appLogger.Error("Failed to start application", map[string]any{
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		return nil, err
	}
	return a, nil
}

// shutdown closes the application and flushes its logger
func shutdown(a *app.App) {
	if err := a.Close(); err != nil {
		a.Logger.Error("Failed to close application", map[string]any{
			"error": err.Error(),
		})
	}
	_ = a.Logger.Flush()
}

func newServeCommand(env *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd.Context(), *env)
			if err != nil {
				return err
			}
			defer shutdown(a)

			cfg := a.Config
			server := a.Server()

			serverErr := make(chan error, 1)
			go func() {
				a.Logger.Info("Starting server", map[string]any{
					"addr":        server.Addr,
					"env":         cfg.Environment,
					"demarcation": cfg.Transfer.Demarcation,
				})

				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for interrupt signal to gracefully shut down the server
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			select {
			case err := <-serverErr:
				a.Logger.Error("Failed to start server", map[string]any{
					"error": err.Error(),
				})
				return err
			case <-quit:
			}

			a.Logger.Info("Shutting down server...", nil)

			ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				a.Logger.Error("Server forced to shutdown", map[string]any{
					"error": err.Error(),
				})
			}

			a.Logger.Info("Server exited gracefully", nil)
			return nil
		},
	}
}
