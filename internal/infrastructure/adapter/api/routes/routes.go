package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/transfer-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Transfer *handler.TransferHandler
	Account  *handler.AccountHandler
	Health   *handler.HealthHandler
	Metrics  http.Handler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	if h.Health != nil {
		router.GET("/health", h.Health.Health)
	}
	if h.Metrics != nil {
		router.GET("/metrics", gin.WrapH(h.Metrics))
	}

	v1 := router.Group("/api/v1")
	{
		v1.POST("/transfers", h.Transfer.Transfer)

		v1.POST("/accounts", h.Account.CreateAccount)
		v1.GET("/accounts", h.Account.ListAccounts)
		v1.GET("/accounts/:id", h.Account.GetAccount)
		v1.DELETE("/accounts/:id", h.Account.DeleteAccount)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
}
