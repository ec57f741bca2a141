package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/database"
)

// DatabaseHealth pings the database and keeps the pool snapshot of the latest check
type DatabaseHealth interface {
	Check(ctx context.Context) error
	GetMetrics() database.ConnectionPoolMetrics
}

// HealthHandler serves the health endpoint
type HealthHandler struct {
	health DatabaseHealth
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(health DatabaseHealth) *HealthHandler {
	return &HealthHandler{health: health}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Database: "up"}
	status := http.StatusOK
	if err := h.health.Check(ctx); err != nil {
		resp.Status = "degraded"
		resp.Database = "down"
		status = http.StatusServiceUnavailable
	}

	metrics := h.health.GetMetrics()
	resp.InUse = metrics.InUse
	resp.Open = metrics.OpenConnections
	resp.Idle = metrics.IdleConnections
	resp.MaxOpen = metrics.MaxOpenConnections
	resp.WaitCount = metrics.WaitCount

	c.JSON(status, resp)
}
