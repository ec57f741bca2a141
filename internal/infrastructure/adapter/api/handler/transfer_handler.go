package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/transfer-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/api/middleware"
)

// TransferHandler handles transfer-related HTTP requests
type TransferHandler struct {
	transferUseCase usecase.TransferUseCase
	logger          coreport.Logger
}

// NewTransferHandler creates a new transfer handler instance
func NewTransferHandler(transferUseCase usecase.TransferUseCase, logger coreport.Logger) *TransferHandler {
	return &TransferHandler{
		transferUseCase: transferUseCase,
		logger:          logger,
	}
}

// Transfer handles the POST /api/v1/transfers endpoint
func (h *TransferHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindError(c, err)
		return
	}

	if err := h.transferUseCase.Transfer(c.Request.Context(), req.FromAccountID, req.ToAccountID, req.Amount); err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransferResponse{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        req.Amount,
		Status:        "committed",
	})
}
