package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/transfer-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/api/middleware"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountUseCase usecase.AccountUseCase
	logger         coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accountUseCase usecase.AccountUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
		logger:         logger,
	}
}

// CreateAccount handles the POST /api/v1/accounts endpoint
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindError(c, err)
		return
	}

	account, err := h.accountUseCase.CreateAccount(c.Request.Context(), req.ID, req.Balance)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAccountResponse(account))
}

// GetAccount handles the GET /api/v1/accounts/:id endpoint
func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.accountUseCase.GetAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}

// ListAccounts handles the GET /api/v1/accounts endpoint
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.accountUseCase.ListAccounts(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	resp := dto.AccountListResponse{
		Accounts: make([]dto.AccountResponse, 0, len(accounts)),
		Count:    len(accounts),
	}
	for _, account := range accounts {
		resp.Accounts = append(resp.Accounts, dto.NewAccountResponse(account))
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteAccount handles the DELETE /api/v1/accounts/:id endpoint
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	if err := h.accountUseCase.DeleteAccount(c.Request.Context(), c.Param("id")); err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
