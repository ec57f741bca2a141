package dto

import (
	"time"

	"github.com/amirhossein-jamali/transfer-processor/internal/domain/entity"
)

// CreateAccountRequest represents the API request for opening an account
type CreateAccountRequest struct {
	ID      string `json:"id" binding:"required"`
	Balance int64  `json:"balance"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID        string    `json:"id"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AccountListResponse represents the API response for listing accounts
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Count    int               `json:"count"`
}

// NewAccountResponse converts a domain account
func NewAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID,
		Balance:   account.Balance(),
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// HealthResponse represents the API response of the health check
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	InUse     int    `json:"connectionsInUse"`
	Open      int    `json:"connectionsOpen"`
	Idle      int    `json:"connectionsIdle"`
	MaxOpen   int    `json:"connectionsMax"`
	WaitCount int64  `json:"waitCount"`
}
