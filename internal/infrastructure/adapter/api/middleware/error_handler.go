package middleware

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/transfer-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transfer-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-processor/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware recovers from panics and returns appropriate error responses
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": c.GetString(RequestIDKey),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.CodeInternalServer,
					Message: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}

// StatusCode maps a domain error to its HTTP status
func StatusCode(err error) int {
	switch domainerr.ErrorCode(err) {
	case domainerr.CodeInvalidAmount,
		domainerr.CodeInvalidAccountID,
		domainerr.CodeSameAccount,
		domainerr.CodeAmountOverflow,
		domainerr.CodeConstraintViolation:
		return http.StatusBadRequest
	case domainerr.CodeAccountNotFound:
		return http.StatusNotFound
	case domainerr.CodeDuplicateAccount:
		return http.StatusConflict
	case domainerr.CodeBusinessInvariant:
		return http.StatusUnprocessableEntity
	case domainerr.CodePoolExhausted:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as an ErrorResponse. Server errors are logged and their
// details hidden from the client.
func RespondError(c *gin.Context, logger coreport.Logger, err error) {
	status := StatusCode(err)
	message := err.Error()

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"path":       c.Request.URL.Path,
			"request_id": c.GetString(RequestIDKey),
			"error":      err.Error(),
		})
		if status == http.StatusServiceUnavailable {
			message = "Service temporarily unavailable"
		} else {
			message = "Internal server error"
		}
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// RespondBindError writes a 400 response for a malformed request body
func RespondBindError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    4000,
		Message: "Invalid request format: " + err.Error(),
	})
}
