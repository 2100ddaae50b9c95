package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/printa-studio/credits-ledger/internal/domain/error"
	coreport "github.com/printa-studio/credits-ledger/internal/domain/port/core"
	"github.com/printa-studio/credits-ledger/internal/domain/port/usecase"
	"github.com/printa-studio/credits-ledger/internal/infrastructure/adapter/api/dto"
)

// IdentityHandler handles identity reconciliation HTTP requests
type IdentityHandler struct {
	identityUseCase usecase.IdentityUseCase
	logger          coreport.Logger
}

// NewIdentityHandler creates a new identity handler instance
func NewIdentityHandler(identityUseCase usecase.IdentityUseCase, logger coreport.Logger) *IdentityHandler {
	return &IdentityHandler{
		identityUseCase: identityUseCase,
		logger:          logger,
	}
}

// Migrate handles the POST /identity/migrate endpoint
func (h *IdentityHandler) Migrate(c *gin.Context) {
	var req dto.MigrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid migrate request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.identityUseCase.Migrate(c.Request.Context(), req.NewOwner, req.AnonOwner)
	if err != nil {
		statusCode := http.StatusInternalServerError
		message := "Internal server error"

		switch {
		case errors.Is(err, domainerr.ErrMigrationConflict):
			statusCode = http.StatusConflict
			message = "Cannot migrate an owner onto itself"
		case errors.Is(err, domainerr.ErrInvalidOwner):
			statusCode = http.StatusBadRequest
			message = err.Error()
		case errors.Is(err, domainerr.ErrStorageUnavailable):
			statusCode = http.StatusServiceUnavailable
			message = "Storage unavailable"
		default:
			h.logger.Error("Identity migration failed", map[string]any{
				"newOwner":  req.NewOwner,
				"anonOwner": req.AnonOwner,
				"error":     err.Error(),
			})
		}

		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusOK, dto.MigrateResponse{
		NewOwner:      result.NewOwner,
		AnonOwner:     result.AnonOwner,
		AccountMerged: result.AccountMerged,
		Transactions:  result.Transactions,
		UsageCounters: result.UsageCounters,
		Content:       result.Content.Total(),
	})
}
