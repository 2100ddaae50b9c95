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

// UsageHandler handles free-tier usage HTTP requests
type UsageHandler struct {
	usageUseCase usecase.UsageUseCase
	logger       coreport.Logger
}

// NewUsageHandler creates a new usage handler instance
func NewUsageHandler(usageUseCase usecase.UsageUseCase, logger coreport.Logger) *UsageHandler {
	return &UsageHandler{
		usageUseCase: usageUseCase,
		logger:       logger,
	}
}

// GetUsage handles the GET /usage/{owner} endpoint
func (h *UsageHandler) GetUsage(c *gin.Context) {
	owner := c.Param("owner")

	result, err := h.usageUseCase.GetUsage(c.Request.Context(), owner)
	if err != nil {
		h.respondError(c, owner, err)
		return
	}

	c.JSON(http.StatusOK, toUsageResponse(result))
}

// IncrementUsage handles the POST /usage/{owner}/increment endpoint
func (h *UsageHandler) IncrementUsage(c *gin.Context) {
	owner := c.Param("owner")

	result, err := h.usageUseCase.IncrementUsage(c.Request.Context(), owner)
	if err != nil {
		h.respondError(c, owner, err)
		return
	}

	c.JSON(http.StatusOK, toUsageResponse(result))
}

func toUsageResponse(result *usecase.UsageResult) dto.UsageResponse {
	return dto.UsageResponse{
		Owner:   result.Owner,
		Date:    result.Date,
		Count:   result.Count,
		Limit:   result.Limit,
		Allowed: result.Allowed,
	}
}

func (h *UsageHandler) respondError(c *gin.Context, owner string, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, domainerr.ErrInvalidOwner):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domainerr.ErrStorageUnavailable):
		statusCode = http.StatusServiceUnavailable
		message = "Storage unavailable"
	default:
		h.logger.Error("Usage operation failed", map[string]any{
			"owner": owner,
			"error": err.Error(),
		})
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}
