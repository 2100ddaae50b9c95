package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	domainerr "github.com/printa-studio/credits-ledger/internal/domain/error"
	coreport "github.com/printa-studio/credits-ledger/internal/domain/port/core"
	"github.com/printa-studio/credits-ledger/internal/domain/port/usecase"
	"github.com/printa-studio/credits-ledger/internal/infrastructure/adapter/api/dto"
)

const defaultHistoryLimit = 50

// LedgerHandler handles credit ledger HTTP requests
type LedgerHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewLedgerHandler creates a new ledger handler instance
func NewLedgerHandler(ledgerUseCase usecase.LedgerUseCase, logger coreport.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

// GetBalance handles the GET /credits/{owner}/balance endpoint
func (h *LedgerHandler) GetBalance(c *gin.Context) {
	owner := c.Param("owner")

	result, err := h.ledgerUseCase.GetBalance(c.Request.Context(), owner)
	if err != nil {
		h.respondError(c, owner, "get balance", err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		Owner:          result.Owner,
		Balance:        result.Balance,
		TotalPurchased: result.TotalPurchased,
		TotalSpent:     result.TotalSpent,
	})
}

// Spend handles the POST /credits/{owner}/spend endpoint
func (h *LedgerHandler) Spend(c *gin.Context) {
	owner := c.Param("owner")

	var req dto.SpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid spend request format", map[string]any{
			"owner": owner,
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.ledgerUseCase.Spend(c.Request.Context(), usecase.SpendRequest{
		Owner:        owner,
		Amount:       req.Amount,
		Description:  req.Description,
		RelatedOrder: req.RelatedOrder,
	})
	if err != nil {
		h.respondError(c, owner, "spend", err)
		return
	}

	c.JSON(http.StatusOK, dto.MutationResponse{
		Owner:   owner,
		Success: result.Success,
		Balance: result.NewBalance,
	})
}

// AddCredits handles the POST /credits/{owner}/add endpoint
func (h *LedgerHandler) AddCredits(c *gin.Context) {
	owner := c.Param("owner")

	var req dto.AddCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid add credits request format", map[string]any{
			"owner": owner,
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.ledgerUseCase.AddCredits(c.Request.Context(), usecase.AddCreditsRequest{
		Owner:       owner,
		Amount:      req.Amount,
		Description: req.Description,
		Refund:      req.Refund,
	})
	if err != nil {
		h.respondError(c, owner, "add credits", err)
		return
	}

	c.JSON(http.StatusOK, dto.MutationResponse{
		Owner:   owner,
		Success: result.Success,
		Balance: result.NewBalance,
	})
}

// ListTransactions handles the GET /credits/{owner}/transactions endpoint
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	owner := c.Param("owner")

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Invalid limit parameter",
			})
			return
		}
		limit = parsed
	}

	transactions, err := h.ledgerUseCase.ListTransactions(c.Request.Context(), owner, limit)
	if err != nil {
		h.respondError(c, owner, "list transactions", err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		items = append(items, dto.TransactionResponse{
			ID:           t.ID,
			Kind:         string(t.Kind),
			Amount:       t.Amount,
			Description:  t.Description,
			RelatedOrder: t.RelatedOrder,
			CreatedAt:    t.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, dto.TransactionListResponse{
		Owner:        owner,
		Transactions: items,
	})
}

// Verify handles the GET /credits/{owner}/verify endpoint
func (h *LedgerHandler) Verify(c *gin.Context) {
	owner := c.Param("owner")

	result, err := h.ledgerUseCase.Audit(c.Request.Context(), owner)
	if err != nil && !domainerr.IsLedgerDivergenceError(err) {
		h.respondError(c, owner, "verify", err)
		return
	}

	// A divergence is reported in the payload, not hidden behind a 5xx
	c.JSON(http.StatusOK, dto.VerifyResponse{
		Owner:         result.Owner,
		StoredBalance: result.StoredBalance,
		LogSum:        result.LogSum,
		Consistent:    result.Consistent,
	})
}

// respondError maps domain errors to HTTP responses
func (h *LedgerHandler) respondError(c *gin.Context, owner, operation string, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case domainerr.IsInsufficientCreditsError(err):
		statusCode = http.StatusPaymentRequired
		message = err.Error()
	case errors.Is(err, domainerr.ErrInvalidAmount), errors.Is(err, domainerr.ErrInvalidOwner),
		errors.Is(err, domainerr.ErrAmountOverflow):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domainerr.ErrAccountNotFound):
		statusCode = http.StatusNotFound
		message = "Account not found"
	case domainerr.IsLedgerDivergenceError(err):
		statusCode = http.StatusConflict
		message = "Ledger is inconsistent for this owner"
	case errors.Is(err, domainerr.ErrStorageUnavailable):
		statusCode = http.StatusServiceUnavailable
		message = "Storage unavailable"
	}

	if statusCode >= http.StatusInternalServerError {
		h.logger.Error("Ledger operation failed", map[string]any{
			"owner":     owner,
			"operation": operation,
			"error":     err.Error(),
		})
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}
