package dto

import "time"

// BalanceResponse represents the API response for an owner's balance
type BalanceResponse struct {
	Owner          string `json:"owner"`
	Balance        int64  `json:"balance"`
	TotalPurchased int64  `json:"totalPurchased"`
	TotalSpent     int64  `json:"totalSpent"`
}

// SpendRequest represents the API request for deducting credits
type SpendRequest struct {
	Amount       int64   `json:"amount" binding:"required,gt=0"`
	Description  string  `json:"description"`
	RelatedOrder *uint64 `json:"relatedOrderId"`
}

// AddCreditsRequest represents the API request for granting credits
type AddCreditsRequest struct {
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description"`
	Refund      bool   `json:"refund"`
}

// MutationResponse represents the API response for a balance mutation
type MutationResponse struct {
	Owner   string `json:"owner"`
	Success bool   `json:"success"`
	Balance int64  `json:"balance"`
}

// TransactionResponse represents a single ledger entry in API responses
type TransactionResponse struct {
	ID           uint64    `json:"id"`
	Kind         string    `json:"kind"`
	Amount       int64     `json:"amount"`
	Description  string    `json:"description,omitempty"`
	RelatedOrder *uint64   `json:"relatedOrderId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TransactionListResponse represents the API response for an owner's history
type TransactionListResponse struct {
	Owner        string                `json:"owner"`
	Transactions []TransactionResponse `json:"transactions"`
}

// VerifyResponse represents the API response for a ledger consistency check
type VerifyResponse struct {
	Owner         string `json:"owner"`
	StoredBalance int64  `json:"storedBalance"`
	LogSum        int64  `json:"logSum"`
	Consistent    bool   `json:"consistent"`
}
