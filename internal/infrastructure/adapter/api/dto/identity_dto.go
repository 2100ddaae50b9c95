package dto

// MigrateRequest represents the API request for reconciling an anonymous
// identity into an authenticated one
type MigrateRequest struct {
	NewOwner  string `json:"newOwner" binding:"required"`
	AnonOwner string `json:"anonOwner" binding:"required"`
}

// MigrateResponse represents the API response for a completed migration
type MigrateResponse struct {
	NewOwner      string `json:"newOwner"`
	AnonOwner     string `json:"anonOwner"`
	AccountMerged bool   `json:"accountMerged"`
	Transactions  int64  `json:"transactionsMoved"`
	UsageCounters int64  `json:"usageCountersMerged"`
	Content       int64  `json:"contentMoved"`
}
