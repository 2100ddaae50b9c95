package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientCredits = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidOwner        = 4003
	CodeAmountOverflow      = 4004
	CodeAccountNotFound     = 4040
	CodeMigrationConflict   = 4090

	// 5xxx - Server errors
	CodeInternalServer   = 5000
	CodeLedgerDivergence = 5001
	CodeStorageFailure   = 5030
)

// Base error types
var (
	// ErrInsufficientCredits is returned when a spend exceeds the available balance
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrInvalidAmount is returned when an amount is zero or negative
	ErrInvalidAmount = errors.New("amount must be a positive integer")

	// ErrInvalidOwner is returned when an owner identifier is empty
	ErrInvalidOwner = errors.New("owner identifier cannot be empty")

	// ErrAmountOverflow is returned when applying an amount would wrap the balance
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrAccountNotFound is returned by strict read paths when no account exists
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrMigrationConflict is returned when a migration cannot be safely resolved,
	// e.g. an owner being migrated onto itself
	ErrMigrationConflict = errors.New("migration conflict")

	// ErrLedgerDivergence is returned when a stored balance no longer matches the
	// signed sum of the owner's transaction log. Mutations for the owner are
	// refused once this is detected.
	ErrLedgerDivergence = errors.New("ledger divergence detected")

	// ErrStorageUnavailable is returned when the durable store could not complete
	// the operation
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientCredits):
		return CodeInsufficientCredits
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidOwner):
		return CodeInvalidOwner
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrMigrationConflict):
		return CodeMigrationConflict
	case errors.Is(err, ErrLedgerDivergence):
		return CodeLedgerDivergence
	case errors.Is(err, ErrStorageUnavailable):
		return CodeStorageFailure
	default:
		return CodeInternalServer
	}
}

// InsufficientCreditsError provides detailed error information for a rejected spend
type InsufficientCreditsError struct {
	Owner     string
	Requested int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits for owner %s: requested %d, available %d",
		e.Owner, e.Requested, e.Available)
}

// Is checks if the target error is an ErrInsufficientCredits
func (e *InsufficientCreditsError) Is(target error) bool {
	return target == ErrInsufficientCredits
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientCreditsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_credits",
		"owner":      e.Owner,
		"requested":  e.Requested,
		"available":  e.Available,
		"error_code": CodeInsufficientCredits,
	}
}

// NewInsufficientCreditsError creates a new detailed insufficient credits error
func NewInsufficientCreditsError(owner string, requested, available int64) error {
	return &InsufficientCreditsError{
		Owner:     owner,
		Requested: requested,
		Available: available,
	}
}

// LedgerError represents an error raised while mutating an owner's ledger
type LedgerError struct {
	Owner     string
	Amount    int64
	Operation string
	Err       error
}

// Error implements the error interface for LedgerError
func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger %s failed for owner %s (amount: %d): %v",
		e.Operation, e.Owner, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "ledger_error",
		"owner":      e.Owner,
		"amount":     e.Amount,
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewLedgerError creates a detailed ledger error
func NewLedgerError(owner string, amount int64, operation string, err error) error {
	return &LedgerError{
		Owner:     owner,
		Amount:    amount,
		Operation: operation,
		Err:       err,
	}
}

// MigrationError represents a failure while re-owning an anonymous visitor's records
type MigrationError struct {
	NewOwner  string
	AnonOwner string
	Stage     string
	Err       error
}

// Error implements the error interface
func (e *MigrationError) Error() string {
	return fmt.Sprintf("migration of %s into %s failed at %s: %v",
		e.AnonOwner, e.NewOwner, e.Stage, e.Err)
}

// Unwrap returns the underlying error
func (e *MigrationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *MigrationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "migration_error",
		"new_owner":  e.NewOwner,
		"anon_owner": e.AnonOwner,
		"stage":      e.Stage,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewMigrationError creates a detailed migration error
func NewMigrationError(newOwner, anonOwner, stage string, err error) error {
	return &MigrationError{
		NewOwner:  newOwner,
		AnonOwner: anonOwner,
		Stage:     stage,
		Err:       err,
	}
}

// LedgerDivergenceError carries the observed mismatch between a stored balance
// and the transaction-log sum for an owner
type LedgerDivergenceError struct {
	Owner         string
	StoredBalance int64
	LogSum        int64
}

// Error implements the error interface
func (e *LedgerDivergenceError) Error() string {
	return fmt.Sprintf("ledger divergence for owner %s: stored balance %d, transaction log sum %d",
		e.Owner, e.StoredBalance, e.LogSum)
}

// Is checks if the target error is an ErrLedgerDivergence
func (e *LedgerDivergenceError) Is(target error) bool {
	return target == ErrLedgerDivergence
}

// LogFields returns a map of fields for structured logging
func (e *LedgerDivergenceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "ledger_divergence",
		"owner":          e.Owner,
		"stored_balance": e.StoredBalance,
		"log_sum":        e.LogSum,
		"error_code":     CodeLedgerDivergence,
	}
}

// NewLedgerDivergenceError creates a new detailed ledger divergence error
func NewLedgerDivergenceError(owner string, storedBalance, logSum int64) error {
	return &LedgerDivergenceError{
		Owner:         owner,
		StoredBalance: storedBalance,
		LogSum:        logSum,
	}
}

// IsInsufficientCreditsError checks if the error is related to insufficient credits
func IsInsufficientCreditsError(err error) bool {
	return errors.Is(err, ErrInsufficientCredits)
}

// IsAccountNotFoundError checks if the error is an account not found error
func IsAccountNotFoundError(err error) bool {
	return errors.Is(err, ErrAccountNotFound)
}

// IsMigrationConflictError checks if the error is a migration conflict
func IsMigrationConflictError(err error) bool {
	return errors.Is(err, ErrMigrationConflict)
}

// IsLedgerDivergenceError checks if the error is a detected ledger divergence
func IsLedgerDivergenceError(err error) bool {
	return errors.Is(err, ErrLedgerDivergence)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}
