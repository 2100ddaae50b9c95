package entity

import (
	"math"
	"strings"
	"time"

	errs "github.com/printa-studio/credits-ledger/internal/domain/error"
	coreport "github.com/printa-studio/credits-ledger/internal/domain/port/core"
)

// Account holds an owner's spendable credit balance and lifetime totals.
// The owner is an opaque identifier: either a stable user ID or an anonymous
// visitor ID sourced from a client cookie.
type Account struct {
	Owner          string
	balance        int64 // current spendable credits (private, never negative)
	TotalPurchased int64 // lifetime sum of purchase/refund amounts
	TotalSpent     int64 // lifetime sum of spend amounts
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewAccount creates a zero-balance account for the given owner
func NewAccount(owner string, timeProvider coreport.TimeProvider) (*Account, error) {
	if err := ValidateOwner(owner); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Account{
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ValidateOwner checks that an owner identifier is usable as a ledger key
func ValidateOwner(owner string) error {
	if strings.TrimSpace(owner) == "" {
		return errs.ErrInvalidOwner
	}
	return nil
}

// ValidateAmount checks that an amount is a positive integer that cannot wrap
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	return nil
}

// Balance returns the current spendable balance
func (a *Account) Balance() int64 {
	return a.balance
}

// SetBalance updates the balance directly (for internal use, like repositories)
func (a *Account) SetBalance(balance int64, timeProvider coreport.TimeProvider) {
	a.balance = balance
	a.UpdatedAt = timeProvider.Now()
}

// CanSpend checks whether the account covers a spend of the given amount
func (a *Account) CanSpend(amount int64) (bool, error) {
	if err := ValidateAmount(amount); err != nil {
		return false, err
	}
	return a.balance >= amount, nil
}

// ApplyCredit adds the amount to the balance and lifetime purchases
func (a *Account) ApplyCredit(amount int64, timeProvider coreport.TimeProvider) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if a.balance > math.MaxInt64-amount {
		return errs.ErrAmountOverflow
	}

	a.balance += amount
	a.TotalPurchased += amount
	a.UpdatedAt = timeProvider.Now()
	return nil
}

// ApplySpend subtracts the amount from the balance if sufficient credits exist
// and tracks it in lifetime spend
func (a *Account) ApplySpend(amount int64, timeProvider coreport.TimeProvider) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if a.balance < amount {
		return errs.NewInsufficientCreditsError(a.Owner, amount, a.balance)
	}

	a.balance -= amount
	a.TotalSpent += amount
	a.UpdatedAt = timeProvider.Now()
	return nil
}

// Absorb merges another account's balance and totals into this one.
// Used during identity reconciliation; the absorbed side is consumed.
func (a *Account) Absorb(other *Account, timeProvider coreport.TimeProvider) error {
	if other == nil {
		return nil
	}
	if a.balance > math.MaxInt64-other.balance {
		return errs.ErrAmountOverflow
	}

	a.balance += other.balance
	a.TotalPurchased += other.TotalPurchased
	a.TotalSpent += other.TotalSpent
	a.UpdatedAt = timeProvider.Now()
	return nil
}
