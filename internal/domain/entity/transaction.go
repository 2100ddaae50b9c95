package entity

import (
	"fmt"
	"time"

	errs "github.com/printa-studio/credits-ledger/internal/domain/error"
	coreport "github.com/printa-studio/credits-ledger/internal/domain/port/core"
)

// TransactionKind discriminates the direction and intent of a ledger entry
type TransactionKind string

// Transaction kinds
const (
	KindPurchase TransactionKind = "purchase"
	KindSpend    TransactionKind = "spend"
	KindRefund   TransactionKind = "refund"
)

// Transaction is one immutable entry in an owner's append-only ledger log.
// Amount is an unsigned magnitude; the kind determines the sign.
type Transaction struct {
	ID           uint64
	Owner        string
	Kind         TransactionKind
	Amount       int64 // magnitude, always positive
	Description  string
	RelatedOrder *uint64 // weak reference to the order that caused this entry
	CreatedAt    time.Time
}

// NewTransaction creates a new ledger entry with basic validation
func NewTransaction(
	owner string,
	kind TransactionKind,
	amount int64,
	description string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if err := ValidateOwner(owner); err != nil {
		return nil, err
	}
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	if !isValidKind(kind) {
		return nil, fmt.Errorf("%w: unknown transaction kind %q", errs.ErrInvalidRequest, kind)
	}

	return &Transaction{
		Owner:       owner,
		Kind:        kind,
		Amount:      amount,
		Description: description,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// WithRelatedOrder attaches the causing order's ID to the entry
func (t *Transaction) WithRelatedOrder(orderID uint64) *Transaction {
	t.RelatedOrder = &orderID
	return t
}

// SignedAmount returns the amount with the sign implied by the kind:
// positive for purchase/refund, negative for spend
func (t *Transaction) SignedAmount() int64 {
	if t.Kind == KindSpend {
		return -t.Amount
	}
	return t.Amount
}

// IsCredit returns true if this entry increases the owner's balance
func (t *Transaction) IsCredit() bool {
	return t.Kind == KindPurchase || t.Kind == KindRefund
}

// isValidKind validates the kind discriminator
func isValidKind(kind TransactionKind) bool {
	switch kind {
	case KindPurchase, KindSpend, KindRefund:
		return true
	}
	return false
}
