package model

import (
	"time"
)

// CreditTransaction represents the database model for ledger log entries.
// Rows are append-only: nothing updates or deletes them, only the owner
// column is reassigned during identity migration.
type CreditTransaction struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	Owner          string    `gorm:"not null;index;size:255"`
	Kind           string    `gorm:"not null;size:20"`
	Amount         int64     `gorm:"not null"`
	Description    string    `gorm:"type:text"`
	RelatedOrderID *uint64   `gorm:"index"`
	CreatedAt      time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for CreditTransaction
func (CreditTransaction) TableName() string {
	return "credit_transactions"
}
