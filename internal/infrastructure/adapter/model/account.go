package model

import (
	"time"
)

// Account represents the database model for credit accounts
type Account struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	Owner          string    `gorm:"uniqueIndex;not null;size:255"`
	Balance        int64     `gorm:"not null;default:0"`
	TotalPurchased int64     `gorm:"not null;default:0"`
	TotalSpent     int64     `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "credit_accounts"
}
