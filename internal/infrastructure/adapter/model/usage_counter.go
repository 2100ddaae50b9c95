package model

import (
	"time"
)

// UsageCounter represents the database model for per-day free-tier counters
type UsageCounter struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Owner     string    `gorm:"not null;uniqueIndex:idx_usage_owner_date;size:255"`
	Date      string    `gorm:"not null;uniqueIndex:idx_usage_owner_date;size:10"`
	Count     int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for UsageCounter
func (UsageCounter) TableName() string {
	return "usage_counters"
}
