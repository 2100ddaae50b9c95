package model

import (
	"time"
)

// The content tables live outside the ledger but share its owner key space.
// The service only ever touches their owner column, during identity
// migration; everything else about them belongs to the web application.

// Design represents a generated artwork owned by a visitor or user
type Design struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Owner     string    `gorm:"not null;index;size:255"`
	Title     string    `gorm:"size:255"`
	ImageURL  string    `gorm:"type:text"`
	Published bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Design
func (Design) TableName() string {
	return "designs"
}

// Like represents a gallery like placed by an owner
type Like struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Owner     string    `gorm:"not null;index;size:255"`
	DesignID  uint64    `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Like
func (Like) TableName() string {
	return "likes"
}

// Order represents a print-product order placed by an owner
type Order struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Owner     string    `gorm:"not null;index;size:255"`
	DesignID  uint64    `gorm:"index"`
	Product   string    `gorm:"size:100"`
	Status    string    `gorm:"size:50"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}

// PortfolioItem represents a marketplace portfolio entry owned by a creator
type PortfolioItem struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Owner     string    `gorm:"not null;index;size:255"`
	DesignID  uint64    `gorm:"index"`
	Position  int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for PortfolioItem
func (PortfolioItem) TableName() string {
	return "portfolio_items"
}
