package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow is a single dated transaction in a user's cash-flow ledger.
// Amount is always non-negative; Flow decides the sign during aggregation.
// Version implements optimistic concurrency: updates must present the version
// they read and fail on mismatch. Deletes are permanent, no soft delete.
type LedgerRow struct {
	ID         uint            `json:"row_id" gorm:"primaryKey"`
	UserID     uint            `json:"user_id" gorm:"index;not null"`
	Name       string          `json:"name" gorm:"size:100"`
	CategoryID uint            `json:"category_id" gorm:"index;not null"`
	Term       string          `json:"term" gorm:"size:10;not null"`
	Date       time.Time       `json:"date" gorm:"type:date;not null"`
	Flow       string          `json:"flow" gorm:"size:10;not null"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Version    uint            `json:"version" gorm:"not null;default:1"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	Category   Category        `json:"-" gorm:"foreignKey:CategoryID"`
}

// TableName sets the table name.
func (LedgerRow) TableName() string {
	return "finance_rows"
}
