package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget groups: which summary bucket a target counts toward.
const (
	BudgetGroupIncome   = "income"
	BudgetGroupFixed    = "fixed"
	BudgetGroupVariable = "variable"
)

// BudgetEntry is a user-entered target figure, independent of actual ledger
// rows. One entry per (user, group, category); CategoryID 0 means the target
// covers the whole group. Writes are upserts, there is no history.
type BudgetEntry struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	UserID     uint            `json:"user_id" gorm:"not null;uniqueIndex:idx_budget_user_group_cat"`
	Group      string          `json:"group" gorm:"column:grp;size:10;not null;uniqueIndex:idx_budget_user_group_cat"`
	CategoryID uint            `json:"category_id" gorm:"not null;default:0;uniqueIndex:idx_budget_user_group_cat"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// TableName sets the table name.
func (BudgetEntry) TableName() string {
	return "finance_budget_entries"
}

// ValidBudgetGroup reports whether s is a known budget group.
func ValidBudgetGroup(s string) bool {
	return s == BudgetGroupIncome || s == BudgetGroupFixed || s == BudgetGroupVariable
}
