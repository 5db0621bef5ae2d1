package models

import (
	"time"
)

// Term axis values: whether a category/row is recurring or discretionary.
const (
	TermFixed    = "Fixed"
	TermVariable = "Variable"
)

// Flow axis values: whether a row represents money in or money out.
const (
	FlowIncome  = "Income"
	FlowExpense = "Expense"
)

// WageCategoryName is the well-known per-user default category. It is seeded
// lazily on the first category fetch for a user and cannot be deleted.
const WageCategoryName = "Wage"

// Category is a per-user spending/income category. Every ledger row references
// one. Names are unique within a user (exact match). Deletes are hard deletes
// so a name can be re-created after removal.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_categories_user_name"`
	Name      string    `json:"name" gorm:"size:50;not null;uniqueIndex:idx_categories_user_name"`
	Term      string    `json:"term" gorm:"size:10;not null;default:Variable"`
	Flow      string    `json:"flow" gorm:"size:10;not null;default:Expense"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (Category) TableName() string {
	return "finance_categories"
}

// ValidTerm reports whether s is one of the term axis values.
func ValidTerm(s string) bool {
	return s == TermFixed || s == TermVariable
}

// ValidFlow reports whether s is one of the flow axis values.
func ValidFlow(s string) bool {
	return s == FlowIncome || s == FlowExpense
}
