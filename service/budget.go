package service

import (
	"adultease/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetSummaryRow joins user-entered budget targets with actual figures from
// the aggregation engine. Composite fields are always derived from their
// parts: total expense = fixed + variable, net profit = income - expense,
// on both the budget and the actual side.
type BudgetSummaryRow struct {
	TotalBudgetIncome          decimal.Decimal `json:"total_budget_income"`
	TotalActualIncome          decimal.Decimal `json:"total_actual_income"`
	TotalBudgetFixedExpense    decimal.Decimal `json:"total_budget_fixed_expense"`
	TotalActualFixedExpense    decimal.Decimal `json:"total_actual_fixed_expense"`
	TotalBudgetVariableExpense decimal.Decimal `json:"total_budget_variable_expense"`
	TotalActualVariableExpense decimal.Decimal `json:"total_actual_variable_expense"`
	TotalBudgetExpense         decimal.Decimal `json:"total_budget_expense"`
	TotalActualExpense         decimal.Decimal `json:"total_actual_expense"`
	NetBudgetProfit            decimal.Decimal `json:"net_budget_profit"`
	NetActualProfit            decimal.Decimal `json:"net_actual_profit"`
}

// BuildBudgetSummary merges budget entries with actual sums. Pure function;
// missing budget entries count as zero, so a user with no targets and no rows
// yields an all-zero summary.
func BuildBudgetSummary(entries []models.BudgetEntry, sums AggregateSums) BudgetSummaryRow {
	var row BudgetSummaryRow

	for _, e := range entries {
		switch e.Group {
		case models.BudgetGroupIncome:
			row.TotalBudgetIncome = row.TotalBudgetIncome.Add(e.Amount)
		case models.BudgetGroupFixed:
			row.TotalBudgetFixedExpense = row.TotalBudgetFixedExpense.Add(e.Amount)
		case models.BudgetGroupVariable:
			row.TotalBudgetVariableExpense = row.TotalBudgetVariableExpense.Add(e.Amount)
		}
	}

	row.TotalBudgetExpense = row.TotalBudgetFixedExpense.Add(row.TotalBudgetVariableExpense)
	row.NetBudgetProfit = row.TotalBudgetIncome.Sub(row.TotalBudgetExpense)

	row.TotalActualIncome = sums.Income
	row.TotalActualFixedExpense = sums.FixedExpense
	row.TotalActualVariableExpense = sums.VariableExpense
	row.TotalActualExpense = row.TotalActualFixedExpense.Add(row.TotalActualVariableExpense)
	row.NetActualProfit = row.TotalActualIncome.Sub(row.TotalActualExpense)

	return row
}

// FetchBudgetSummary loads the user's budget entries and current sums and
// merges them into one summary row.
func FetchBudgetSummary(db *gorm.DB, userID uint) (BudgetSummaryRow, error) {
	sums, err := FetchSums(db, userID)
	if err != nil {
		return BudgetSummaryRow{}, err
	}

	var entries []models.BudgetEntry
	if err := db.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return BudgetSummaryRow{}, err
	}

	return BuildBudgetSummary(entries, sums), nil
}
