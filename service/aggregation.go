package service

import (
	"adultease/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AggregateSums is the derived summary view over a user's ledger rows. It is
// never stored; every read recomputes it from the current row set, so it is
// always consistent with the ledger regardless of insert/update/delete order.
//
// Each row contributes its amount to exactly one flow bucket (Income or
// Expense) and exactly one term bucket (Fixed or Variable). FixedExpense and
// VariableExpense carry the cross of both axes for budget-vs-actual reporting.
type AggregateSums struct {
	CategoryTotals  map[uint]decimal.Decimal
	Income          decimal.Decimal
	Expense         decimal.Decimal
	Fixed           decimal.Decimal
	Variable        decimal.Decimal
	FixedExpense    decimal.Decimal
	VariableExpense decimal.Decimal
	UserTotal       decimal.Decimal
}

// ComputeSums folds a slice of ledger rows into AggregateSums. Pure and
// deterministic: no I/O, identical input yields identical output. An empty
// slice yields all-zero sums.
func ComputeSums(rows []models.LedgerRow) AggregateSums {
	sums := AggregateSums{
		CategoryTotals: make(map[uint]decimal.Decimal, len(rows)),
	}

	for _, row := range rows {
		sums.CategoryTotals[row.CategoryID] = sums.CategoryTotals[row.CategoryID].Add(row.Amount)

		switch row.Flow {
		case models.FlowIncome:
			sums.Income = sums.Income.Add(row.Amount)
		case models.FlowExpense:
			sums.Expense = sums.Expense.Add(row.Amount)
		}

		switch row.Term {
		case models.TermFixed:
			sums.Fixed = sums.Fixed.Add(row.Amount)
			if row.Flow == models.FlowExpense {
				sums.FixedExpense = sums.FixedExpense.Add(row.Amount)
			}
		case models.TermVariable:
			sums.Variable = sums.Variable.Add(row.Amount)
			if row.Flow == models.FlowExpense {
				sums.VariableExpense = sums.VariableExpense.Add(row.Amount)
			}
		}
	}

	sums.UserTotal = sums.Income.Sub(sums.Expense)
	return sums
}

// FetchSums loads the user's current ledger rows and computes their sums.
// A user with no rows gets all-zero sums, not an error.
func FetchSums(db *gorm.DB, userID uint) (AggregateSums, error) {
	var rows []models.LedgerRow
	if err := db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return AggregateSums{}, err
	}
	return ComputeSums(rows), nil
}
