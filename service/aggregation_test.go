package service

import (
	"testing"
	"time"

	"adultease/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testRow(catID uint, term, flow, amount string) models.LedgerRow {
	return models.LedgerRow{
		UserID:     1,
		CategoryID: catID,
		Term:       term,
		Flow:       flow,
		Date:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		Amount:     amt(amount),
	}
}

func TestComputeSums_Scenario(t *testing.T) {
	// Paycheck 1000 (Wage, Fixed, Income) + Rent 600 (Fixed, Expense)
	rows := []models.LedgerRow{
		testRow(1, models.TermFixed, models.FlowIncome, "1000.00"),
		testRow(2, models.TermFixed, models.FlowExpense, "600.00"),
	}

	sums := ComputeSums(rows)

	assert.True(t, sums.Income.Equal(amt("1000.00")), "income=%s", sums.Income)
	assert.True(t, sums.Expense.Equal(amt("600.00")), "expense=%s", sums.Expense)
	assert.True(t, sums.Fixed.Equal(amt("1600.00")), "fixed=%s", sums.Fixed)
	assert.True(t, sums.Variable.IsZero(), "variable=%s", sums.Variable)
	assert.True(t, sums.UserTotal.Equal(amt("400.00")), "userTotal=%s", sums.UserTotal)
	assert.True(t, sums.CategoryTotals[1].Equal(amt("1000.00")))
	assert.True(t, sums.CategoryTotals[2].Equal(amt("600.00")))
}

func TestComputeSums_AfterDelete(t *testing.T) {
	// Deleting the Rent row brings the sums back to income only.
	rows := []models.LedgerRow{
		testRow(1, models.TermFixed, models.FlowIncome, "1000.00"),
	}

	sums := ComputeSums(rows)

	assert.True(t, sums.Income.Equal(amt("1000.00")))
	assert.True(t, sums.Expense.IsZero())
	assert.True(t, sums.Fixed.Equal(amt("1000.00")))
	assert.True(t, sums.UserTotal.Equal(amt("1000.00")))
}

func TestComputeSums_Empty(t *testing.T) {
	sums := ComputeSums(nil)

	assert.True(t, sums.Income.IsZero())
	assert.True(t, sums.Expense.IsZero())
	assert.True(t, sums.Fixed.IsZero())
	assert.True(t, sums.Variable.IsZero())
	assert.True(t, sums.UserTotal.IsZero())
	assert.Empty(t, sums.CategoryTotals)
}

func TestComputeSums_Reconciliation(t *testing.T) {
	// userTotal must equal income minus expense, and the term buckets must
	// partition the full amount, for arbitrary row mixes.
	rows := []models.LedgerRow{
		testRow(1, models.TermFixed, models.FlowIncome, "2500.00"),
		testRow(2, models.TermVariable, models.FlowIncome, "120.50"),
		testRow(3, models.TermFixed, models.FlowExpense, "800.25"),
		testRow(4, models.TermVariable, models.FlowExpense, "64.99"),
		testRow(4, models.TermVariable, models.FlowExpense, "0.01"),
		testRow(5, models.TermVariable, models.FlowExpense, "0.00"),
	}

	sums := ComputeSums(rows)

	var income, expense, all decimal.Decimal
	for _, r := range rows {
		all = all.Add(r.Amount)
		if r.Flow == models.FlowIncome {
			income = income.Add(r.Amount)
		} else {
			expense = expense.Add(r.Amount)
		}
	}

	assert.True(t, sums.UserTotal.Equal(income.Sub(expense)))
	assert.True(t, sums.Fixed.Add(sums.Variable).Equal(all))
	assert.True(t, sums.Income.Add(sums.Expense).Equal(all))

	// Cross-axis buckets only count expense rows.
	assert.True(t, sums.FixedExpense.Equal(amt("800.25")))
	assert.True(t, sums.VariableExpense.Equal(amt("65.00")))
}

func TestComputeSums_Idempotent(t *testing.T) {
	rows := []models.LedgerRow{
		testRow(1, models.TermFixed, models.FlowIncome, "100.00"),
		testRow(2, models.TermVariable, models.FlowExpense, "33.33"),
	}

	first := ComputeSums(rows)
	second := ComputeSums(rows)

	assert.True(t, first.UserTotal.Equal(second.UserTotal))
	assert.True(t, first.Income.Equal(second.Income))
	assert.True(t, first.Expense.Equal(second.Expense))
	assert.True(t, first.Fixed.Equal(second.Fixed))
	assert.True(t, first.Variable.Equal(second.Variable))
	require.Equal(t, len(first.CategoryTotals), len(second.CategoryTotals))
	for id, total := range first.CategoryTotals {
		assert.True(t, total.Equal(second.CategoryTotals[id]))
	}
}

func TestComputeSums_CategoryTotalsIgnoreFlow(t *testing.T) {
	// Category totals sum raw amounts regardless of direction.
	rows := []models.LedgerRow{
		testRow(7, models.TermFixed, models.FlowIncome, "50.00"),
		testRow(7, models.TermVariable, models.FlowExpense, "20.00"),
	}

	sums := ComputeSums(rows)
	assert.True(t, sums.CategoryTotals[7].Equal(amt("70.00")))
}
