package service

import (
	"testing"

	"adultease/models"

	"github.com/stretchr/testify/assert"
)

func budgetEntry(group string, catID uint, amount string) models.BudgetEntry {
	return models.BudgetEntry{
		UserID:     1,
		Group:      group,
		CategoryID: catID,
		Amount:     amt(amount),
	}
}

func TestBuildBudgetSummary_CompositeInvariants(t *testing.T) {
	entries := []models.BudgetEntry{
		budgetEntry(models.BudgetGroupIncome, 1, "3000.00"),
		budgetEntry(models.BudgetGroupIncome, 2, "250.00"),
		budgetEntry(models.BudgetGroupFixed, 3, "900.00"),
		budgetEntry(models.BudgetGroupVariable, 4, "400.00"),
		budgetEntry(models.BudgetGroupVariable, 5, "150.50"),
	}
	sums := ComputeSums([]models.LedgerRow{
		testRow(1, models.TermFixed, models.FlowIncome, "2800.00"),
		testRow(3, models.TermFixed, models.FlowExpense, "850.00"),
		testRow(4, models.TermVariable, models.FlowExpense, "512.40"),
	})

	row := BuildBudgetSummary(entries, sums)

	assert.True(t, row.TotalBudgetIncome.Equal(amt("3250.00")))
	assert.True(t, row.TotalBudgetFixedExpense.Equal(amt("900.00")))
	assert.True(t, row.TotalBudgetVariableExpense.Equal(amt("550.50")))

	// Composites must always reconcile with their parts.
	assert.True(t, row.TotalBudgetExpense.Equal(row.TotalBudgetFixedExpense.Add(row.TotalBudgetVariableExpense)))
	assert.True(t, row.NetBudgetProfit.Equal(row.TotalBudgetIncome.Sub(row.TotalBudgetExpense)))
	assert.True(t, row.TotalActualExpense.Equal(row.TotalActualFixedExpense.Add(row.TotalActualVariableExpense)))
	assert.True(t, row.NetActualProfit.Equal(row.TotalActualIncome.Sub(row.TotalActualExpense)))

	assert.True(t, row.TotalActualIncome.Equal(amt("2800.00")))
	assert.True(t, row.TotalActualFixedExpense.Equal(amt("850.00")))
	assert.True(t, row.TotalActualVariableExpense.Equal(amt("512.40")))
	assert.True(t, row.NetActualProfit.Equal(amt("1437.60")))
}

func TestBuildBudgetSummary_MissingEntriesAreZero(t *testing.T) {
	// Budget targets only for income; expense targets default to zero.
	entries := []models.BudgetEntry{
		budgetEntry(models.BudgetGroupIncome, 1, "1000.00"),
	}

	row := BuildBudgetSummary(entries, ComputeSums(nil))

	assert.True(t, row.TotalBudgetIncome.Equal(amt("1000.00")))
	assert.True(t, row.TotalBudgetExpense.IsZero())
	assert.True(t, row.NetBudgetProfit.Equal(amt("1000.00")))
	assert.True(t, row.TotalActualIncome.IsZero())
	assert.True(t, row.NetActualProfit.IsZero())
}

func TestBuildBudgetSummary_Empty(t *testing.T) {
	row := BuildBudgetSummary(nil, ComputeSums(nil))

	assert.True(t, row.TotalBudgetIncome.IsZero())
	assert.True(t, row.TotalBudgetExpense.IsZero())
	assert.True(t, row.TotalActualExpense.IsZero())
	assert.True(t, row.NetBudgetProfit.IsZero())
	assert.True(t, row.NetActualProfit.IsZero())
}
