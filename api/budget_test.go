package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"adultease/models"
	"adultease/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func budgetColumns() []string {
	return []string{"id", "user_id", "grp", "category_id", "amount", "created_at", "updated_at"}
}

func TestBudgetHandler_UpsertCreate(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// No entry yet for (user 1, income, whole group).
	mock.ExpectQuery("SELECT .* FROM `finance_budget_entries`").
		WithArgs(1, models.BudgetGroupIncome, 0).
		WillReturnRows(sqlmock.NewRows(budgetColumns()))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `finance_budget_entries`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/update-budget-income-table", NewBudgetHandler().UpdateIncomeTable)

	body := `{"budgetIncome":"2500.00","userId":1}`
	req := httptest.NewRequest("POST", "/update-budget-income-table", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "budget entry saved")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetHandler_UpsertOverwrite(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `finance_budget_entries`").
		WithArgs(1, models.BudgetGroupFixed, 0).
		WillReturnRows(sqlmock.NewRows(budgetColumns()).
			AddRow(7, 1, models.BudgetGroupFixed, 0, "800.00", now, now))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `finance_budget_entries`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/update-budget-fixed-table", NewBudgetHandler().UpdateFixedTable)

	body := `{"budgetExpense":"900.00","userId":1}`
	req := httptest.NewRequest("POST", "/update-budget-fixed-table", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data models.BudgetEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "900", resp.Data.Amount.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetHandler_UpsertNegativeAmount(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.POST("/update-budget-variable-table", NewBudgetHandler().UpdateVariableTable)

	body := `{"budgetExpense":"-10.00","userId":1}`
	req := httptest.NewRequest("POST", "/update-budget-variable-table", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "non-negative")
}

func TestBudgetHandler_UpsertMissingAmount(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.POST("/update-budget-income-table", NewBudgetHandler().UpdateIncomeTable)

	// budgetExpense is ignored by the income endpoint.
	body := `{"budgetExpense":"100.00","userId":1}`
	req := httptest.NewRequest("POST", "/update-budget-income-table", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "required")
}

func TestBudgetHandler_UpsertUnknownCategory(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `finance_categories`").
		WithArgs(42, 1).
		WillReturnRows(sqlmock.NewRows(categoryColumns()))

	router := gin.New()
	router.POST("/update-budget-fixed-table", NewBudgetHandler().UpdateFixedTable)

	body := `{"budgetExpense":"100.00","categoryId":42,"userId":1}`
	req := httptest.NewRequest("POST", "/update-budget-fixed-table", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "unknown category")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetHandler_Summary(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	// Actuals: 1000 income, 600 fixed expense, 65 variable expense.
	mock.ExpectQuery("SELECT .* FROM `finance_rows`").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(ledgerColumns()).
			AddRow(1, 1, "Paycheck", 1, models.TermFixed, now, models.FlowIncome, "1000.00", 1, now, now).
			AddRow(2, 1, "Rent", 2, models.TermFixed, now, models.FlowExpense, "600.00", 1, now, now).
			AddRow(3, 1, "Groceries", 3, models.TermVariable, now, models.FlowExpense, "65.00", 1, now, now))

	// Targets: 1200 income, 700 fixed, 100 variable.
	mock.ExpectQuery("SELECT .* FROM `finance_budget_entries`").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(budgetColumns()).
			AddRow(1, 1, models.BudgetGroupIncome, 0, "1200.00", now, now).
			AddRow(2, 1, models.BudgetGroupFixed, 0, "700.00", now, now).
			AddRow(3, 1, models.BudgetGroupVariable, 0, "100.00", now, now))

	router := gin.New()
	router.GET("/finance-budget-summary/:userId", NewBudgetHandler().Summary)

	req := httptest.NewRequest("GET", "/finance-budget-summary/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data []service.BudgetSummaryRow `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)

	row := resp.Data[0]
	assert.Equal(t, "1200", row.TotalBudgetIncome.String())
	assert.Equal(t, "800", row.TotalBudgetExpense.String())
	assert.Equal(t, "400", row.NetBudgetProfit.String())
	assert.Equal(t, "1000", row.TotalActualIncome.String())
	assert.Equal(t, "600", row.TotalActualFixedExpense.String())
	assert.Equal(t, "65", row.TotalActualVariableExpense.String())
	assert.Equal(t, "665", row.TotalActualExpense.String())
	assert.Equal(t, "335", row.NetActualProfit.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetHandler_Entries(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `finance_budget_entries`").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(budgetColumns()).
			AddRow(1, 1, models.BudgetGroupIncome, 0, "1200.00", now, now))

	router := gin.New()
	router.GET("/finance-budget/:userId", NewBudgetHandler().Entries)

	req := httptest.NewRequest("GET", "/finance-budget/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data []models.BudgetEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, models.BudgetGroupIncome, resp.Data[0].Group)
	require.NoError(t, mock.ExpectationsWereMet())
}
