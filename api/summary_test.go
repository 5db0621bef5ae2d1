package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"adultease/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryHandler_Sums(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	// 1000 wage income plus 600 rent, both Fixed.
	mock.ExpectQuery("SELECT .* FROM `finance_rows`").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(ledgerColumns()).
			AddRow(1, 1, "Paycheck", 1, models.TermFixed, now, models.FlowIncome, "1000.00", 1, now, now).
			AddRow(2, 1, "Rent", 2, models.TermFixed, now, models.FlowExpense, "600.00", 1, now, now))

	router := gin.New()
	router.GET("/finance-sums/:userId", NewSummaryHandler().Sums)

	req := httptest.NewRequest("GET", "/finance-sums/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data []SumItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 5)

	byName := make(map[string]string, len(resp.Data))
	for _, item := range resp.Data {
		byName[item.Name] = item.Total
	}
	assert.Equal(t, "400.00", byName["UserTotal"])
	assert.Equal(t, "1000.00", byName["Income"])
	assert.Equal(t, "600.00", byName["Expense"])
	assert.Equal(t, "1600.00", byName["Fixed"])
	assert.Equal(t, "0.00", byName["Variable"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryHandler_Sums_Empty(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `finance_rows`").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(ledgerColumns()))

	router := gin.New()
	router.GET("/finance-sums/:userId", NewSummaryHandler().Sums)

	req := httptest.NewRequest("GET", "/finance-sums/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data []SumItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 5)
	for _, item := range resp.Data {
		assert.Equal(t, "0.00", item.Total)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryHandler_Sums_BadUserID(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.GET("/finance-sums/:userId", NewSummaryHandler().Sums)

	req := httptest.NewRequest("GET", "/finance-sums/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestSummaryHandler_CategorySums(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `finance_rows`").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(ledgerColumns()).
			AddRow(1, 1, "Paycheck", 1, models.TermFixed, now, models.FlowIncome, "1000.00", 1, now, now).
			AddRow(2, 1, "Rent", 2, models.TermFixed, now, models.FlowExpense, "600.00", 1, now, now))

	// Groceries has no rows yet and must still appear with a zero total.
	mock.ExpectQuery("SELECT .* FROM `finance_categories`").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(categoryColumns()).
			AddRow(1, 1, "Wage", models.TermFixed, models.FlowIncome, now, now).
			AddRow(2, 1, "Rent", models.TermFixed, models.FlowExpense, now, now).
			AddRow(3, 1, "Groceries", models.TermVariable, models.FlowExpense, now, now))

	router := gin.New()
	router.GET("/finance-category-sums/:userId", NewSummaryHandler().CategorySums)

	req := httptest.NewRequest("GET", "/finance-category-sums/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data []CategorySumItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 3)
	assert.Equal(t, "1000.00", resp.Data[0].Total)
	assert.Equal(t, "600.00", resp.Data[1].Total)
	assert.Equal(t, "0.00", resp.Data[2].Total)
	require.NoError(t, mock.ExpectationsWereMet())
}
