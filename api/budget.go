package api

import (
	"errors"

	"adultease/database"
	"adultease/models"
	"adultease/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetHandler manages budget targets and the budget-vs-actual summary.
type BudgetHandler struct{}

func NewBudgetHandler() *BudgetHandler {
	return &BudgetHandler{}
}

// BudgetUpdateRequest is the body of the update-budget-*-table endpoints.
// The income endpoint reads budgetIncome, the expense endpoints read
// budgetExpense. The target category can be named by id or by name; with
// neither, the entry covers the whole group.
type BudgetUpdateRequest struct {
	BudgetIncome  *decimal.Decimal `json:"budgetIncome"`
	BudgetExpense *decimal.Decimal `json:"budgetExpense"`
	CategoryID    uint             `json:"categoryId"`
	CategoryName  string           `json:"categoryName"`
	UserID        uint             `json:"userId" binding:"required"`
}

// UpdateIncomeTable upserts an income budget target.
// @Summary Upsert an income budget target
// @Tags budget
// @Accept json
// @Produce json
// @Param request body BudgetUpdateRequest true "target"
// @Success 200 {object} Response{data=models.BudgetEntry} "saved"
// @Failure 400 {object} ErrorResponse "invalid input"
// @Router /update-budget-income-table [post]
func (h *BudgetHandler) UpdateIncomeTable(c *gin.Context) {
	h.upsert(c, models.BudgetGroupIncome)
}

// UpdateFixedTable upserts a fixed-expense budget target.
// @Summary Upsert a fixed-expense budget target
// @Tags budget
// @Accept json
// @Produce json
// @Param request body BudgetUpdateRequest true "target"
// @Success 200 {object} Response{data=models.BudgetEntry} "saved"
// @Failure 400 {object} ErrorResponse "invalid input"
// @Router /update-budget-fixed-table [post]
func (h *BudgetHandler) UpdateFixedTable(c *gin.Context) {
	h.upsert(c, models.BudgetGroupFixed)
}

// UpdateVariableTable upserts a variable-expense budget target.
// @Summary Upsert a variable-expense budget target
// @Tags budget
// @Accept json
// @Produce json
// @Param request body BudgetUpdateRequest true "target"
// @Success 200 {object} Response{data=models.BudgetEntry} "saved"
// @Failure 400 {object} ErrorResponse "invalid input"
// @Router /update-budget-variable-table [post]
func (h *BudgetHandler) UpdateVariableTable(c *gin.Context) {
	h.upsert(c, models.BudgetGroupVariable)
}

// upsert writes one budget entry per (user, group, category), overwriting the
// amount when the entry already exists.
func (h *BudgetHandler) upsert(c *gin.Context, group string) {
	var req BudgetUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid request"))
		return
	}

	var amount *decimal.Decimal
	if group == models.BudgetGroupIncome {
		amount = req.BudgetIncome
	} else {
		amount = req.BudgetExpense
	}
	if amount == nil {
		BadRequest(c, "budget amount is required")
		return
	}
	if amount.IsNegative() {
		BadRequest(c, "budget amount must be non-negative")
		return
	}

	categoryID := req.CategoryID
	if categoryID == 0 && req.CategoryName != "" {
		var cat models.Category
		if err := database.DB.Where("user_id = ? AND name = ?", req.UserID, req.CategoryName).First(&cat).Error; err != nil {
			BadRequest(c, "unknown category for user")
			return
		}
		categoryID = cat.ID
	} else if categoryID != 0 {
		var cat models.Category
		if err := database.DB.Where("id = ? AND user_id = ?", categoryID, req.UserID).First(&cat).Error; err != nil {
			BadRequest(c, "unknown category for user")
			return
		}
	}

	var entry models.BudgetEntry
	err := database.DB.Where("user_id = ? AND grp = ? AND category_id = ?", req.UserID, group, categoryID).
		First(&entry).Error
	switch {
	case err == nil:
		if err := database.DB.Model(&entry).Update("amount", *amount).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "failed to save budget entry"))
			return
		}
		entry.Amount = *amount
	case errors.Is(err, gorm.ErrRecordNotFound):
		entry = models.BudgetEntry{
			UserID:     req.UserID,
			Group:      group,
			CategoryID: categoryID,
			Amount:     *amount,
		}
		if err := database.DB.Create(&entry).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "failed to save budget entry"))
			return
		}
	default:
		InternalError(c, SafeErrorMessage(err, "failed to save budget entry"))
		return
	}

	SuccessWithMessage(c, "budget entry saved", entry)
}

// Entries returns the user's current budget entries.
// @Summary List budget entries
// @Tags budget
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} Response{data=[]models.BudgetEntry} "budget entries"
// @Failure 400 {object} ErrorResponse "invalid user id"
// @Router /finance-budget/{userId} [get]
func (h *BudgetHandler) Entries(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var entries []models.BudgetEntry
	if err := database.DB.Where("user_id = ?", userID).Order("id ASC").Find(&entries).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to load budget entries"))
		return
	}

	Success(c, entries)
}

// Summary returns the budget-vs-actual summary row.
// @Summary Get the budget summary
// @Description Joins budget targets with actuals from the aggregation engine. Missing targets count as zero.
// @Tags budget
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} Response{data=[]service.BudgetSummaryRow} "budget summary"
// @Failure 400 {object} ErrorResponse "invalid user id"
// @Router /finance-budget-summary/{userId} [get]
func (h *BudgetHandler) Summary(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	row, err := service.FetchBudgetSummary(database.DB, userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to compute budget summary"))
		return
	}

	Success(c, []service.BudgetSummaryRow{row})
}
