package api

import (
	"time"

	"adultease/database"
	"adultease/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// LedgerHandler manages cash-flow ledger rows.
type LedgerHandler struct{}

func NewLedgerHandler() *LedgerHandler {
	return &LedgerHandler{}
}

// InsertRowRequest is the insert-tracking-row body. Blank fields fall back to
// the UI defaults: empty name, Wage category, Fixed term, today, Income, 0.
type InsertRowRequest struct {
	Name       string           `json:"name"`
	CategoryID uint             `json:"categoryId"`
	Term       string           `json:"term"`
	Date       string           `json:"date"`
	Flow       string           `json:"flow"`
	Total      *decimal.Decimal `json:"total"`
	UserID     uint             `json:"userId" binding:"required"`
}

// UpdateRowRequest is the update-tracking-row body: a partial patch plus the
// version the client read. A stale version fails with 409 instead of silently
// overwriting a concurrent edit.
type UpdateRowRequest struct {
	RowID      uint             `json:"rowId" binding:"required"`
	Version    uint             `json:"version" binding:"required"`
	Name       *string          `json:"name"`
	CategoryID *uint            `json:"categoryId"`
	Term       *string          `json:"term"`
	Date       *string          `json:"date"`
	Flow       *string          `json:"flow"`
	Total      *decimal.Decimal `json:"total"`
}

// DeleteRowRequest is the delete-tracking-row body.
type DeleteRowRequest struct {
	RowID uint `json:"rowId" binding:"required"`
}

// List returns all ledger rows for a user.
// @Summary List ledger rows
// @Tags ledger
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} Response{data=[]models.LedgerRow} "ledger rows"
// @Failure 400 {object} ErrorResponse "invalid user id"
// @Router /finance-rows/{userId} [get]
func (h *LedgerHandler) List(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var rows []models.LedgerRow
	if err := database.DB.Where("user_id = ?", userID).Order("date DESC, id DESC").Find(&rows).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to load ledger rows"))
		return
	}

	Success(c, rows)
}

// Insert creates a ledger row.
// @Summary Insert a ledger row
// @Description Creates a row. The category must belong to the user; negative amounts are rejected; rows in the Wage category are always Income.
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body InsertRowRequest true "row"
// @Success 200 {object} Response{data=models.LedgerRow} "created"
// @Failure 400 {object} ErrorResponse "invalid input or unknown category"
// @Router /insert-tracking-row [post]
func (h *LedgerHandler) Insert(c *gin.Context) {
	var req InsertRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid request"))
		return
	}

	amount := decimal.Zero
	if req.Total != nil {
		amount = *req.Total
	}
	if amount.IsNegative() {
		BadRequest(c, "amount must be non-negative")
		return
	}

	var cat models.Category
	if req.CategoryID == 0 {
		wage, err := ensureWageCategory(req.UserID)
		if err != nil {
			InternalError(c, SafeErrorMessage(err, "failed to resolve default category"))
			return
		}
		cat = wage
	} else {
		if err := database.DB.Where("id = ? AND user_id = ?", req.CategoryID, req.UserID).First(&cat).Error; err != nil {
			BadRequest(c, "unknown category for user")
			return
		}
	}

	term := req.Term
	if term == "" {
		term = models.TermFixed
	}
	if !models.ValidTerm(term) {
		BadRequest(c, "term must be Fixed or Variable")
		return
	}

	flow := req.Flow
	if flow == "" {
		flow = models.FlowIncome
	}
	if !models.ValidFlow(flow) {
		BadRequest(c, "flow must be Income or Expense")
		return
	}
	// Wage rows are always income, whatever the client sent.
	if cat.Name == models.WageCategoryName {
		flow = models.FlowIncome
	}

	date := time.Now().In(time.Local)
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			BadRequest(c, "date must be formatted as 2006-01-02")
			return
		}
		date = parsed
	}
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)

	row := models.LedgerRow{
		UserID:     req.UserID,
		Name:       req.Name,
		CategoryID: cat.ID,
		Term:       term,
		Date:       date,
		Flow:       flow,
		Amount:     amount,
		Version:    1,
	}

	if err := database.DB.Create(&row).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to create ledger row"))
		return
	}

	SuccessWithMessage(c, "row created", row)
}

// Update patches a ledger row under an optimistic version check.
// @Summary Update a ledger row
// @Description Applies a partial update. The request must carry the version the client read; a stale version fails with 409.
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body UpdateRowRequest true "patch"
// @Success 200 {object} Response{data=models.LedgerRow} "updated"
// @Failure 400 {object} ErrorResponse "invalid input"
// @Failure 404 {object} ErrorResponse "row not found"
// @Failure 409 {object} ErrorResponse "version is stale"
// @Router /update-tracking-row [post]
func (h *LedgerHandler) Update(c *gin.Context) {
	var req UpdateRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid request"))
		return
	}

	var row models.LedgerRow
	if err := database.DB.First(&row, req.RowID).Error; err != nil {
		NotFound(c, "ledger row not found")
		return
	}

	if row.Version != req.Version {
		Conflict(c, "row was modified by another request, reload and retry")
		return
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}

	// Resolve the category the row will end up in; the Wage coercion below
	// must consider a changed category as well as a changed flow.
	cat := models.Category{}
	if req.CategoryID != nil {
		if err := database.DB.Where("id = ? AND user_id = ?", *req.CategoryID, row.UserID).First(&cat).Error; err != nil {
			BadRequest(c, "unknown category for user")
			return
		}
		updates["category_id"] = cat.ID
	} else {
		if err := database.DB.First(&cat, row.CategoryID).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "failed to resolve category"))
			return
		}
	}

	if req.Term != nil {
		if !models.ValidTerm(*req.Term) {
			BadRequest(c, "term must be Fixed or Variable")
			return
		}
		updates["term"] = *req.Term
	}

	if req.Flow != nil {
		if !models.ValidFlow(*req.Flow) {
			BadRequest(c, "flow must be Income or Expense")
			return
		}
		updates["flow"] = *req.Flow
	}
	if cat.Name == models.WageCategoryName {
		updates["flow"] = models.FlowIncome
	}

	if req.Date != nil {
		parsed, err := time.ParseInLocation("2006-01-02", *req.Date, time.Local)
		if err != nil {
			BadRequest(c, "date must be formatted as 2006-01-02")
			return
		}
		updates["date"] = parsed
	}

	if req.Total != nil {
		if req.Total.IsNegative() {
			BadRequest(c, "amount must be non-negative")
			return
		}
		updates["amount"] = *req.Total
	}

	updates["version"] = row.Version + 1

	// The version predicate makes the check atomic: a concurrent update that
	// got in after our read leaves RowsAffected at zero.
	res := database.DB.Model(&models.LedgerRow{}).
		Where("id = ? AND version = ?", row.ID, req.Version).
		Updates(updates)
	if res.Error != nil {
		InternalError(c, SafeErrorMessage(res.Error, "failed to update ledger row"))
		return
	}
	if res.RowsAffected == 0 {
		Conflict(c, "row was modified by another request, reload and retry")
		return
	}

	database.DB.First(&row, row.ID)
	SuccessWithMessage(c, "row updated", row)
}

// Delete removes a ledger row permanently.
// @Summary Delete a ledger row
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body DeleteRowRequest true "row reference"
// @Success 200 {object} Response "deleted"
// @Failure 404 {object} ErrorResponse "row not found"
// @Router /delete-tracking-row [post]
func (h *LedgerHandler) Delete(c *gin.Context) {
	var req DeleteRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid request"))
		return
	}

	var row models.LedgerRow
	if err := database.DB.First(&row, req.RowID).Error; err != nil {
		NotFound(c, "ledger row not found")
		return
	}

	if err := database.DB.Delete(&row).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to delete ledger row"))
		return
	}

	SuccessWithMessage(c, "row deleted", nil)
}
