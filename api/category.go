package api

import (
	"errors"
	"strconv"
	"strings"

	"adultease/database"
	"adultease/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CategoryHandler manages per-user finance categories.
type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CategoryCreateRequest is the insert-category body.
type CategoryCreateRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=50"`
	UserID uint   `json:"userId" binding:"required"`
	Term   string `json:"term" binding:"omitempty"`
	Flow   string `json:"flow" binding:"omitempty"`
}

// CategoryDeleteRequest is the delete-category body.
type CategoryDeleteRequest struct {
	CategoryID uint `json:"categoryId" binding:"required"`
	UserID     uint `json:"userId" binding:"required"`
}

// parseUserID reads the :userId path parameter.
func parseUserID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil || id == 0 {
		BadRequest(c, "invalid user id")
		return 0, false
	}
	return uint(id), true
}

// ensureWageCategory returns the user's Wage category, creating it on first
// use. Wage is the default category for new ledger rows and always Income.
func ensureWageCategory(userID uint) (models.Category, error) {
	var cat models.Category
	err := database.DB.Where("user_id = ? AND name = ?", userID, models.WageCategoryName).First(&cat).Error
	if err == nil {
		return cat, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return cat, err
	}
	cat = models.Category{
		UserID: userID,
		Name:   models.WageCategoryName,
		Term:   models.TermFixed,
		Flow:   models.FlowIncome,
	}
	if err := database.DB.Create(&cat).Error; err != nil {
		return cat, err
	}
	return cat, nil
}

// List returns the user's categories, Wage first.
// @Summary List finance categories
// @Description Returns all categories for the user. The Wage category is seeded on first fetch and always listed first.
// @Tags categories
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} Response{data=[]models.Category} "category list"
// @Failure 400 {object} ErrorResponse "invalid user id"
// @Router /finance-categories/{userId} [get]
func (h *CategoryHandler) List(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	if _, err := ensureWageCategory(userID); err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to load categories"))
		return
	}

	var cats []models.Category
	if err := database.DB.Where("user_id = ?", userID).Order("id ASC").Find(&cats).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to load categories"))
		return
	}

	// Wage first, the rest in insertion order.
	ordered := make([]models.Category, 0, len(cats))
	for _, cat := range cats {
		if cat.Name == models.WageCategoryName {
			ordered = append(ordered, cat)
		}
	}
	for _, cat := range cats {
		if cat.Name != models.WageCategoryName {
			ordered = append(ordered, cat)
		}
	}

	Success(c, ordered)
}

// Create adds a category for a user.
// @Summary Create a finance category
// @Description Creates a category. Names are unique per user (exact match); a duplicate fails with 409. Term/flow default to Variable/Expense.
// @Tags categories
// @Accept json
// @Produce json
// @Param request body CategoryCreateRequest true "category"
// @Success 200 {object} Response{data=models.Category} "created"
// @Failure 400 {object} ErrorResponse "invalid input"
// @Failure 409 {object} ErrorResponse "name already exists"
// @Router /insert-category [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid request"))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		BadRequest(c, "category name must not be empty")
		return
	}
	if req.Term != "" && !models.ValidTerm(req.Term) {
		BadRequest(c, "term must be Fixed or Variable")
		return
	}
	if req.Flow != "" && !models.ValidFlow(req.Flow) {
		BadRequest(c, "flow must be Income or Expense")
		return
	}

	var existing models.Category
	if err := database.DB.Where("user_id = ? AND name = ?", req.UserID, req.Name).First(&existing).Error; err == nil {
		Conflict(c, "category name already exists")
		return
	}

	term := req.Term
	if term == "" {
		term = models.TermVariable
	}
	flow := req.Flow
	if flow == "" {
		flow = models.FlowExpense
	}

	cat := models.Category{UserID: req.UserID, Name: req.Name, Term: term, Flow: flow}
	if err := database.DB.Create(&cat).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to create category"))
		return
	}

	SuccessWithMessage(c, "category created", cat)
}

// Delete removes a category that no ledger row references.
// @Summary Delete a finance category
// @Description Deletes a category. Fails with 409 while ledger rows still reference it; the Wage category can never be deleted.
// @Tags categories
// @Accept json
// @Produce json
// @Param request body CategoryDeleteRequest true "category reference"
// @Success 200 {object} Response "deleted"
// @Failure 404 {object} ErrorResponse "category not found"
// @Failure 409 {object} ErrorResponse "category still referenced"
// @Router /delete-category [post]
func (h *CategoryHandler) Delete(c *gin.Context) {
	var req CategoryDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid request"))
		return
	}

	var cat models.Category
	if err := database.DB.Where("id = ? AND user_id = ?", req.CategoryID, req.UserID).First(&cat).Error; err != nil {
		NotFound(c, "category not found")
		return
	}

	if cat.Name == models.WageCategoryName {
		Conflict(c, "the Wage category cannot be deleted")
		return
	}

	// Deleting a category with rows would orphan their references; the
	// caller must move or delete those rows first.
	var refs int64
	if err := database.DB.Model(&models.LedgerRow{}).Where("category_id = ?", cat.ID).Count(&refs).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to check references"))
		return
	}
	if refs > 0 {
		Conflict(c, "category is still referenced by ledger rows")
		return
	}

	if err := database.DB.Delete(&cat).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to delete category"))
		return
	}

	SuccessWithMessage(c, "category deleted", nil)
}
