package api

import (
	"adultease/database"
	"adultease/models"
	"adultease/service"

	"github.com/gin-gonic/gin"
)

// SummaryHandler exposes the aggregation engine's derived sums.
type SummaryHandler struct{}

func NewSummaryHandler() *SummaryHandler {
	return &SummaryHandler{}
}

// SumItem is one named total in the finance-sums response. Totals are
// serialized with two decimal places.
type SumItem struct {
	Name  string `json:"name"`
	Total string `json:"total"`
}

// CategorySumItem is one per-category total.
type CategorySumItem struct {
	CategoryID uint   `json:"category_id"`
	Name       string `json:"name"`
	Total      string `json:"total"`
}

// Sums returns the user's flow totals and net total, recomputed from the
// current ledger rows on every call.
// @Summary Get aggregate sums
// @Description Returns UserTotal (income minus expense), Income, Expense, Fixed and Variable totals. A user with no rows gets all zeros.
// @Tags summary
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} Response{data=[]SumItem} "aggregate sums"
// @Failure 400 {object} ErrorResponse "invalid user id"
// @Router /finance-sums/{userId} [get]
func (h *SummaryHandler) Sums(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	sums, err := service.FetchSums(database.DB, userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to compute sums"))
		return
	}

	Success(c, []SumItem{
		{Name: "UserTotal", Total: sums.UserTotal.StringFixed(2)},
		{Name: "Income", Total: sums.Income.StringFixed(2)},
		{Name: "Expense", Total: sums.Expense.StringFixed(2)},
		{Name: "Fixed", Total: sums.Fixed.StringFixed(2)},
		{Name: "Variable", Total: sums.Variable.StringFixed(2)},
	})
}

// CategorySums returns per-category actual totals for the user, including
// zero totals for categories without rows.
// @Summary Get per-category sums
// @Tags summary
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} Response{data=[]CategorySumItem} "per-category sums"
// @Failure 400 {object} ErrorResponse "invalid user id"
// @Router /finance-category-sums/{userId} [get]
func (h *SummaryHandler) CategorySums(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	sums, err := service.FetchSums(database.DB, userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to compute sums"))
		return
	}

	var cats []models.Category
	if err := database.DB.Where("user_id = ?", userID).Order("id ASC").Find(&cats).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to load categories"))
		return
	}

	items := make([]CategorySumItem, 0, len(cats))
	for _, cat := range cats {
		items = append(items, CategorySumItem{
			CategoryID: cat.ID,
			Name:       cat.Name,
			Total:      sums.CategoryTotals[cat.ID].StringFixed(2),
		})
	}

	Success(c, items)
}
