package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"adultease/database"
	"adultease/models"
	"adultease/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler exports a user's ledger in CSV, JSON or Excel form.
type ExportHandler struct{}

func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// exportRows loads the user's rows for the optional date range plus a
// category-id-to-name map for display.
func (h *ExportHandler) exportRows(c *gin.Context) (uint, []models.LedgerRow, map[uint]string, bool) {
	userID, ok := parseUserID(c)
	if !ok {
		return 0, nil, nil, false
	}

	query := database.DB.Where("user_id = ?", userID)

	if s := c.Query("start_date"); s != "" {
		startDate, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			BadRequest(c, "start_date must be formatted as 2006-01-02")
			return 0, nil, nil, false
		}
		query = query.Where("date >= ?", startDate)
	}
	if s := c.Query("end_date"); s != "" {
		endDate, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			BadRequest(c, "end_date must be formatted as 2006-01-02")
			return 0, nil, nil, false
		}
		query = query.Where("date <= ?", endDate)
	}

	var rows []models.LedgerRow
	if err := query.Order("date DESC, id DESC").Find(&rows).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to load ledger rows"))
		return 0, nil, nil, false
	}

	var cats []models.Category
	if err := database.DB.Where("user_id = ?", userID).Find(&cats).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to load categories"))
		return 0, nil, nil, false
	}
	catNames := make(map[uint]string, len(cats))
	for _, cat := range cats {
		catNames[cat.ID] = cat.Name
	}

	return userID, rows, catNames, true
}

// ExportCSV exports the ledger as a CSV file.
// @Summary Export ledger rows as CSV
// @Tags export
// @Produce text/csv
// @Param userId path int true "User ID"
// @Param start_date query string false "start date (2024-01-01)"
// @Param end_date query string false "end date (2024-12-31)"
// @Success 200 {file} file "CSV file"
// @Failure 400 {object} ErrorResponse "invalid input"
// @Router /finance-export/csv/{userId} [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	userID, rows, catNames, ok := h.exportRows(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// BOM keeps Excel happy with UTF-8 content.
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"ID", "Name", "Category", "Term", "Flow", "Date", "Amount"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "failed to generate CSV")
		return
	}

	for _, row := range rows {
		record := []string{
			fmt.Sprintf("%d", row.ID),
			row.Name,
			catNames[row.CategoryID],
			row.Term,
			row.Flow,
			row.Date.Format("2006-01-02"),
			row.Amount.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			InternalError(c, "failed to generate CSV")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "failed to generate CSV")
		return
	}

	filename := fmt.Sprintf("ledger_%d.csv", userID)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON exports the ledger plus its aggregate sums as JSON.
// @Summary Export ledger rows as JSON
// @Tags export
// @Produce json
// @Param userId path int true "User ID"
// @Param start_date query string false "start date (2024-01-01)"
// @Param end_date query string false "end date (2024-12-31)"
// @Success 200 {object} Response "ledger rows and totals"
// @Failure 400 {object} ErrorResponse "invalid input"
// @Router /finance-export/json/{userId} [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	_, rows, _, ok := h.exportRows(c)
	if !ok {
		return
	}

	sums := service.ComputeSums(rows)

	Success(c, gin.H{
		"total_count": len(rows),
		"user_total":  sums.UserTotal.StringFixed(2),
		"income":      sums.Income.StringFixed(2),
		"expense":     sums.Expense.StringFixed(2),
		"rows":        rows,
	})
}

// ExportExcel exports the ledger as a styled xlsx workbook with a totals
// section computed by the aggregation engine.
// @Summary Export ledger rows as Excel
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param userId path int true "User ID"
// @Param start_date query string false "start date (2024-01-01)"
// @Param end_date query string false "end date (2024-12-31)"
// @Success 200 {file} file "xlsx file"
// @Failure 400 {object} ErrorResponse "invalid input"
// @Router /finance-export/excel/{userId} [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	userID, rows, catNames, ok := h.exportRows(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Ledger"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 25)
	f.SetColWidth(sheetName, "C", "C", 18)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 12)
	f.SetColWidth(sheetName, "F", "F", 14)
	f.SetColWidth(sheetName, "G", "G", 14)

	headers := []string{"ID", "Name", "Category", "Term", "Flow", "Date", "Amount"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, row := range rows {
		r := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", r), row.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", r), row.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", r), catNames[row.CategoryID])
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", r), row.Term)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", r), row.Flow)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", r), row.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", r), row.Amount.StringFixed(2))
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", r), fmt.Sprintf("G%d", r), dataStyle)
	}

	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	sums := service.ComputeSums(rows)
	totals := []struct {
		Label string
		Value string
	}{
		{"UserTotal", sums.UserTotal.StringFixed(2)},
		{"Income", sums.Income.StringFixed(2)},
		{"Expense", sums.Expense.StringFixed(2)},
		{"Fixed", sums.Fixed.StringFixed(2)},
		{"Variable", sums.Variable.StringFixed(2)},
	}
	base := len(rows) + 3
	for i, total := range totals {
		r := base + i
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", r), total.Label)
		f.MergeCell(sheetName, fmt.Sprintf("A%d", r), fmt.Sprintf("F%d", r))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", r), total.Value)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", r), fmt.Sprintf("G%d", r), summaryStyle)
	}

	filename := fmt.Sprintf("ledger_%d.xlsx", userID)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "failed to generate Excel file")
		return
	}
}
