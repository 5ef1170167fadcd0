// enrollboard/internal/handlers/export_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"enrollboard/internal/analytics"
	"enrollboard/internal/workbook"
	"enrollboard/models"
)

// ExportHandler - экспорт набора данных диаграммы или отфильтрованной
// таблицы в Excel. Вид задаётся параметром пути: batches, daily, exams,
// eligibility, revenue или records.
func ExportHandler(c *gin.Context) {
	snap, err := loadSnapshot(false)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to load workbook data: " + err.Error()})
		return
	}

	filter := parseFilter(c)
	filtered := analytics.Apply(snap.Records, filter)
	now := windowEnd(filter)
	view := c.Param("view")

	f := excelize.NewFile()
	switch view {
	case "batches":
		writeDataset(f, "Enrollment by Batch", "Batch Name", "Enrollments",
			analytics.CountByBatch(filtered, topBatchesLimit))
	case "daily":
		writeTimeSeries(f, "Daily Enrollment",
			analytics.DailyCountByBatch(filtered, now, dailyWindowDays, dailySeriesLimit))
	case "exams":
		writeDataset(f, "Enrollment by Exam", "Exam Category", "Enrollments",
			analytics.CountByExam(filtered))
	case "eligibility":
		writeDataset(f, "Enrollment by Eligibility", "Eligibility", "Enrollments",
			analytics.CountByEligibility(filtered))
	case "revenue":
		writeDataset(f, "Daily Revenue", "Date", "Net Amount",
			analytics.AmountByDay(filtered, now, dailyWindowDays))
	case "records":
		writeRecords(f, filtered)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown export view: " + view})
		return
	}

	fileName := fmt.Sprintf("%s_%s.xlsx", view, time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}

func writeDataset(f *excelize.File, sheetName, labelHeader, valueHeader string, ds analytics.Dataset) {
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(sheetName, "A1", labelHeader)
	f.SetCellValue(sheetName, "B1", valueHeader)
	for i, label := range ds.Labels {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), label)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), ds.Values[i])
	}
}

func writeTimeSeries(f *excelize.File, sheetName string, ts analytics.TimeSeries) {
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(sheetName, "A1", "Date")
	for i, s := range ts.Series {
		cell, _ := excelize.CoordinatesToCellName(i+2, 1)
		f.SetCellValue(sheetName, cell, s.Name)
	}
	for i, label := range ts.Labels {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", i+2), label)
		for j, s := range ts.Series {
			cell, _ := excelize.CoordinatesToCellName(j+2, i+2)
			f.SetCellValue(sheetName, cell, s.Values[i])
		}
	}
}

func writeRecords(f *excelize.File, records []models.Enrollment) {
	sheetName := "Enrollments"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Batch Name", "Plan", "Exam Category", "Eligibility", "Enrollment Date", "Net Amount"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}
	for i, r := range records {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.BatchName)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.Plan)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.ExamCategory)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.Eligibility)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.EnrolledAt.Format(workbook.DateLayout))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), r.NetAmount)
	}
}
