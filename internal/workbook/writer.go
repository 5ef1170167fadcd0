// enrollboard/internal/workbook/writer.go
package workbook

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"enrollboard/models"
)

// DateLayout - формат дат в ячейках книги.
const DateLayout = "2006-01-02"

// Колонки данных в порядке записи. Читатель ищет строку заголовков по этим
// именам, поэтому менять их нужно синхронно с reader.go.
var dataHeaders = []string{"batch_name", "plan", "exam_category", "batch_eligibility", "converted_date", "net_amount"}

// Метки строк метаданных, которые фетчер пишет перед заголовками.
const (
	metaReportName  = "Report"
	metaQueryDate   = "Query Date"
	metaGeneratedAt = "Generated At"
	metaRunID       = "Run ID"
	metaRowCount    = "Row Count"
	metaTotalAmount = "Total Net Amount"
)

// WriteReport перезаписывает вкладку tab книги по пути path: строки
// метаданных запуска, пустая строка, строка заголовков и строки данных.
// Остальные вкладки книги не затрагиваются. Книга создаётся, если её нет.
func WriteReport(path, tab string, run models.ReportRun, records []models.Enrollment) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("не удалось создать директорию книги: %w", err)
	}

	f, created, err := openOrCreate(path)
	if err != nil {
		return err
	}
	defer f.Close()

	// Старая вкладка удаляется целиком: передача данных всегда wholesale.
	// Временный лист нужен, чтобы в книге всегда оставался хотя бы один -
	// excelize не даёт удалить последний.
	const tmpSheet = "__rewrite__"
	if idx, _ := f.GetSheetIndex(tab); idx != -1 {
		if _, err := f.NewSheet(tmpSheet); err != nil {
			return fmt.Errorf("не удалось подготовить книгу: %w", err)
		}
		if err := f.DeleteSheet(tab); err != nil {
			return fmt.Errorf("не удалось удалить вкладку %q: %w", tab, err)
		}
	}
	index, err := f.NewSheet(tab)
	if err != nil {
		return fmt.Errorf("не удалось создать вкладку %q: %w", tab, err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet(tmpSheet)
	if created && tab != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	meta := [][2]string{
		{metaReportName, run.ReportName},
		{metaQueryDate, run.QueryDate.Format(DateLayout)},
		{metaGeneratedAt, run.GeneratedAt.Format("2006-01-02 15:04:05")},
		{metaRunID, run.RunID},
		{metaRowCount, fmt.Sprintf("%d", run.RowCount)},
		{metaTotalAmount, run.TotalAmount.StringFixed(2)},
	}
	for i, kv := range meta {
		f.SetCellValue(tab, fmt.Sprintf("A%d", i+1), kv[0])
		f.SetCellValue(tab, fmt.Sprintf("B%d", i+1), kv[1])
	}

	headerRow := len(meta) + 2 // одна пустая строка после метаданных
	for i, header := range dataHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		f.SetCellValue(tab, cell, header)
	}

	for i, r := range records {
		row := headerRow + 1 + i
		f.SetCellValue(tab, fmt.Sprintf("A%d", row), r.BatchName)
		f.SetCellValue(tab, fmt.Sprintf("B%d", row), r.Plan)
		f.SetCellValue(tab, fmt.Sprintf("C%d", row), r.ExamCategory)
		f.SetCellValue(tab, fmt.Sprintf("D%d", row), r.Eligibility)
		f.SetCellValue(tab, fmt.Sprintf("E%d", row), r.EnrolledAt.Format(DateLayout))
		f.SetCellValue(tab, fmt.Sprintf("F%d", row), r.NetAmount)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("не удалось сохранить книгу %s: %w", path, err)
	}
	return nil
}

func openOrCreate(path string) (*excelize.File, bool, error) {
	if _, err := os.Stat(path); err == nil {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, false, fmt.Errorf("не удалось открыть книгу %s: %w", path, err)
		}
		return f, false, nil
	}
	return excelize.NewFile(), true, nil
}
