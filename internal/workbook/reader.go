// enrollboard/internal/workbook/reader.go
package workbook

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"enrollboard/models"
)

// Форматы дат, встречающиеся в ячейках: наш собственный, формат с временем
// и формат отображения дат excelize по умолчанию.
var cellDateLayouts = []string{DateLayout, "2006-01-02 15:04:05", "01-02-06", "02.01.2006"}

// ReadWorkbook читает все перечисленные вкладки книги и объединяет их
// строки в одну таблицу. Отсутствующая вкладка пропускается с
// предупреждением; отсутствующая книга - ошибка.
func ReadWorkbook(path string, tabs []string) ([]models.Enrollment, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть книгу %s: %w", path, err)
	}
	defer f.Close()

	var all []models.Enrollment
	for _, tab := range tabs {
		records, err := readTab(f, tab)
		if err != nil {
			slog.Warn("Вкладка пропущена", "tab", tab, "error", err)
			continue
		}
		slog.Info("Вкладка загружена", "tab", tab, "rows", len(records))
		all = append(all, records...)
	}
	return all, nil
}

// readTab разбирает одну вкладку: пропускает строки метаданных, находит
// строку заголовков по известным именам колонок и читает строки данных.
// Строки с нечитаемой датой отбрасываются, пустая сумма считается нулём.
func readTab(f *excelize.File, tab string) ([]models.Enrollment, error) {
	rows, err := f.GetRows(tab)
	if err != nil {
		return nil, err
	}

	headerIdx := findHeaderRow(rows)
	if headerIdx == -1 {
		if len(rows) == 0 {
			// Пустая вкладка - нормальное состояние.
			return nil, nil
		}
		return nil, fmt.Errorf("строка заголовков не найдена во вкладке %q", tab)
	}

	col := make(map[string]int, len(rows[headerIdx]))
	for i, name := range rows[headerIdx] {
		col[strings.TrimSpace(name)] = i
	}

	var records []models.Enrollment
	dropped := 0
	for _, row := range rows[headerIdx+1:] {
		if isBlankRow(row) {
			continue
		}
		day, ok := parseCellDate(cellAt(row, col, "converted_date"))
		if !ok {
			dropped++
			continue
		}
		records = append(records, models.Enrollment{
			BatchName:    cellAt(row, col, "batch_name"),
			Plan:         cellAt(row, col, "plan"),
			ExamCategory: cellAt(row, col, "exam_category"),
			Eligibility:  cellAt(row, col, "batch_eligibility"),
			EnrolledAt:   day,
			NetAmount:    parseCellAmount(cellAt(row, col, "net_amount")),
		})
	}
	if dropped > 0 {
		slog.Warn("Строки с нечитаемой датой отброшены", "tab", tab, "rows", dropped)
	}
	return records, nil
}

// findHeaderRow ищет строку заголовков, пробуя известные имена колонок.
// Метаданные над заголовком могут расти, поэтому позиция не фиксирована.
func findHeaderRow(rows [][]string) int {
	for i, row := range rows {
		hasBatch, hasDate := false, false
		for _, cell := range row {
			switch strings.TrimSpace(cell) {
			case "batch_name":
				hasBatch = true
			case "converted_date":
				hasDate = true
			}
		}
		if hasBatch && hasDate {
			return i
		}
	}
	return -1
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func cellAt(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseCellDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range cellDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func parseCellAmount(value string) float64 {
	if value == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}
