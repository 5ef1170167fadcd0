// enrollboard/internal/report/fetcher.go
package report

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"enrollboard/internal/workbook"
	"enrollboard/models"
)

// Options задаёт один запуск фетчера: какой отчёт, в какую вкладку и по
// какую дату выгружать.
type Options struct {
	ReportName   string
	Tab          string
	QueryDate    time.Time
	WorkbookPath string
}

// warehouseRow - строка результата запроса к витрине. Сумма читается как
// decimal, чтобы итог в метаданных совпадал с базой без плавающей точки.
type warehouseRow struct {
	BatchName    string          `gorm:"column:batch_name"`
	Plan         string          `gorm:"column:plan"`
	ExamCategory string          `gorm:"column:exam_category"`
	Eligibility  string          `gorm:"column:batch_eligibility"`
	EnrolledAt   time.Time       `gorm:"column:converted_date"`
	NetAmount    decimal.Decimal `gorm:"column:net_amount"`
}

// Run выполняет параметризованный по дате запрос к витрине и перезаписывает
// вкладку книги результатом. Пустой результат - нормальный запуск с нулём
// строк, а не ошибка. Политики повторов нет: упавший запуск завершает
// процесс, следующий по расписанию перезапишет вкладку целиком.
func Run(db *gorm.DB, opts Options) (models.ReportRun, error) {
	var rows []warehouseRow
	err := db.Table("enrollments e").
		Select(`
			e.batch_name,
			e.plan,
			e.exam_category,
			e.batch_eligibility,
			e.converted_date::date AS converted_date,
			e.net_amount
		`).
		Where("e.report_name = ?", opts.ReportName).
		Where("e.converted_date::date <= ?", opts.QueryDate.Format(workbook.DateLayout)).
		Order("e.converted_date").
		Scan(&rows).Error
	if err != nil {
		return models.ReportRun{}, fmt.Errorf("запрос к витрине не выполнен: %w", err)
	}

	run := models.ReportRun{
		ReportName:  opts.ReportName,
		QueryDate:   opts.QueryDate,
		GeneratedAt: time.Now(),
		RunID:       uuid.NewString(),
		RowCount:    len(rows),
		TotalAmount: sumAmounts(rows),
	}

	if err := workbook.WriteReport(opts.WorkbookPath, opts.Tab, run, toEnrollments(rows)); err != nil {
		return models.ReportRun{}, err
	}

	slog.Info("Отчёт выгружен",
		"report", run.ReportName,
		"tab", opts.Tab,
		"run_id", run.RunID,
		"rows", run.RowCount,
		"total", run.TotalAmount.StringFixed(2),
	)
	return run, nil
}

func sumAmounts(rows []warehouseRow) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.NetAmount)
	}
	return total
}

func toEnrollments(rows []warehouseRow) []models.Enrollment {
	records := make([]models.Enrollment, len(rows))
	for i, r := range rows {
		records[i] = models.Enrollment{
			BatchName:    r.BatchName,
			Plan:         r.Plan,
			ExamCategory: r.ExamCategory,
			Eligibility:  r.Eligibility,
			EnrolledAt:   r.EnrolledAt,
			NetAmount:    r.NetAmount.InexactFloat64(),
		}
	}
	return records
}
