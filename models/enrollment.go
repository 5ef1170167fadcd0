// enrollboard/models/enrollment.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Enrollment - одна строка зачисления из витрины данных.
// Записи неизменяемы: дашборд пересобирает всю таблицу при каждой
// перезагрузке книги, без отслеживания идентичности и дедупликации.
type Enrollment struct {
	BatchName    string    `json:"batchName" gorm:"column:batch_name"`
	Plan         string    `json:"plan" gorm:"column:plan"`
	ExamCategory string    `json:"examCategory" gorm:"column:exam_category"`
	Eligibility  string    `json:"eligibility" gorm:"column:batch_eligibility"`
	EnrolledAt   time.Time `json:"enrolledAt" gorm:"column:converted_date"`
	NetAmount    float64   `json:"netAmount" gorm:"column:net_amount"`
}

// Day возвращает дату зачисления, усечённую до календарного дня.
func (e Enrollment) Day() time.Time {
	return time.Date(e.EnrolledAt.Year(), e.EnrolledAt.Month(), e.EnrolledAt.Day(), 0, 0, 0, 0, e.EnrolledAt.Location())
}

// ReportRun - метаданные одного запуска фетчера. Записываются в начало
// вкладки перед строкой заголовков.
type ReportRun struct {
	ReportName  string          `json:"reportName"`
	QueryDate   time.Time       `json:"queryDate"`
	GeneratedAt time.Time       `json:"generatedAt"`
	RunID       string          `json:"runId"`
	RowCount    int             `json:"rowCount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}
