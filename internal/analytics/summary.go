// enrollboard/internal/analytics/summary.go
package analytics

import (
	"time"

	"enrollboard/models"
)

// Summary - сводные показатели по отфильтрованному набору записей.
type Summary struct {
	TotalCount    int     `json:"totalCount"`
	Last7Days     int     `json:"last7Days"`
	TotalAmount   float64 `json:"totalAmount"`
	AverageAmount float64 `json:"averageAmount"`
}

// Summarize считает сводку заново по всему набору. Окно "последние 7 дней" -
// семь календарных дней, заканчивающихся днём now включительно. Календарные
// дни считаются в UTC - в этой зоне читатель книги нормализует записи.
// Среднее по пустому набору равно нулю, а не ошибке деления.
func Summarize(records []models.Enrollment, now time.Time) Summary {
	end := truncateDay(now.In(time.UTC))
	start := end.AddDate(0, 0, -6)

	var s Summary
	for _, r := range records {
		s.TotalCount++
		s.TotalAmount += r.NetAmount
		day := r.Day()
		if !day.Before(start) && !day.After(end) {
			s.Last7Days++
		}
	}
	if s.TotalCount > 0 {
		s.AverageAmount = s.TotalAmount / float64(s.TotalCount)
	}
	return s
}
