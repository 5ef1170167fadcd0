// enrollboard/internal/handlers/dashboard_handler.go
package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"enrollboard/internal/analytics"
	"enrollboard/internal/workbook"
	"enrollboard/models"
)

// Пределы отображения, зафиксированные дизайном дашборда.
const (
	topBatchesLimit  = 15
	topExamsLimit    = 10
	dailyWindowDays  = 7
	dailySeriesLimit = 8
)

// DashboardResponse - полный ответ на одно изменение фильтров: сводка и
// все наборы данных для диаграмм. Пересчитывается с нуля при каждом запросе.
type DashboardResponse struct {
	Summary           analytics.Summary    `json:"summary"`
	BatchCounts       analytics.Dataset    `json:"batchCounts"`
	DailyByBatch      analytics.TimeSeries `json:"dailyByBatch"`
	ExamCounts        analytics.Dataset    `json:"examCounts"`
	EligibilityCounts analytics.Dataset    `json:"eligibilityCounts"`
	DailyRevenue      analytics.Dataset    `json:"dailyRevenue"`
	ExamRevenue       analytics.Dataset    `json:"examRevenue"`
	RowCount          int                  `json:"rowCount"`
	Tabs              []string             `json:"tabs"`
	LoadedAt          time.Time            `json:"loadedAt"`
}

// GetDashboardHandler применяет фильтры из запроса и возвращает сводку и
// наборы данных диаграмм. Пустой результат фильтрации - валидный ответ с
// пустыми наборами, не ошибка.
func GetDashboardHandler(c *gin.Context) {
	snap, err := loadSnapshot(false)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to load workbook data: " + err.Error()})
		return
	}

	filter := parseFilter(c)
	filtered := analytics.Apply(snap.Records, filter)
	now := windowEnd(filter)

	c.JSON(http.StatusOK, DashboardResponse{
		Summary:           analytics.Summarize(filtered, now),
		BatchCounts:       analytics.CountByBatch(filtered, topBatchesLimit),
		DailyByBatch:      analytics.DailyCountByBatch(filtered, now, dailyWindowDays, dailySeriesLimit),
		ExamCounts:        analytics.CountByExam(filtered),
		EligibilityCounts: analytics.CountByEligibility(filtered),
		DailyRevenue:      analytics.AmountByDay(filtered, now, dailyWindowDays),
		ExamRevenue:       analytics.AmountByExam(filtered, topExamsLimit),
		RowCount:          len(filtered),
		Tabs:              snap.Tabs,
		LoadedAt:          snap.LoadedAt,
	})
}

// FiltersResponse перечисляет допустимые значения для элементов управления.
type FiltersResponse struct {
	Batches []string `json:"batches"`
	Exams   []string `json:"exams"`
	Plans   []string `json:"plans"`
	MinDate string   `json:"minDate"`
	MaxDate string   `json:"maxDate"`
}

// GetFiltersHandler возвращает уникальные значения категориальных колонок и
// диапазон дат всей таблицы - ими заполняются элементы управления.
func GetFiltersHandler(c *gin.Context) {
	snap, err := loadSnapshot(false)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to load workbook data: " + err.Error()})
		return
	}

	resp := FiltersResponse{
		Batches: distinct(snap.Records, func(r models.Enrollment) string { return r.BatchName }),
		Exams:   distinct(snap.Records, func(r models.Enrollment) string { return r.ExamCategory }),
		Plans:   distinct(snap.Records, func(r models.Enrollment) string { return r.Plan }),
	}
	if len(snap.Records) > 0 {
		min, max := snap.Records[0].Day(), snap.Records[0].Day()
		for _, r := range snap.Records[1:] {
			if d := r.Day(); d.Before(min) {
				min = d
			} else if d.After(max) {
				max = d
			}
		}
		resp.MinDate = min.Format(workbook.DateLayout)
		resp.MaxDate = max.Format(workbook.DateLayout)
	}
	c.JSON(http.StatusOK, resp)
}

// ReloadHandler сбрасывает кэш и перечитывает книгу. Это действие кнопки
// Refresh на дашборде.
func ReloadHandler(c *gin.Context) {
	snap, err := loadSnapshot(true)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to reload workbook: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Данные перечитаны из книги",
		"rowCount": len(snap.Records),
		"loadedAt": snap.LoadedAt,
	})
}

// parseFilter собирает фильтр из query-параметров. Нечитаемые даты
// игнорируются - граница просто остаётся не заданной.
func parseFilter(c *gin.Context) analytics.Filter {
	var f analytics.Filter
	if v := c.Query("from"); v != "" {
		if t, err := time.Parse(workbook.DateLayout, v); err == nil {
			f.From = t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse(workbook.DateLayout, v); err == nil {
			f.To = t
		}
	}
	f.Batches = c.QueryArray("batch")
	f.Exams = c.QueryArray("exam")
	f.Plans = c.QueryArray("plan")
	return f
}

// windowEnd - «сейчас» для семидневных окон: верхняя граница выбранного
// интервала, а без неё - текущий день. Анкер приводится к UTC, как и даты
// записей при чтении книги.
func windowEnd(f analytics.Filter) time.Time {
	if !f.To.IsZero() {
		return f.To
	}
	return time.Now().UTC()
}

func distinct(records []models.Enrollment, key func(models.Enrollment) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, r := range records {
		v := key(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}
