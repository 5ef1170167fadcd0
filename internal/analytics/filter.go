// enrollboard/internal/analytics/filter.go
package analytics

import (
	"time"

	"enrollboard/models"
)

// Filter описывает выбранные пользователем ограничения на таблицу записей.
// Нулевые даты означают отсутствие границы, пустой список значений -
// отсутствие ограничения по соответствующей колонке.
type Filter struct {
	From    time.Time
	To      time.Time
	Batches []string
	Exams   []string
	Plans   []string
}

// Apply возвращает подмножество записей, удовлетворяющих всем активным
// предикатам фильтра. Даты сравниваются включительно, по календарным дням.
// Пустой результат - нормальное состояние, а не ошибка.
func Apply(records []models.Enrollment, f Filter) []models.Enrollment {
	batches := toSet(f.Batches)
	exams := toSet(f.Exams)
	plans := toSet(f.Plans)

	from := truncateDay(f.From)
	to := truncateDay(f.To)

	out := make([]models.Enrollment, 0, len(records))
	for _, r := range records {
		day := r.Day()
		if !f.From.IsZero() && day.Before(from) {
			continue
		}
		if !f.To.IsZero() && day.After(to) {
			continue
		}
		if len(batches) > 0 {
			if _, ok := batches[r.BatchName]; !ok {
				continue
			}
		}
		if len(exams) > 0 {
			if _, ok := exams[r.ExamCategory]; !ok {
				continue
			}
		}
		if len(plans) > 0 {
			if _, ok := plans[r.Plan]; !ok {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
