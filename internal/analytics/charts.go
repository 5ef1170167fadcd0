// enrollboard/internal/analytics/charts.go
package analytics

import (
	"sort"
	"time"

	"enrollboard/models"
)

// Dataset - пары метка/значение для столбчатых и круговых диаграмм.
type Dataset struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Series - одна линия на графике временного ряда.
type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// TimeSeries - дневной график с разбивкой на несколько линий.
type TimeSeries struct {
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}

const dayLabelLayout = "02 Jan 2006"

// OtherSeriesName - метка, под которой сворачиваются потоки за пределами топа.
const OtherSeriesName = "Other"

// CountByBatch - количество записей по потокам, по убыванию, первые limit.
func CountByBatch(records []models.Enrollment, limit int) Dataset {
	return topDataset(countBy(records, func(r models.Enrollment) string { return r.BatchName }), limit)
}

// CountByExam - количество записей по категориям экзаменов.
func CountByExam(records []models.Enrollment) Dataset {
	return topDataset(countBy(records, func(r models.Enrollment) string { return r.ExamCategory }), 0)
}

// CountByEligibility - количество записей по категориям доступности потока.
func CountByEligibility(records []models.Enrollment) Dataset {
	return topDataset(countBy(records, func(r models.Enrollment) string { return r.Eligibility }), 0)
}

// AmountByExam - сумма net_amount по категориям экзаменов, первые limit.
func AmountByExam(records []models.Enrollment, limit int) Dataset {
	totals := make(map[string]float64)
	for _, r := range records {
		totals[r.ExamCategory] += r.NetAmount
	}
	return topDataset(totals, limit)
}

// AmountByDay - сумма net_amount по календарным дням за days дней,
// заканчивающихся днём end. Дни без записей присутствуют с нулём.
func AmountByDay(records []models.Enrollment, end time.Time, days int) Dataset {
	labels, index := dayWindow(end, days)
	values := make([]float64, len(labels))
	for _, r := range records {
		if i, ok := index[r.Day()]; ok {
			values[i] += r.NetAmount
		}
	}
	return Dataset{Labels: labels, Values: values}
}

// DailyCountByBatch - количество записей по дням за days дней до end
// включительно, с отдельной линией на каждый из maxSeries крупнейших
// потоков; остальные сворачиваются в "Other".
func DailyCountByBatch(records []models.Enrollment, end time.Time, days, maxSeries int) TimeSeries {
	labels, index := dayWindow(end, days)

	// В топ попадают потоки по числу записей внутри окна.
	var inWindow []models.Enrollment
	for _, r := range records {
		if _, ok := index[r.Day()]; ok {
			inWindow = append(inWindow, r)
		}
	}
	top := topDataset(countBy(inWindow, func(r models.Enrollment) string { return r.BatchName }), maxSeries)
	rank := make(map[string]int, len(top.Labels))
	for i, name := range top.Labels {
		rank[name] = i
	}

	series := make([]Series, len(top.Labels))
	for i, name := range top.Labels {
		series[i] = Series{Name: name, Values: make([]float64, len(labels))}
	}
	other := Series{Name: OtherSeriesName, Values: make([]float64, len(labels))}
	hasOther := false

	for _, r := range inWindow {
		day, ok := index[r.Day()]
		if !ok {
			continue
		}
		if i, ok := rank[r.BatchName]; ok {
			series[i].Values[day]++
		} else {
			other.Values[day]++
			hasOther = true
		}
	}
	if hasOther {
		series = append(series, other)
	}
	return TimeSeries{Labels: labels, Series: series}
}

// dayWindow строит метки последних days календарных дней c индексом по дате.
// Дни строятся в UTC: ключи map[time.Time] сравниваются вместе с зоной, а
// записи приходят из читателя книги нормализованными к UTC.
func dayWindow(end time.Time, days int) ([]string, map[time.Time]int) {
	endDay := truncateDay(end.In(time.UTC))
	labels := make([]string, days)
	index := make(map[time.Time]int, days)
	for i := 0; i < days; i++ {
		day := endDay.AddDate(0, 0, i-days+1)
		labels[i] = day.Format(dayLabelLayout)
		index[day] = i
	}
	return labels, index
}

func countBy(records []models.Enrollment, key func(models.Enrollment) string) map[string]float64 {
	counts := make(map[string]float64)
	for _, r := range records {
		counts[key(r)]++
	}
	return counts
}

// topDataset сортирует группы по убыванию значения (при равенстве - по
// метке) и обрезает до limit; limit <= 0 означает без ограничения.
func topDataset(totals map[string]float64, limit int) Dataset {
	labels := make([]string, 0, len(totals))
	for label := range totals {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if totals[labels[i]] != totals[labels[j]] {
			return totals[labels[i]] > totals[labels[j]]
		}
		return labels[i] < labels[j]
	})
	if limit > 0 && len(labels) > limit {
		labels = labels[:limit]
	}

	ds := Dataset{Labels: labels, Values: make([]float64, len(labels))}
	for i, label := range labels {
		ds.Values[i] = totals[label]
	}
	return ds
}
