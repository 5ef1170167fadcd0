package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enrollboard/models"
)

func TestCountByBatch(t *testing.T) {
	records := sampleRecords()

	ds := CountByBatch(records, 15)
	require.Equal(t, []string{"Arjuna", "Lakshya", "Yakeen"}, ds.Labels)
	assert.Equal(t, []float64{2, 2, 1}, ds.Values)

	t.Run("limit truncates", func(t *testing.T) {
		ds := CountByBatch(records, 2)
		assert.Len(t, ds.Labels, 2)
		assert.Equal(t, []float64{2, 2}, ds.Values)
	})

	t.Run("empty input yields empty dataset", func(t *testing.T) {
		ds := CountByBatch(nil, 15)
		assert.Empty(t, ds.Labels)
		assert.Empty(t, ds.Values)
	})
}

func TestCountByExamAndEligibility(t *testing.T) {
	records := sampleRecords()

	exams := CountByExam(records)
	assert.ElementsMatch(t, []string{"JEE", "NEET", "CUET"}, exams.Labels)

	elig := CountByEligibility(records)
	require.Equal(t, []string{"Only_base_batch"}, elig.Labels)
	assert.Equal(t, []float64{5}, elig.Values)
}

func TestAmountByExamMatchesSummaryTotal(t *testing.T) {
	records := sampleRecords()

	ds := AmountByExam(records, 10)
	var chartTotal float64
	for _, v := range ds.Values {
		chartTotal += v
	}

	s := Summarize(records, day(2026, 8, 25))
	assert.InDelta(t, s.TotalAmount, chartTotal, 0.001)
}

func TestDailyCountByBatch(t *testing.T) {
	end := day(2026, 8, 25)
	records := sampleRecords()

	ts := DailyCountByBatch(records, end, 7, 8)
	require.Len(t, ts.Labels, 7)
	assert.Equal(t, "19 Aug 2026", ts.Labels[0])
	assert.Equal(t, "25 Aug 2026", ts.Labels[6])

	// В окне только Lakshya (20-е) и Yakeen (25-е).
	require.Len(t, ts.Series, 2)
	for _, s := range ts.Series {
		require.Len(t, s.Values, 7)
	}
}

func TestDailyCountByBatchFoldsIntoOther(t *testing.T) {
	end := day(2026, 8, 25)
	var records []models.Enrollment
	for _, batch := range []string{"A", "B", "C"} {
		records = append(records, rec(batch, "JEE", "Basic", day(2026, 8, 24), 100))
	}
	records = append(records, rec("A", "JEE", "Basic", day(2026, 8, 23), 100))

	ts := DailyCountByBatch(records, end, 7, 1)
	require.Len(t, ts.Series, 2)
	assert.Equal(t, "A", ts.Series[0].Name)
	assert.Equal(t, OtherSeriesName, ts.Series[1].Name)

	// B и C свёрнуты: две записи 24-го числа.
	assert.Equal(t, float64(2), ts.Series[1].Values[5])
}

func TestAmountByDayZeroFillsMissingDays(t *testing.T) {
	end := day(2026, 8, 25)
	ds := AmountByDay(sampleRecords(), end, 7)

	require.Len(t, ds.Labels, 7)
	require.Len(t, ds.Values, 7)
	assert.Equal(t, float64(5000), ds.Values[1]) // 20 августа
	assert.Equal(t, float64(0), ds.Values[2])    // 21 августа - без записей
	assert.Equal(t, float64(2000), ds.Values[6]) // 25 августа
}

func TestDailyWindowsNonUTCNow(t *testing.T) {
	// Часовой пояс сервера не должен опустошать дневные графики: дни окна
	// обязаны совпадать с UTC-днями записей из книги.
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, 8, 25, 10, 0, 0, 0, ist)
	records := sampleRecords()

	ds := AmountByDay(records, now, 7)
	require.Len(t, ds.Values, 7)
	assert.Equal(t, float64(5000), ds.Values[1]) // 20 августа
	assert.Equal(t, float64(2000), ds.Values[6]) // 25 августа

	ts := DailyCountByBatch(records, now, 7, 8)
	require.NotEmpty(t, ts.Series)
	assert.Equal(t, "25 Aug 2026", ts.Labels[6])
}

func TestSingleBatchSelectionRestrictsAllDatasets(t *testing.T) {
	records := sampleRecords()
	filtered := Apply(records, Filter{Batches: []string{"Lakshya"}})
	end := day(2026, 8, 25)

	batches := CountByBatch(filtered, 15)
	require.Equal(t, []string{"Lakshya"}, batches.Labels)

	exams := CountByExam(filtered)
	require.Equal(t, []string{"NEET"}, exams.Labels)

	elig := CountByEligibility(filtered)
	assert.Equal(t, []float64{2}, elig.Values)

	daily := DailyCountByBatch(filtered, end, 7, 8)
	for _, s := range daily.Series {
		assert.Equal(t, "Lakshya", s.Name)
	}
}
