package workbook

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"enrollboard/models"
)

func testRun(rows int, total string) models.ReportRun {
	amount, _ := decimal.NewFromString(total)
	return models.ReportRun{
		ReportName:  "Foundation Data",
		QueryDate:   time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		GeneratedAt: time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC),
		RunID:       "6d2c1d0e-0000-0000-0000-000000000000",
		RowCount:    rows,
		TotalAmount: amount,
	}
}

func testRecords() []models.Enrollment {
	return []models.Enrollment{
		{BatchName: "Arjuna", Plan: "Premium", ExamCategory: "JEE", Eligibility: "Only_base_batch", EnrolledAt: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), NetAmount: 4500.50},
		{BatchName: "Lakshya", Plan: "Basic", ExamCategory: "NEET", Eligibility: "All", EnrolledAt: time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC), NetAmount: 3000},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enrollments.xlsx")
	require.NoError(t, WriteReport(path, "Foundation Data", testRun(2, "7500.50"), testRecords()))

	records, err := ReadWorkbook(path, []string{"Foundation Data"})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Arjuna", records[0].BatchName)
	assert.Equal(t, "Premium", records[0].Plan)
	assert.Equal(t, "JEE", records[0].ExamCategory)
	assert.Equal(t, "Only_base_batch", records[0].Eligibility)
	assert.Equal(t, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), records[0].EnrolledAt)
	assert.InDelta(t, 4500.50, records[0].NetAmount, 0.001)
}

func TestWriteReportMetadataRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enrollments.xlsx")
	require.NoError(t, WriteReport(path, "Foundation Data", testRun(2, "7500.50"), testRecords()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Foundation Data")
	require.NoError(t, err)

	assert.Equal(t, []string{"Report", "Foundation Data"}, rows[0])
	assert.Equal(t, []string{"Query Date", "2026-08-30"}, rows[1])
	assert.Equal(t, []string{"Row Count", "2"}, rows[4])
	assert.Equal(t, []string{"Total Net Amount", "7500.50"}, rows[5])
}

func TestWriteReportReplacesTabWholesale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enrollments.xlsx")
	require.NoError(t, WriteReport(path, "Foundation Data", testRun(2, "7500.50"), testRecords()))

	// Повторная запись с одной строкой должна полностью заменить вкладку.
	require.NoError(t, WriteReport(path, "Foundation Data", testRun(1, "3000.00"), testRecords()[:1]))

	records, err := ReadWorkbook(path, []string{"Foundation Data"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Arjuna", records[0].BatchName)
}

func TestWriteReportKeepsOtherTabs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enrollments.xlsx")
	require.NoError(t, WriteReport(path, "Foundation Data", testRun(2, "7500.50"), testRecords()))
	require.NoError(t, WriteReport(path, "CUET UG Data", testRun(1, "3000.00"), testRecords()[:1]))

	records, err := ReadWorkbook(path, []string{"Foundation Data", "CUET UG Data"})
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestReadWorkbookSkipsMissingTab(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enrollments.xlsx")
	require.NoError(t, WriteReport(path, "Foundation Data", testRun(2, "7500.50"), testRecords()))

	records, err := ReadWorkbook(path, []string{"Foundation Data", "No Such Tab"})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestReadWorkbookDropsRowsWithBadDates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enrollments.xlsx")
	require.NoError(t, WriteReport(path, "Foundation Data", testRun(2, "7500.50"), testRecords()))

	// Портим дату одной строки и дописываем строку с пустой суммой.
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Foundation Data", "E10", "not-a-date"))
	require.NoError(t, f.SetCellValue("Foundation Data", "A11", "Yakeen"))
	require.NoError(t, f.SetCellValue("Foundation Data", "E11", "2026-08-20"))
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	records, err := ReadWorkbook(path, []string{"Foundation Data"})
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Первая строка данных выжила, вторая отброшена, добавленная строка
	// прочитана с нулевой суммой.
	assert.Equal(t, "Arjuna", records[0].BatchName)
	assert.Equal(t, "Yakeen", records[1].BatchName)
	assert.Zero(t, records[1].NetAmount)
}

func TestReadWorkbookEmptyTab(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enrollments.xlsx")
	require.NoError(t, WriteReport(path, "Foundation Data", testRun(0, "0.00"), nil))

	records, err := ReadWorkbook(path, []string{"Foundation Data"})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFindHeaderRow(t *testing.T) {
	rows := [][]string{
		{"Report", "Foundation Data"},
		{},
		{"batch_name", "plan", "exam_category", "batch_eligibility", "converted_date", "net_amount"},
		{"Arjuna", "Premium", "JEE", "All", "2026-08-10", "100"},
	}
	assert.Equal(t, 2, findHeaderRow(rows))
	assert.Equal(t, -1, findHeaderRow(rows[:2]))
}
