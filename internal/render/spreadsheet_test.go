package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuktuki/revenue-metrics-api/internal/domain"
	"github.com/tuktuki/revenue-metrics-api/internal/render"
	"github.com/xuri/excelize/v2"
)

func openSheet(t *testing.T, raw []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, ref string) string {
	t.Helper()
	value, err := f.GetCellValue("Daily Report", ref)
	require.NoError(t, err)
	return value
}

func TestSpreadsheetLayout(t *testing.T) {
	raw, err := render.Spreadsheet([]*domain.DailyMetrics{sampleMetrics()})
	require.NoError(t, err)

	f := openSheet(t, raw)
	assert.Equal(t, []string{"Daily Report"}, f.GetSheetList())

	assert.Equal(t, "Date", cell(t, f, "A1"))
	assert.Equal(t, "App Downloads", cell(t, f, "B1"))
	assert.Equal(t, "Episodes Viewed", cell(t, f, "E1"))
	assert.Equal(t, "AdMob Impressions", cell(t, f, "H1"))
	assert.Equal(t, "AdMob Revenue (INR)", cell(t, f, "K1"))
	assert.Equal(t, "Razorpay Revenue (INR)", cell(t, f, "N1"))

	assert.Equal(t, "Android", cell(t, f, "B2"))
	assert.Equal(t, "iOS", cell(t, f, "C2"))
	assert.Equal(t, "Total", cell(t, f, "D2"))

	merges, err := f.GetMergeCells("Daily Report")
	require.NoError(t, err)
	refs := make([]string, 0, len(merges))
	for _, m := range merges {
		refs = append(refs, m.GetStartAxis()+":"+m.GetEndAxis())
	}
	assert.Contains(t, refs, "A1:A2")
	assert.Contains(t, refs, "B1:D1")
	assert.Contains(t, refs, "N1:N2")
}

func TestSpreadsheetDataAndTotals(t *testing.T) {
	day1 := sampleMetrics()
	day2 := sampleMetrics()
	day2.Date = "2025-09-30"
	day2.AndroidDownloads = intPtr(100)
	day2.IOSDownloads = intPtr(50)

	raw, err := render.Spreadsheet([]*domain.DailyMetrics{day1, day2})
	require.NoError(t, err)
	f := openSheet(t, raw)

	// rows keep the given order, newest first
	assert.Equal(t, "2025-10-01", cell(t, f, "A3"))
	assert.Equal(t, "2025-09-30", cell(t, f, "A4"))

	assert.Equal(t, "120", cell(t, f, "B3"))
	assert.Equal(t, "80", cell(t, f, "C3"))
	assert.Equal(t, "200", cell(t, f, "D3"))
	assert.Equal(t, "999", cell(t, f, "N3"))

	// totals row below the data
	assert.Equal(t, "Total", cell(t, f, "A5"))
	assert.Equal(t, "220", cell(t, f, "B5"))
	assert.Equal(t, "130", cell(t, f, "C5"))
	assert.Equal(t, "350", cell(t, f, "D5"))
	assert.Equal(t, "1998", cell(t, f, "N5"))
}

func TestSpreadsheetMissingDataStaysNA(t *testing.T) {
	metrics := &domain.DailyMetrics{Date: "2025-10-01", USDToINR: 83.5}
	metrics.AndroidDownloads = intPtr(120)

	raw, err := render.Spreadsheet([]*domain.DailyMetrics{metrics})
	require.NoError(t, err)
	f := openSheet(t, raw)

	assert.Equal(t, "120", cell(t, f, "B3"))
	assert.Equal(t, "N/A", cell(t, f, "C3"))
	// one present side still yields a total
	assert.Equal(t, "120", cell(t, f, "D3"))
	assert.Equal(t, "N/A", cell(t, f, "E3"))
	assert.Equal(t, "N/A", cell(t, f, "N3"))

	// a column empty on every day totals to N/A, not zero
	assert.Equal(t, "N/A", cell(t, f, "E4"))
	assert.Equal(t, "120", cell(t, f, "B4"))
}
