package render

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/tuktuki/revenue-metrics-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Daily Report"

// column groups, in sheet order after the Date column
var sheetGroups = []struct {
	title string
	cols  int
}{
	{"App Downloads", 3},
	{"Episodes Viewed", 3},
	{"AdMob Impressions", 3},
	{"AdMob Revenue (INR)", 3},
	{"Razorpay Revenue (INR)", 1},
}

// Spreadsheet builds the multi-day report workbook: a two-row grouped
// header, one row per date (newest first, as given), and a totals row.
func Spreadsheet(reports []*domain.DailyMetrics) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, errors.Wrap(err, "creating report sheet")
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	if err := writeHeader(f); err != nil {
		return nil, err
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"16213E"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	f.SetCellStyle(sheetName, "A1", "N2", headerStyle)
	f.SetColWidth(sheetName, "A", "A", 14)
	f.SetColWidth(sheetName, "B", "N", 12)

	totals := newTotals()

	for i, report := range reports {
		rowIdx := 3 + i
		row := []any{
			report.Date,
			cellInt(report.AndroidDownloads), cellInt(report.IOSDownloads), totalCell(report.TotalDownloads()),
			cellInt(report.AndroidViews), cellInt(report.IOSViews), totalCell(report.TotalViews()),
			cellInt(report.AndroidImpressions), cellInt(report.IOSImpressions), totalCell(report.TotalImpressions()),
			cellInt(report.AndroidAdRevenueINR), cellInt(report.IOSAdRevenueINR), totalCell(report.TotalAdRevenueINR()),
			cellFloat(report.RazorpayRevenueINR),
		}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", rowIdx), &row); err != nil {
			return nil, errors.Wrap(err, "writing report row")
		}
		totals.add(report)
	}

	totalRowIdx := 3 + len(reports)
	totalRow := totals.row()
	if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", totalRowIdx), &totalRow); err != nil {
		return nil, errors.Wrap(err, "writing totals row")
	}

	totalStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F0F2F8"}},
	})
	f.SetCellStyle(sheetName,
		fmt.Sprintf("A%d", totalRowIdx), fmt.Sprintf("N%d", totalRowIdx), totalStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "encoding workbook")
	}
	return buf.Bytes(), nil
}

func writeHeader(f *excelize.File) error {
	if err := f.SetCellValue(sheetName, "A1", "Date"); err != nil {
		return err
	}
	if err := f.MergeCell(sheetName, "A1", "A2"); err != nil {
		return err
	}

	col := 2 // column B
	for _, group := range sheetGroups {
		start, _ := excelize.CoordinatesToCellName(col, 1)
		end, _ := excelize.CoordinatesToCellName(col+group.cols-1, 1)
		if err := f.SetCellValue(sheetName, start, group.title); err != nil {
			return err
		}
		if group.cols > 1 {
			if err := f.MergeCell(sheetName, start, end); err != nil {
				return err
			}
			for sub, label := range []string{"Android", "iOS", "Total"} {
				cell, _ := excelize.CoordinatesToCellName(col+sub, 2)
				if err := f.SetCellValue(sheetName, cell, label); err != nil {
					return err
				}
			}
		} else {
			down, _ := excelize.CoordinatesToCellName(col, 2)
			if err := f.MergeCell(sheetName, start, down); err != nil {
				return err
			}
		}
		col += group.cols
	}
	return nil
}

func cellInt(v *int) any {
	if v == nil {
		return NoData
	}
	return *v
}

func cellFloat(v *float64) any {
	if v == nil {
		return NoData
	}
	return *v
}

func totalCell(value int, ok bool) any {
	if !ok {
		return NoData
	}
	return value
}

// sheetTotals accumulates the bottom row. A column with no data on any
// day stays N/A instead of showing a misleading zero.
type sheetTotals struct {
	values map[string]float64
	seen   map[string]bool
}

func newTotals() *sheetTotals {
	return &sheetTotals{values: map[string]float64{}, seen: map[string]bool{}}
}

func (t *sheetTotals) addInt(key string, v *int) {
	if v == nil {
		return
	}
	t.values[key] += float64(*v)
	t.seen[key] = true
}

func (t *sheetTotals) addFloat(key string, v *float64) {
	if v == nil {
		return
	}
	t.values[key] += *v
	t.seen[key] = true
}

func (t *sheetTotals) add(r *domain.DailyMetrics) {
	t.addInt("downloads_android", r.AndroidDownloads)
	t.addInt("downloads_ios", r.IOSDownloads)
	t.addInt("views_android", r.AndroidViews)
	t.addInt("views_ios", r.IOSViews)
	t.addInt("impressions_android", r.AndroidImpressions)
	t.addInt("impressions_ios", r.IOSImpressions)
	t.addInt("revenue_android", r.AndroidAdRevenueINR)
	t.addInt("revenue_ios", r.IOSAdRevenueINR)
	t.addFloat("razorpay", r.RazorpayRevenueINR)
}

func (t *sheetTotals) cell(keys ...string) any {
	sum := 0.0
	found := false
	for _, key := range keys {
		if t.seen[key] {
			sum += t.values[key]
			found = true
		}
	}
	if !found {
		return NoData
	}
	if sum == float64(int(sum)) {
		return int(sum)
	}
	return sum
}

func (t *sheetTotals) row() []any {
	return []any{
		"Total",
		t.cell("downloads_android"), t.cell("downloads_ios"), t.cell("downloads_android", "downloads_ios"),
		t.cell("views_android"), t.cell("views_ios"), t.cell("views_android", "views_ios"),
		t.cell("impressions_android"), t.cell("impressions_ios"), t.cell("impressions_android", "impressions_ios"),
		t.cell("revenue_android"), t.cell("revenue_ios"), t.cell("revenue_android", "revenue_ios"),
		t.cell("razorpay"),
	}
}
