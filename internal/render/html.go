package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"github.com/pkg/errors"
	"github.com/tuktuki/revenue-metrics-api/internal/domain"
)

// NoData is what an empty metric renders as, in every surface.
const NoData = "N/A"

var reportTemplate = template.Must(template.New("daily_report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Daily Report {{.Date}}</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; margin: 24px; color: #1a1a2e; }
  h1 { font-size: 20px; }
  .subtitle { color: #666; font-size: 13px; margin-bottom: 16px; }
  table { border-collapse: collapse; min-width: 560px; }
  th, td { border: 1px solid #d0d0d8; padding: 8px 14px; text-align: right; }
  th { background: #16213e; color: #fff; font-weight: 600; }
  td:first-child, th:first-child { text-align: left; }
  tr.total td { font-weight: 700; background: #f0f2f8; }
</style>
</head>
<body>
<h1>Tuktuki Daily Report — {{.Date}}</h1>
<p class="subtitle">USD/INR rate used: {{.Rate}}</p>
<table>
  <tr><th>Metric</th><th>Android</th><th>iOS</th><th>Total</th></tr>
  {{range .Rows}}<tr><td>{{.Name}}</td><td>{{.Android}}</td><td>{{.IOS}}</td><td>{{.Total}}</td></tr>
  {{end}}<tr class="total"><td>Razorpay Revenue (INR)</td><td colspan="3">{{.RazorpayRevenue}}</td></tr>
</table>
</body>
</html>
`))

type reportRow struct {
	Name    string
	Android string
	IOS     string
	Total   string
}

type reportView struct {
	Date            string
	Rate            string
	Rows            []reportRow
	RazorpayRevenue string
}

// HTML renders one day's aggregate as the mail-friendly dashboard page.
func HTML(metrics *domain.DailyMetrics) ([]byte, error) {
	view := reportView{
		Date:            metrics.Date,
		Rate:            strconv.FormatFloat(metrics.USDToINR, 'f', 2, 64),
		RazorpayRevenue: DisplayFloat(metrics.RazorpayRevenueINR),
		Rows: []reportRow{
			intRow("App Downloads", metrics.AndroidDownloads, metrics.IOSDownloads),
			intRow("Episodes Viewed", metrics.AndroidViews, metrics.IOSViews),
			intRow("AdMob Impressions", metrics.AndroidImpressions, metrics.IOSImpressions),
			intRow("AdMob Revenue (INR)", metrics.AndroidAdRevenueINR, metrics.IOSAdRevenueINR),
		},
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, view); err != nil {
		return nil, errors.Wrap(err, "rendering report page")
	}
	return buf.Bytes(), nil
}

func intRow(name string, android, ios *int) reportRow {
	row := reportRow{
		Name:    name,
		Android: DisplayInt(android),
		IOS:     DisplayInt(ios),
		Total:   NoData,
	}
	if android != nil || ios != nil {
		total := 0
		if android != nil {
			total += *android
		}
		if ios != nil {
			total += *ios
		}
		row.Total = strconv.Itoa(total)
	}
	return row
}

// DisplayInt formats an optional count for the report surfaces.
func DisplayInt(v *int) string {
	if v == nil {
		return NoData
	}
	return strconv.Itoa(*v)
}

// DisplayFloat formats an optional amount with two decimals.
func DisplayFloat(v *float64) string {
	if v == nil {
		return NoData
	}
	return fmt.Sprintf("%.2f", *v)
}
