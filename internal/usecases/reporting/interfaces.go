package reporting

import (
	"context"
	"time"

	razorpaydomain "github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/razorpay/domain"
	"github.com/tuktuki/revenue-metrics-api/internal/domain"
)

// AdjustSource provides installs and episode views per platform for one
// report date.
type AdjustSource interface {
	DailyReport(ctx context.Context, date string) (*domain.AdjustReport, error)
}

// AdMobSource provides the normalized network report.
type AdMobSource interface {
	DailyReport(ctx context.Context, date time.Time) (*domain.AdMobReport, error)
}

// PaymentSource lists the full payment history; day bucketing happens on
// our side because the report day is an IST civil day.
type PaymentSource interface {
	ListPayments(ctx context.Context) ([]razorpaydomain.Payment, error)
}

// RateProvider converts USD to INR. It never fails; a stale or fallback
// rate is returned instead.
type RateProvider interface {
	USDToINR(ctx context.Context) float64
}

// DateResolver decides which calendar date "yesterday" is in IST.
type DateResolver interface {
	ReportDate(ctx context.Context, offsetDays int) string
}

// ReportSink persists one finished report in the app backend.
type ReportSink interface {
	SaveReport(ctx context.Context, envMode string, payload *domain.ReportPayload) error
}

// Reporter is the aggregation engine behind every report surface: the
// JSON endpoints, the HTML dashboard, the spreadsheet and the cron sync.
type Reporter interface {
	// DailyReport aggregates all sources for one date. Individual
	// source failures leave the matching fields nil instead of failing
	// the report.
	DailyReport(ctx context.Context, date string) (*domain.DailyMetrics, error)

	// TrailingReports aggregates the endDate plus the previous days-1
	// dates, newest first.
	TrailingReports(ctx context.Context, endDate string, days int) ([]*domain.DailyMetrics, error)

	// BuildPayload converts an aggregate into the backend wire shape.
	BuildPayload(metrics *domain.DailyMetrics) (*domain.ReportPayload, error)

	// SyncReport aggregates one date and posts it to the backend for
	// the given environment.
	SyncReport(ctx context.Context, date, envMode string) (*domain.DailyMetrics, error)

	// ResolveReportDate returns the date the scheduled sync should
	// report on.
	ResolveReportDate(ctx context.Context) string
}
