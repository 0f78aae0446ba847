package admob

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	admobdomain "github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/admob/domain"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/admob/admobclient"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
	"github.com/tuktuki/revenue-metrics-api/internal/domain"
)

// DefaultLookbackDays is the window used by the range variant of the
// report; the dashboard charts a rolling month.
const DefaultLookbackDays = 30

type Integrator struct {
	cfg    *config.Config
	Client admobclient.Client
}

func New(cfg *config.Config, client admobclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
	}
}

// DailyReport fetches the network report for a single date.
func (s *Integrator) DailyReport(ctx context.Context, date time.Time) (*domain.AdMobReport, error) {
	return s.report(ctx, date, date)
}

// RangeReport fetches the trailing window ending at the given date.
func (s *Integrator) RangeReport(ctx context.Context, end time.Time, lookbackDays int) (*domain.AdMobReport, error) {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	return s.report(ctx, end.AddDate(0, 0, -(lookbackDays-1)), end)
}

func (s *Integrator) report(ctx context.Context, start, end time.Time) (*domain.AdMobReport, error) {
	entries, err := s.Client.GenerateNetworkReport(ctx, start, end)
	if err != nil {
		logrus.WithError(err).Error("admob: failed to generate network report")
		return nil, err
	}

	report := &domain.AdMobReport{
		StartDate: start.Format(time.DateOnly),
		EndDate:   end.Format(time.DateOnly),
		DailyData: normalizeEntries(entries),
	}

	logrus.WithFields(logrus.Fields{
		"rows":       len(report.DailyData),
		"start_date": report.StartDate,
		"end_date":   report.EndDate,
	}).Debug("admob: network report normalized")

	return report, nil
}

// normalizeEntries converts the raw report stream into daily rows:
// platform strings folded into the two-value enum, earnings micros
// divided by 1e6 exactly, dates reformatted to YYYY-MM-DD.
func normalizeEntries(entries []admobdomain.ReportEntry) []domain.AdMobDailyRow {
	rows := make([]domain.AdMobDailyRow, 0, len(entries))

	for _, entry := range entries {
		if entry.Row == nil {
			continue
		}

		platform := domain.ParsePlatform(entry.Row.DimensionValues["PLATFORM"].Value)
		if platform == domain.PlatformUnknown {
			logrus.WithField("platform", entry.Row.DimensionValues["PLATFORM"].Value).
				Warn("admob: row with unknown platform skipped")
			continue
		}

		rows = append(rows, domain.AdMobDailyRow{
			Date:        normalizeDate(entry.Row.DimensionValues["DATE"].Value),
			Platform:    platform,
			Impressions: intMetric(entry.Row.MetricValues["IMPRESSIONS"]),
			Clicks:      intMetric(entry.Row.MetricValues["CLICKS"]),
			RevenueUSD:  microsMetric(entry.Row.MetricValues["ESTIMATED_EARNINGS"]),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return rows[i].Platform < rows[j].Platform
	})

	return rows
}

// normalizeDate turns the report's compact YYYYMMDD into YYYY-MM-DD.
func normalizeDate(value string) string {
	if len(value) != 8 {
		return value
	}
	return value[0:4] + "-" + value[4:6] + "-" + value[6:8]
}

func intMetric(m admobdomain.MetricValue) int {
	if m.IntegerValue == "" {
		return 0
	}
	v, err := strconv.Atoi(m.IntegerValue)
	if err != nil {
		return 0
	}
	return v
}

// microsMetric converts micros to currency units without intermediate
// rounding: 1e6 micros = 1 USD.
func microsMetric(m admobdomain.MetricValue) float64 {
	if m.MicrosValue == "" {
		return m.DoubleValue
	}
	micros, err := strconv.ParseInt(m.MicrosValue, 10, 64)
	if err != nil {
		return 0
	}
	return float64(micros) / 1_000_000
}
