package reporting

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/razorpay"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
	"github.com/tuktuki/revenue-metrics-api/internal/domain"
	"github.com/tuktuki/revenue-metrics-api/pkg/utils"
)

// NoData marks a metric for which every source stayed silent. The
// backend and the dashboards both render it literally.
const NoData = "N/A"

type Service struct {
	cfg          *config.Config
	adjust       AdjustSource
	admob        AdMobSource
	payments     PaymentSource
	rates        RateProvider
	dateResolver DateResolver
	sink         ReportSink
}

func NewService(
	cfg *config.Config,
	adjust AdjustSource,
	admob AdMobSource,
	payments PaymentSource,
	rates RateProvider,
	dateResolver DateResolver,
	sink ReportSink,
) Reporter {
	return &Service{
		cfg:          cfg,
		adjust:       adjust,
		admob:        admob,
		payments:     payments,
		rates:        rates,
		dateResolver: dateResolver,
		sink:         sink,
	}
}

// DailyReport queries the three sources concurrently and merges the
// results. A failing source is logged and leaves its fields nil so the
// report can still go out partially filled.
func (s *Service) DailyReport(ctx context.Context, date string) (*domain.DailyMetrics, error) {
	parsed, err := time.ParseInLocation(time.DateOnly, date, utils.ReportTimezone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid report date %q", date)
	}

	var (
		adjustReport *domain.AdjustReport
		admobReport  *domain.AdMobReport
		revenue      float64
		paymentsOK   bool

		adjustErr   error
		admobErr    error
		razorpayErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		adjustReport, adjustErr = s.adjust.DailyReport(ctx, date)
	}()

	go func() {
		defer wg.Done()
		admobReport, admobErr = s.admob.DailyReport(ctx, parsed)
	}()

	go func() {
		defer wg.Done()
		listing, err := s.payments.ListPayments(ctx)
		if err != nil {
			razorpayErr = err
			return
		}
		revenue, _ = razorpay.DayRevenue(listing, date)
		paymentsOK = true
	}()

	wg.Wait()

	if adjustErr != nil {
		logrus.WithError(adjustErr).WithField("report_date", date).
			Warn("report: adjust source failed, fields stay empty")
	}
	if admobErr != nil {
		logrus.WithError(admobErr).WithField("report_date", date).
			Warn("report: admob source failed, fields stay empty")
	}
	if razorpayErr != nil {
		logrus.WithError(razorpayErr).WithField("report_date", date).
			Warn("report: razorpay source failed, fields stay empty")
	}

	metrics := &domain.DailyMetrics{
		Date:     date,
		USDToINR: s.rates.USDToINR(ctx),
	}

	s.applyAdjust(metrics, adjustReport)
	s.applyAdMob(metrics, admobReport, date)
	if paymentsOK {
		metrics.RazorpayRevenueINR = &revenue
	}

	return metrics, nil
}

func (s *Service) applyAdjust(metrics *domain.DailyMetrics, report *domain.AdjustReport) {
	if report == nil {
		return
	}
	if report.Android != nil {
		metrics.AndroidDownloads = intPtr(report.Android.Installs)
		metrics.AndroidViews = intPtr(report.Android.Views)
	}
	if report.IOS != nil {
		metrics.IOSDownloads = intPtr(report.IOS.Installs)
		metrics.IOSViews = intPtr(report.IOS.Views)
	}
}

// applyAdMob keeps only the rows matching the report date; the network
// report may carry neighboring days depending on the requested range.
func (s *Service) applyAdMob(metrics *domain.DailyMetrics, report *domain.AdMobReport, date string) {
	if report == nil {
		return
	}

	for _, row := range report.DailyData {
		if row.Date != date {
			continue
		}

		inr := utils.RoundToInt(row.RevenueUSD * metrics.USDToINR)

		switch row.Platform {
		case domain.PlatformAndroid:
			metrics.AndroidImpressions = intPtr(row.Impressions)
			metrics.AndroidAdRevenueUSD = floatPtr(row.RevenueUSD)
			metrics.AndroidAdRevenueINR = intPtr(inr)
		case domain.PlatformIOS:
			metrics.IOSImpressions = intPtr(row.Impressions)
			metrics.IOSAdRevenueUSD = floatPtr(row.RevenueUSD)
			metrics.IOSAdRevenueINR = intPtr(inr)
		}
	}
}

// TrailingReports aggregates days consecutive dates ending at endDate,
// newest first. A short pause between days keeps the burst against the
// upstream APIs polite.
func (s *Service) TrailingReports(ctx context.Context, endDate string, days int) ([]*domain.DailyMetrics, error) {
	end, err := time.ParseInLocation(time.DateOnly, endDate, utils.ReportTimezone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid report date %q", endDate)
	}
	if days < 1 {
		days = 1
	}

	delay := time.Duration(s.cfg.ReportSync.RequestDelayMs) * time.Millisecond

	reports := make([]*domain.DailyMetrics, 0, days)
	for i := 0; i < days; i++ {
		if i > 0 && delay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		date := end.AddDate(0, 0, -i).Format(time.DateOnly)
		metrics, err := s.DailyReport(ctx, date)
		if err != nil {
			return nil, err
		}
		reports = append(reports, metrics)
	}

	return reports, nil
}

// BuildPayload converts the aggregate into the backend's all-string
// shape. Date becomes epoch milliseconds of midnight IST.
func (s *Service) BuildPayload(metrics *domain.DailyMetrics) (*domain.ReportPayload, error) {
	millis, err := utils.ISTMidnightMillis(metrics.Date)
	if err != nil {
		return nil, err
	}

	return &domain.ReportPayload{
		Date:                    strconv.FormatInt(millis, 10),
		AppDownloadAndroid:      intField(metrics.AndroidDownloads),
		AppDownloadIOS:          intField(metrics.IOSDownloads),
		EpisodesViewedAndroid:   intField(metrics.AndroidViews),
		EpisodesViewedIOS:       intField(metrics.IOSViews),
		AdmobImpressionsAndroid: intField(metrics.AndroidImpressions),
		AdmobImpressionsIOS:     intField(metrics.IOSImpressions),
		AdmobRevenueAndroid:     intField(metrics.AndroidAdRevenueINR),
		AdmobRevenueIOS:         intField(metrics.IOSAdRevenueINR),
		RazorpayRevenue:         floatField(metrics.RazorpayRevenueINR),
	}, nil
}

// SyncReport is the cron path: aggregate one date, post to the backend
// for the given environment, return the aggregate for logging.
func (s *Service) SyncReport(ctx context.Context, date, envMode string) (*domain.DailyMetrics, error) {
	metrics, err := s.DailyReport(ctx, date)
	if err != nil {
		return nil, err
	}

	payload, err := s.BuildPayload(metrics)
	if err != nil {
		return nil, err
	}

	if err := s.sink.SaveReport(ctx, envMode, payload); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"report_date": date,
		"env_mode":    envMode,
	}).Info("report: daily report saved to backend")

	return metrics, nil
}

func (s *Service) ResolveReportDate(ctx context.Context) string {
	return s.dateResolver.ReportDate(ctx, s.cfg.ReportSync.DateOffsetDays)
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func intField(v *int) string {
	if v == nil {
		return NoData
	}
	return strconv.Itoa(*v)
}

func floatField(v *float64) string {
	if v == nil {
		return NoData
	}
	return strconv.FormatFloat(utils.RoundWithTwoDecimalPlace(*v), 'f', -1, 64)
}
