package reporting_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	razorpaydomain "github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/razorpay/domain"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
	"github.com/tuktuki/revenue-metrics-api/internal/domain"
	"github.com/tuktuki/revenue-metrics-api/internal/usecases/reporting"
	"github.com/tuktuki/revenue-metrics-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

const reportDate = "2025-10-01"

type fixture struct {
	adjust   *mocks.MockAdjustSource
	admob    *mocks.MockAdMobSource
	payments *mocks.MockPaymentSource
	rates    *mocks.MockRateProvider
	resolver *mocks.MockDateResolver
	sink     *mocks.MockReportSink
	service  reporting.Reporter
}

func newFixture(t *testing.T, cfg *config.Config) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		adjust:   mocks.NewMockAdjustSource(ctrl),
		admob:    mocks.NewMockAdMobSource(ctrl),
		payments: mocks.NewMockPaymentSource(ctrl),
		rates:    mocks.NewMockRateProvider(ctrl),
		resolver: mocks.NewMockDateResolver(ctrl),
		sink:     mocks.NewMockReportSink(ctrl),
	}
	f.service = reporting.NewService(cfg, f.adjust, f.admob, f.payments, f.rates, f.resolver, f.sink)
	return f
}

func epochIST(value string) int64 {
	loc, _ := time.LoadLocation("Asia/Kolkata")
	t, _ := time.ParseInLocation("2006-01-02 15:04:05", value, loc)
	return t.Unix()
}

func fullAdjustReport() *domain.AdjustReport {
	return &domain.AdjustReport{
		Date:    reportDate,
		Android: &domain.PlatformMetrics{Installs: 120, Views: 300},
		IOS:     &domain.PlatformMetrics{Installs: 80, Views: 200},
	}
}

func fullAdMobReport() *domain.AdMobReport {
	return &domain.AdMobReport{
		StartDate: reportDate,
		EndDate:   reportDate,
		DailyData: []domain.AdMobDailyRow{
			{Date: reportDate, Platform: domain.PlatformAndroid, Impressions: 500, Clicks: 10, RevenueUSD: 2.0},
			{Date: reportDate, Platform: domain.PlatformIOS, Impressions: 300, Clicks: 5, RevenueUSD: 1.0},
			// neighboring day must not leak into the report
			{Date: "2025-09-30", Platform: domain.PlatformAndroid, Impressions: 9999, RevenueUSD: 50},
		},
	}
}

func fullPayments() []razorpaydomain.Payment {
	return []razorpaydomain.Payment{
		{Amount: 49900, Status: "captured", CreatedAt: epochIST("2025-10-01 00:30:00")},
		{Amount: 30000, Status: "authorized", CreatedAt: epochIST("2025-10-01 12:00:00")},
		{Amount: 20000, Status: "captured", CreatedAt: epochIST("2025-10-01 23:59:59")},
		{Amount: 99900, Status: "failed", CreatedAt: epochIST("2025-10-01 10:00:00")},
		{Amount: 50000, Status: "captured", CreatedAt: epochIST("2025-10-02 01:00:00")},
	}
}

func TestDailyReportAggregatesAllSources(t *testing.T) {
	f := newFixture(t, &config.Config{})

	f.adjust.EXPECT().DailyReport(gomock.Any(), reportDate).Return(fullAdjustReport(), nil)
	f.admob.EXPECT().DailyReport(gomock.Any(), gomock.Any()).Return(fullAdMobReport(), nil)
	f.payments.EXPECT().ListPayments(gomock.Any()).Return(fullPayments(), nil)
	f.rates.EXPECT().USDToINR(gomock.Any()).Return(83.5)

	metrics, err := f.service.DailyReport(context.Background(), reportDate)
	require.NoError(t, err)

	downloads, ok := metrics.TotalDownloads()
	require.True(t, ok)
	assert.Equal(t, 200, downloads)

	views, ok := metrics.TotalViews()
	require.True(t, ok)
	assert.Equal(t, 500, views)

	impressions, ok := metrics.TotalImpressions()
	require.True(t, ok)
	assert.Equal(t, 800, impressions)

	// 2.0 USD -> 167 INR, 1.0 USD -> 84 INR at 83.5
	assert.Equal(t, 167, *metrics.AndroidAdRevenueINR)
	assert.Equal(t, 84, *metrics.IOSAdRevenueINR)
	inr, ok := metrics.TotalAdRevenueINR()
	require.True(t, ok)
	assert.Equal(t, 251, inr)

	require.NotNil(t, metrics.RazorpayRevenueINR)
	assert.Equal(t, 999.0, *metrics.RazorpayRevenueINR)
	assert.Equal(t, 83.5, metrics.USDToINR)
}

func TestDailyReportIsIdempotent(t *testing.T) {
	f := newFixture(t, &config.Config{})

	f.adjust.EXPECT().DailyReport(gomock.Any(), reportDate).Return(fullAdjustReport(), nil).Times(2)
	f.admob.EXPECT().DailyReport(gomock.Any(), gomock.Any()).Return(fullAdMobReport(), nil).Times(2)
	f.payments.EXPECT().ListPayments(gomock.Any()).Return(fullPayments(), nil).Times(2)
	f.rates.EXPECT().USDToINR(gomock.Any()).Return(83.5).Times(2)

	first, err := f.service.DailyReport(context.Background(), reportDate)
	require.NoError(t, err)
	second, err := f.service.DailyReport(context.Background(), reportDate)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDailyReportSurvivesSourceFailures(t *testing.T) {
	f := newFixture(t, &config.Config{})

	f.adjust.EXPECT().DailyReport(gomock.Any(), reportDate).Return(nil, errors.New("adjust down"))
	f.admob.EXPECT().DailyReport(gomock.Any(), gomock.Any()).Return(fullAdMobReport(), nil)
	f.payments.EXPECT().ListPayments(gomock.Any()).Return(nil, errors.New("razorpay down"))
	f.rates.EXPECT().USDToINR(gomock.Any()).Return(83.5)

	metrics, err := f.service.DailyReport(context.Background(), reportDate)
	require.NoError(t, err)

	// failed sources leave their metrics without data
	_, ok := metrics.TotalDownloads()
	assert.False(t, ok)
	assert.Nil(t, metrics.RazorpayRevenueINR)

	// the healthy source still contributes
	impressions, ok := metrics.TotalImpressions()
	require.True(t, ok)
	assert.Equal(t, 800, impressions)
}

func TestDailyReportRejectsBadDate(t *testing.T) {
	f := newFixture(t, &config.Config{})

	_, err := f.service.DailyReport(context.Background(), "01/10/2025")
	assert.Error(t, err)
}

func TestBuildPayload(t *testing.T) {
	f := newFixture(t, &config.Config{})

	f.adjust.EXPECT().DailyReport(gomock.Any(), reportDate).Return(fullAdjustReport(), nil)
	f.admob.EXPECT().DailyReport(gomock.Any(), gomock.Any()).Return(fullAdMobReport(), nil)
	f.payments.EXPECT().ListPayments(gomock.Any()).Return(fullPayments(), nil)
	f.rates.EXPECT().USDToINR(gomock.Any()).Return(83.5)

	metrics, err := f.service.DailyReport(context.Background(), reportDate)
	require.NoError(t, err)

	payload, err := f.service.BuildPayload(metrics)
	require.NoError(t, err)

	// midnight IST on 2025-10-01 is 2025-09-30T18:30:00Z
	assert.Equal(t, "1759257000000", payload.Date)
	assert.Equal(t, "120", payload.AppDownloadAndroid)
	assert.Equal(t, "80", payload.AppDownloadIOS)
	assert.Equal(t, "300", payload.EpisodesViewedAndroid)
	assert.Equal(t, "200", payload.EpisodesViewedIOS)
	assert.Equal(t, "500", payload.AdmobImpressionsAndroid)
	assert.Equal(t, "300", payload.AdmobImpressionsIOS)
	assert.Equal(t, "167", payload.AdmobRevenueAndroid)
	assert.Equal(t, "84", payload.AdmobRevenueIOS)
	assert.Equal(t, "999", payload.RazorpayRevenue)
}

func TestBuildPayloadMissingDataBecomesNA(t *testing.T) {
	f := newFixture(t, &config.Config{})

	payload, err := f.service.BuildPayload(&domain.DailyMetrics{Date: reportDate, USDToINR: 83.5})
	require.NoError(t, err)

	assert.Equal(t, "N/A", payload.AppDownloadAndroid)
	assert.Equal(t, "N/A", payload.EpisodesViewedIOS)
	assert.Equal(t, "N/A", payload.AdmobRevenueAndroid)
	assert.Equal(t, "N/A", payload.RazorpayRevenue)
}

func TestSyncReportSendsToSink(t *testing.T) {
	f := newFixture(t, &config.Config{})

	f.adjust.EXPECT().DailyReport(gomock.Any(), reportDate).Return(fullAdjustReport(), nil)
	f.admob.EXPECT().DailyReport(gomock.Any(), gomock.Any()).Return(fullAdMobReport(), nil)
	f.payments.EXPECT().ListPayments(gomock.Any()).Return(fullPayments(), nil)
	f.rates.EXPECT().USDToINR(gomock.Any()).Return(83.5)

	f.sink.EXPECT().
		SaveReport(gomock.Any(), "qa", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload *domain.ReportPayload) error {
			assert.Equal(t, "999", payload.RazorpayRevenue)
			return nil
		})

	metrics, err := f.service.SyncReport(context.Background(), reportDate, "qa")
	require.NoError(t, err)
	assert.Equal(t, reportDate, metrics.Date)
}

func TestSyncReportSinkFailureIsFatal(t *testing.T) {
	f := newFixture(t, &config.Config{})

	f.adjust.EXPECT().DailyReport(gomock.Any(), reportDate).Return(fullAdjustReport(), nil)
	f.admob.EXPECT().DailyReport(gomock.Any(), gomock.Any()).Return(fullAdMobReport(), nil)
	f.payments.EXPECT().ListPayments(gomock.Any()).Return(fullPayments(), nil)
	f.rates.EXPECT().USDToINR(gomock.Any()).Return(83.5)
	f.sink.EXPECT().SaveReport(gomock.Any(), "live", gomock.Any()).Return(errors.New("backend rejected report: 500"))

	_, err := f.service.SyncReport(context.Background(), reportDate, "live")
	assert.Error(t, err)
}

func TestTrailingReportsWalksBackwards(t *testing.T) {
	f := newFixture(t, &config.Config{})

	for _, date := range []string{"2025-10-01", "2025-09-30", "2025-09-29"} {
		f.adjust.EXPECT().DailyReport(gomock.Any(), date).Return(&domain.AdjustReport{Date: date}, nil)
	}
	f.admob.EXPECT().DailyReport(gomock.Any(), gomock.Any()).Return(&domain.AdMobReport{}, nil).Times(3)
	f.payments.EXPECT().ListPayments(gomock.Any()).Return(nil, nil).Times(3)
	f.rates.EXPECT().USDToINR(gomock.Any()).Return(83.5).Times(3)

	reports, err := f.service.TrailingReports(context.Background(), reportDate, 3)
	require.NoError(t, err)

	require.Len(t, reports, 3)
	assert.Equal(t, "2025-10-01", reports[0].Date)
	assert.Equal(t, "2025-09-30", reports[1].Date)
	assert.Equal(t, "2025-09-29", reports[2].Date)
}

func TestResolveReportDate(t *testing.T) {
	cfg := &config.Config{ReportSync: config.ReportSync{DateOffsetDays: 1}}
	f := newFixture(t, cfg)

	f.resolver.EXPECT().ReportDate(gomock.Any(), 1).Return(reportDate)
	assert.Equal(t, reportDate, f.service.ResolveReportDate(context.Background()))
}
