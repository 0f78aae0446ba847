package handler_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuktuki/revenue-metrics-api/internal/api/handler"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
	"github.com/tuktuki/revenue-metrics-api/internal/domain"
	"github.com/tuktuki/revenue-metrics-api/internal/usecases/reporting/mocks"
	"github.com/tuktuki/revenue-metrics-api/pkg/utils"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func sinkConfig() *config.Config {
	return &config.Config{
		ReportSink: config.ReportSink{
			EnvMode: "dev",
			DevURL:  "https://dev.example.com/api/addPerformanceReport",
			QAURL:   "https://qa.example.com/api/addPerformanceReport",
			LiveURL: "https://live.example.com/api/addPerformanceReport",
		},
		Excel: config.Excel{DaysCount: 7},
	}
}

func sampleMetrics(date string) *domain.DailyMetrics {
	return &domain.DailyMetrics{
		Date:                date,
		AndroidDownloads:    intPtr(120),
		IOSDownloads:        intPtr(80),
		AndroidViews:        intPtr(300),
		IOSViews:            intPtr(200),
		AndroidAdRevenueINR: intPtr(146),
		IOSAdRevenueINR:     intPtr(105),
		USDToINR:            83.5,
		RazorpayRevenueINR:  floatPtr(999),
	}
}

func TestDailyReportHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().
		DailyReport(gomock.Any(), "2025-10-01").
		Return(sampleMetrics("2025-10-01"), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/report?date=2025-10-01", nil)
	rec := httptest.NewRecorder()
	handler.DailyReport(service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"date":"2025-10-01"`)
	assert.Contains(t, rec.Body.String(), `"androidDownloads":120`)
}

func TestDailyReportHandlerDefaultsToYesterday(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)

	yesterday := utils.ISTDate(time.Now(), 1)
	service.EXPECT().
		DailyReport(gomock.Any(), yesterday).
		Return(sampleMetrics(yesterday), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
	rec := httptest.NewRecorder()
	handler.DailyReport(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDailyReportHandlerRejectsBadDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/report?date=01-10-2025", nil)
	rec := httptest.NewRecorder()
	handler.DailyReport(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":true`)
	assert.Contains(t, rec.Body.String(), "VAL_003")
}

func TestDailyReportHandlerAggregationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().
		DailyReport(gomock.Any(), "2025-10-01").
		Return(nil, errors.New("boom"))

	req := httptest.NewRequest(http.MethodGet, "/api/report?date=2025-10-01", nil)
	rec := httptest.NewRecorder()
	handler.DailyReport(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}

func TestDailyReportHTMLHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().
		DailyReport(gomock.Any(), "2025-10-01").
		Return(sampleMetrics("2025-10-01"), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/report/html?date=2025-10-01", nil)
	rec := httptest.NewRecorder()
	handler.DailyReportHTML(service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Tuktuki Daily Report")
	assert.Contains(t, rec.Body.String(), "2025-10-01")
}

func TestDailyReportSpreadsheetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().
		TrailingReports(gomock.Any(), "2025-10-01", 3).
		Return([]*domain.DailyMetrics{
			sampleMetrics("2025-10-01"),
			sampleMetrics("2025-09-30"),
			sampleMetrics("2025-09-29"),
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/report/spreadsheet?date=2025-10-01&days=3", nil)
	rec := httptest.NewRecorder()
	handler.DailyReportSpreadsheet(sinkConfig(), service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "daily-report-2025-10-01.xlsx")

	workbook, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer workbook.Close()
	date, err := workbook.GetCellValue("Daily Report", "A3")
	require.NoError(t, err)
	assert.Equal(t, "2025-10-01", date)
}

func TestDailyReportSpreadsheetHandlerDaysBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)

	for _, days := range []string{"0", "91", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/report/spreadsheet?date=2025-10-01&days="+days, nil)
		rec := httptest.NewRecorder()
		handler.DailyReportSpreadsheet(sinkConfig(), service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, days)
		assert.Contains(t, rec.Body.String(), "VAL_003")
	}
}

func TestDailyReportSpreadsheetHandlerUsesConfiguredWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().
		TrailingReports(gomock.Any(), "2025-10-01", 7).
		Return([]*domain.DailyMetrics{sampleMetrics("2025-10-01")}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/report/spreadsheet?date=2025-10-01", nil)
	rec := httptest.NewRecorder()
	handler.DailyReportSpreadsheet(sinkConfig(), service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSaveDailyReportHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().
		SyncReport(gomock.Any(), "2025-10-01", "qa").
		Return(sampleMetrics("2025-10-01"), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/report/save?date=2025-10-01&env=qa", nil)
	rec := httptest.NewRecorder()
	handler.SaveDailyReport(sinkConfig(), service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"saved":true`)
	assert.Contains(t, rec.Body.String(), `"env":"qa"`)
}

func TestSaveDailyReportHandlerRejectsUnknownEnv(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/report/save?date=2025-10-01&env=staging", nil)
	rec := httptest.NewRecorder()
	handler.SaveDailyReport(sinkConfig(), service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "env must be one of dev, qa, live")
}

func TestSaveDailyReportHandlerFallsBackToConfiguredEnv(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().
		SyncReport(gomock.Any(), "2025-10-01", "dev").
		Return(sampleMetrics("2025-10-01"), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/report/save?date=2025-10-01", nil)
	rec := httptest.NewRecorder()
	handler.SaveDailyReport(sinkConfig(), service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSaveDailyReportHandlerSinkFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().
		SyncReport(gomock.Any(), "2025-10-01", "dev").
		Return(nil, errors.New("backend rejected report: 500"))

	req := httptest.NewRequest(http.MethodPost, "/api/report/save?date=2025-10-01", nil)
	rec := httptest.NewRecorder()
	handler.SaveDailyReport(sinkConfig(), service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_003")
}
