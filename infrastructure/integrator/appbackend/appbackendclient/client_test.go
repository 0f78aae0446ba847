package appbackendclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
	"github.com/tuktuki/revenue-metrics-api/internal/domain"
)

func samplePayload() *domain.ReportPayload {
	return &domain.ReportPayload{
		Date:                    "1759257000000",
		AppDownloadAndroid:      "120",
		AppDownloadIOS:          "80",
		EpisodesViewedAndroid:   "300",
		EpisodesViewedIOS:       "200",
		AdmobImpressionsAndroid: "500",
		AdmobImpressionsIOS:     "300",
		AdmobRevenueAndroid:     "146",
		AdmobRevenueIOS:         "105",
		RazorpayRevenue:         "999",
	}
}

func TestSaveReportPostsJSON(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	cfg := &config.Config{
		ReportSink: config.ReportSink{DevURL: server.URL},
	}

	client := NewClient(cfg)
	err := client.SaveReport(context.Background(), "dev", samplePayload())
	require.NoError(t, err)

	assert.Contains(t, string(body), `"razor_pay_revenue":"999"`)
	assert.Contains(t, string(body), `"date":"1759257000000"`)
	assert.Contains(t, string(body), `"app_download_android":"120"`)
}

func TestSaveReportRejectedByBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "duplicate report", http.StatusConflict)
	}))
	defer server.Close()

	cfg := &config.Config{
		ReportSink: config.ReportSink{LiveURL: server.URL},
	}

	client := NewClient(cfg)
	err := client.SaveReport(context.Background(), "live", samplePayload())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "409")
}

func TestSaveReportUnknownEnv(t *testing.T) {
	client := NewClient(&config.Config{})

	err := client.SaveReport(context.Background(), "staging", samplePayload())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "staging")
}

func TestSaveReportUnconfiguredEnv(t *testing.T) {
	client := NewClient(&config.Config{})

	err := client.SaveReport(context.Background(), "qa", samplePayload())
	assert.Error(t, err)
}
