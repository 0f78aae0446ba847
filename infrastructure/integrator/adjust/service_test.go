package adjust

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/adjust/adjustclient"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
)

type stubClient struct {
	resp    *adjustclient.ReportResponse
	err     error
	date    string
	metrics []string
}

func (s *stubClient) Report(ctx context.Context, date string, metrics []string) (*adjustclient.ReportResponse, error) {
	s.date, s.metrics = date, metrics
	return s.resp, s.err
}

func testConfig() *config.Config {
	return &config.Config{
		Adjust: config.Adjust{
			APIToken:       "token",
			AppToken:       "app",
			ViewEventToken: "vw123",
		},
	}
}

func TestDailyReportSplitsPlatforms(t *testing.T) {
	client := &stubClient{
		resp: &adjustclient.ReportResponse{
			Rows: []adjustclient.Row{
				{"os_name": "android", "day": "2025-10-01", "installs": float64(120), "vw123_events": float64(300)},
				{"os_name": "ios", "day": "2025-10-01", "installs": float64(80), "vw123_events": float64(200)},
				// rows for other OSes are skipped
				{"os_name": "windows", "day": "2025-10-01", "installs": float64(5), "vw123_events": float64(1)},
			},
		},
	}

	service := NewIntegrator(testConfig(), client)

	report, err := service.DailyReport(context.Background(), "2025-10-01")
	require.NoError(t, err)

	assert.Equal(t, "2025-10-01", client.date)
	assert.Equal(t, []string{"installs", "vw123_events"}, client.metrics)

	require.NotNil(t, report.Android)
	assert.Equal(t, 120, report.Android.Installs)
	assert.Equal(t, 300, report.Android.Views)

	require.NotNil(t, report.IOS)
	assert.Equal(t, 80, report.IOS.Installs)
	assert.Equal(t, 200, report.IOS.Views)
}

func TestDailyReportMissingPlatformStaysNil(t *testing.T) {
	client := &stubClient{
		resp: &adjustclient.ReportResponse{
			Rows: []adjustclient.Row{
				{"os_name": "android", "day": "2025-10-01", "installs": float64(10), "vw123_events": float64(20)},
			},
		},
	}

	service := NewIntegrator(testConfig(), client)

	report, err := service.DailyReport(context.Background(), "2025-10-01")
	require.NoError(t, err)

	assert.NotNil(t, report.Android)
	assert.Nil(t, report.IOS)
}

func TestDailyReportPropagatesClientError(t *testing.T) {
	client := &stubClient{err: errors.New("adjust API error: 401")}
	service := NewIntegrator(testConfig(), client)

	_, err := service.DailyReport(context.Background(), "2025-10-01")
	assert.Error(t, err)
}

func TestViewMetricDefaultsWithoutToken(t *testing.T) {
	cfg := testConfig()
	cfg.Adjust.ViewEventToken = ""
	service := NewIntegrator(cfg, &stubClient{resp: &adjustclient.ReportResponse{}})

	assert.Equal(t, "video_view_events", service.viewMetric())
	assert.Equal(t, "installs", service.installMetric())
}

func TestRowInt(t *testing.T) {
	row := adjustclient.Row{
		"a": float64(42),
		"b": "17",
		"c": "not-a-number",
	}

	assert.Equal(t, 42, row.Int("a"))
	assert.Equal(t, 17, row.Int("b"))
	assert.Equal(t, 0, row.Int("c"))
	assert.Equal(t, 0, row.Int("missing"))
}
