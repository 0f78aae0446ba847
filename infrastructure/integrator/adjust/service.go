package adjust

import (
	"context"
	"fmt"

	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/adjust/adjustclient"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
	"github.com/tuktuki/revenue-metrics-api/internal/domain"
	"github.com/tuktuki/revenue-metrics-api/pkg/log"
)

type Integrator struct {
	cfg    *config.Config
	Client adjustclient.Client
}

func NewIntegrator(cfg *config.Config, client adjustclient.Client) *Integrator {
	return &Integrator{cfg: cfg, Client: client}
}

// viewMetric resolves the metric id for episode views. Custom events in
// the reports service are addressed as "<event token>_events".
func (i *Integrator) viewMetric() string {
	if token := i.cfg.Adjust.ViewEventToken; token != "" {
		return fmt.Sprintf("%s_events", token)
	}
	return "video_view_events"
}

func (i *Integrator) installMetric() string {
	if token := i.cfg.Adjust.InstallEventToken; token != "" {
		return fmt.Sprintf("%s_events", token)
	}
	return "installs"
}

// DailyReport fetches installs and episode views for one date, split by
// platform. Rows with an unrecognized os_name are skipped.
func (i *Integrator) DailyReport(ctx context.Context, date string) (*domain.AdjustReport, error) {
	installMetric := i.installMetric()
	viewMetric := i.viewMetric()

	resp, err := i.Client.Report(ctx, date, []string{installMetric, viewMetric})
	if err != nil {
		return nil, err
	}

	report := &domain.AdjustReport{Date: date}

	for _, row := range resp.Rows {
		platform := domain.ParsePlatform(row.String("os_name"))
		if platform == domain.PlatformUnknown {
			log.L.WithFields(log.Fields{
				"os_name":     row.String("os_name"),
				"report_date": date,
			}).Warn("adjust: skipping row with unknown platform")
			continue
		}

		metrics := &domain.PlatformMetrics{
			Installs: row.Int(installMetric),
			Views:    row.Int(viewMetric),
		}

		switch platform {
		case domain.PlatformAndroid:
			report.Android = metrics
		case domain.PlatformIOS:
			report.IOS = metrics
		}
	}

	return report, nil
}
