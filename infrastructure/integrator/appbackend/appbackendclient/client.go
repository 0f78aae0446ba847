package appbackendclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
	"github.com/tuktuki/revenue-metrics-api/internal/domain"
	"github.com/tuktuki/revenue-metrics-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	SaveReport(ctx context.Context, envMode string, payload *domain.ReportPayload) error
}

type AppBackendClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &AppBackendClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SaveReport posts one daily report to the backend selected by envMode.
// The backend upserts on date, so resending the same day is safe.
func (c *AppBackendClient) SaveReport(ctx context.Context, envMode string, payload *domain.ReportPayload) error {
	endpoint, ok := c.cfg.ReportSink.EndpointFor(envMode)
	if !ok {
		return errors.Errorf("unknown env mode %q", envMode)
	}
	if endpoint == "" {
		return errors.Errorf("no report sink configured for env mode %q", envMode)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "encoding report payload")
	}

	logrus.WithField("report_date", payload.Date).
		Debugf("appbackend: sending report payload %s", utils.PrettyJson(body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "posting report to backend")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		logrus.WithFields(logrus.Fields{
			"status":      resp.StatusCode,
			"env_mode":    envMode,
			"report_date": payload.Date,
		}).Error("appbackend: save report rejected")
		return fmt.Errorf("backend rejected report: %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
