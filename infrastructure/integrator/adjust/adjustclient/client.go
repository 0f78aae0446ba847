package adjustclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
)

type Client interface {
	Report(ctx context.Context, date string, metrics []string) (*ReportResponse, error)
}

// Row is one report row. Metric columns are keyed by the metric id the
// request asked for, so the shape is dynamic by design.
type Row map[string]any

type ReportResponse struct {
	Rows   []Row          `json:"rows"`
	Totals map[string]any `json:"totals"`
}

// String returns the named attribute as a string ("os_name", "day").
func (r Row) String(key string) string {
	v, _ := r[key].(string)
	return v
}

// Int reads a numeric metric; the service serializes metrics as JSON
// numbers but occasionally as strings.
func (r Row) Int(key string) int {
	switch v := r[key].(type) {
	case float64:
		return int(v)
	case json.Number:
		i, _ := v.Int64()
		return int(i)
	case string:
		var parsed float64
		fmt.Sscanf(v, "%f", &parsed)
		return int(parsed)
	}
	return 0
}

type AdjustClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &AdjustClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Report requests the given metrics broken down by os_name for one
// absolute date (date_period date:date).
func (c *AdjustClient) Report(ctx context.Context, date string, metrics []string) (*ReportResponse, error) {
	params := url.Values{}
	params.Set("app_token__in", c.cfg.Adjust.AppToken)
	params.Set("date_period", fmt.Sprintf("%s:%s", date, date))
	params.Set("dimensions", "os_name,day")
	params.Set("metrics", strings.Join(metrics, ","))

	endpoint := c.cfg.Adjust.BaseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Adjust.APIToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "adjust request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"date":   date,
		}).Error("adjust: report request rejected")
		return nil, fmt.Errorf("adjust API error: %d", resp.StatusCode)
	}

	var report ReportResponse
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, errors.Wrap(err, "decoding adjust report")
	}

	return &report, nil
}
