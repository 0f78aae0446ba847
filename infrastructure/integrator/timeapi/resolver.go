package timeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tuktuki/revenue-metrics-api/pkg/utils"
)

const requestTimeout = 5 * time.Second

// Resolver computes the report date (usually yesterday) in the IST
// civil calendar. It prefers a network time service so the result does
// not depend on the host clock; the local clock is an availability
// fallback that must produce the same date under normal conditions.
type Resolver struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

type zoneResponse struct {
	TimeZone         string `json:"timeZone"`
	CurrentLocalTime string `json:"currentLocalTime"`
}

func NewResolver(baseURL string) *Resolver {
	return &Resolver{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		now: time.Now,
	}
}

// WithClock overrides the fallback clock. Used by tests.
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	r.now = now
	return r
}

// ReportDate returns the civil date offsetDays before "now" in IST,
// formatted YYYY-MM-DD.
func (r *Resolver) ReportDate(ctx context.Context, offsetDays int) string {
	date, err := r.networkDate(ctx, offsetDays)
	if err != nil {
		logrus.WithError(err).Warn("timeapi: network time lookup failed, falling back to local clock")
		return utils.ISTDate(r.now(), offsetDays)
	}

	logrus.WithFields(logrus.Fields{
		"report_date": date,
		"offset_days": offsetDays,
	}).Debug("timeapi: report date resolved from network time")

	return date
}

func (r *Resolver) networkDate(ctx context.Context, offsetDays int) (string, error) {
	url := r.baseURL + "/api/TimeZone/zone?timeZone=Asia/Kolkata"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("time API returned status %d", resp.StatusCode)
	}

	var body zoneResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}

	// currentLocalTime is already wall time in Asia/Kolkata, e.g.
	// "2025-10-02T09:56:23.1234567". Parse it as a local IST instant.
	current, err := parseLocalTime(body.CurrentLocalTime)
	if err != nil {
		return "", err
	}

	return current.AddDate(0, 0, -offsetDays).Format(time.DateOnly), nil
}

func parseLocalTime(value string) (time.Time, error) {
	layouts := []string{
		"2006-01-02T15:04:05.9999999",
		"2006-01-02T15:04:05",
		time.RFC3339,
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, utils.ReportTimezone); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unparseable local time %q", value)
}
