package admobclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	admobdomain "github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/admob/domain"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
	"golang.org/x/oauth2"
)

type Client interface {
	GenerateNetworkReport(ctx context.Context, start, end time.Time) ([]admobdomain.ReportEntry, error)
}

// AdMobClient signs network-report requests with an OAuth2 access token
// obtained through the refresh-token grant. The token source caches and
// renews tokens on its own.
type AdMobClient struct {
	cfg         *config.Config
	tokenSource oauth2.TokenSource
	httpClient  *http.Client
}

func NewClient(cfg *config.Config) Client {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.AdMob.ClientID,
		ClientSecret: cfg.AdMob.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL: cfg.AdMob.TokenURL,
		},
	}

	source := oauthCfg.TokenSource(context.Background(), &oauth2.Token{
		RefreshToken: cfg.AdMob.RefreshToken,
	})

	return &AdMobClient{
		cfg:         cfg,
		tokenSource: oauth2.ReuseTokenSource(nil, source),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func reportDate(t time.Time) admobdomain.ReportDate {
	return admobdomain.ReportDate{
		Year:  t.Year(),
		Month: int(t.Month()),
		Day:   t.Day(),
	}
}

// GenerateNetworkReport runs the network report for the date range with
// dimensions {DATE, PLATFORM} and metrics {IMPRESSIONS, CLICKS,
// ESTIMATED_EARNINGS}.
func (c *AdMobClient) GenerateNetworkReport(ctx context.Context, start, end time.Time) ([]admobdomain.ReportEntry, error) {
	token, err := c.tokenSource.Token()
	if err != nil {
		return nil, errors.Wrap(err, "admob token exchange failed")
	}

	reqBody := admobdomain.GenerateRequest{
		ReportSpec: admobdomain.ReportSpec{
			DateRange: admobdomain.DateRange{
				StartDate: reportDate(start),
				EndDate:   reportDate(end),
			},
			Dimensions: []string{"DATE", "PLATFORM"},
			Metrics:    []string{"IMPRESSIONS", "CLICKS", "ESTIMATED_EARNINGS"},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/accounts/%s/networkReport:generate", c.cfg.AdMob.BaseURL, c.cfg.AdMob.PublisherID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	token.SetAuthHeader(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "admob request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Error("admob: network report request rejected")
		return nil, fmt.Errorf("admob API error: %d", resp.StatusCode)
	}

	var entries []admobdomain.ReportEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, errors.Wrap(err, "decoding admob report stream")
	}

	return entries, nil
}
