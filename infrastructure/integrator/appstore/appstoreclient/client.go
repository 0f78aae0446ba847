package appstoreclient

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
)

const (
	tokenTTL      = 20 * time.Minute
	reportVersion = "1_0"
)

type Client interface {
	SalesReport(ctx context.Context, date string) ([]byte, error)
}

type AppStoreClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &AppStoreClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// signedToken builds a short-lived ES256 token for the App Store
// Connect API. A fresh token per request keeps us clear of the 20
// minute expiry without tracking state.
func (c *AppStoreClient) signedToken() (string, error) {
	key, err := jwt.ParseECPrivateKeyFromPEM([]byte(c.cfg.AppStore.PrivateKey))
	if err != nil {
		return "", errors.Wrap(err, "parsing app store private key")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodES256, jwt.MapClaims{
		"iss": c.cfg.AppStore.IssuerID,
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
		"aud": "appstoreconnect-v1",
	})
	token.Header["kid"] = c.cfg.AppStore.KeyID

	return token.SignedString(key)
}

// SalesReport downloads the daily SALES/SUMMARY report for the given
// date and returns the decompressed TSV body.
func (c *AppStoreClient) SalesReport(ctx context.Context, date string) ([]byte, error) {
	signed, err := c.signedToken()
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("filter[frequency]", "DAILY")
	params.Set("filter[reportDate]", date)
	params.Set("filter[reportType]", "SALES")
	params.Set("filter[reportSubType]", "SUMMARY")
	params.Set("filter[vendorNumber]", c.cfg.AppStore.VendorNumber)
	params.Set("filter[version]", reportVersion)

	endpoint := c.cfg.AppStore.BaseURL + "/v1/salesReports?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+signed)
	req.Header.Set("Accept", "application/a-gzip")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "app store request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		logrus.WithFields(logrus.Fields{
			"status":      resp.StatusCode,
			"report_date": date,
		}).Error("appstore: sales report request rejected")
		return nil, fmt.Errorf("app store API error: %d: %s", resp.StatusCode, string(body))
	}

	gz, err := gzip.NewReader(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "decompressing sales report")
	}
	defer gz.Close()

	return io.ReadAll(gz)
}
