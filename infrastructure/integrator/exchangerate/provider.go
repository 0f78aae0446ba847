package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// FallbackUSDToINR is returned whenever the live rate cannot be
	// fetched. Report generation must never fail on currency data.
	FallbackUSDToINR = 83.5

	cacheDuration  = time.Hour
	requestTimeout = 5 * time.Second
)

// Provider fetches the USD→INR rate with a one-hour single-slot cache.
// The clock is injectable so the cache window is testable.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time

	mu        sync.Mutex
	rate      float64
	expiresAt time.Time
}

type ratesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func NewProvider(baseURL string) *Provider {
	return &Provider{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		now: time.Now,
	}
}

// WithClock overrides the provider clock. Used by tests.
func (p *Provider) WithClock(now func() time.Time) *Provider {
	p.now = now
	return p
}

// USDToINR returns the cached rate when it is younger than one hour,
// otherwise refreshes from the exchange-rate API. Any failure falls
// back to FallbackUSDToINR; this call never errors.
func (p *Provider) USDToINR(ctx context.Context) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.rate > 0 && p.now().Before(p.expiresAt) {
		logrus.WithField("rate", p.rate).Debug("exchangerate: using cached USD to INR rate")
		return p.rate
	}

	rate, err := p.fetchRate(ctx)
	if err != nil {
		logrus.WithError(err).Warn("exchangerate: failed to fetch live rate, using fallback")
		return FallbackUSDToINR
	}

	p.rate = rate
	p.expiresAt = p.now().Add(cacheDuration)

	logrus.WithField("rate", rate).Info("exchangerate: live USD to INR rate fetched")
	return rate
}

func (p *Provider) fetchRate(ctx context.Context) (float64, error) {
	url := p.baseURL + "/v4/latest/USD"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("exchange rate API returned status %d", resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}

	rate, ok := body.Rates["INR"]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("invalid INR rate received")
	}

	return rate, nil
}
