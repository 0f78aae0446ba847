package razorpayclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	razorpaydomain "github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/razorpay/domain"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
	"github.com/tuktuki/revenue-metrics-api/pkg/utils"
)

type Client interface {
	ListPayments(ctx context.Context) ([]razorpaydomain.Payment, error)
	ListSubscriptions(ctx context.Context) ([]razorpaydomain.Subscription, error)
	ListInvoices(ctx context.Context) ([]razorpaydomain.Invoice, error)
	GetPlan(ctx context.Context, planID string) (*razorpaydomain.Plan, error)
}

type RazorpayClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &RazorpayClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// listPage fetches one page of a collection endpoint and decodes it
// into out. The caller drives the pagination loop.
func (c *RazorpayClient) listPage(ctx context.Context, collection string, count, skip int, extra url.Values, out any) error {
	params := url.Values{}
	params.Set("count", strconv.Itoa(count))
	params.Set("skip", strconv.Itoa(skip))
	for key, values := range extra {
		for _, v := range values {
			params.Add(key, v)
		}
	}

	endpoint := fmt.Sprintf("%s/%s?%s", c.cfg.Razorpay.BaseURL, collection, params.Encode())

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "decoding razorpay %s page", collection)
	}

	return nil
}

func (c *RazorpayClient) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", utils.BasicAuth(c.cfg.Razorpay.KeyID, c.cfg.Razorpay.KeySecret))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "razorpay request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"url":    endpoint,
		}).Error("razorpay: API returned non-OK status")
		return nil, fmt.Errorf("razorpay API error: %d", resp.StatusCode)
	}

	return body, nil
}

// ListPayments pages through /payments until a short page signals the
// end of the collection.
func (c *RazorpayClient) ListPayments(ctx context.Context) ([]razorpaydomain.Payment, error) {
	count := c.cfg.Razorpay.PageSize
	var all []razorpaydomain.Payment

	for skip := 0; ; skip += count {
		var page razorpaydomain.PaymentCollection
		if err := c.listPage(ctx, "payments", count, skip, nil, &page); err != nil {
			return nil, err
		}

		all = append(all, page.Items...)

		if len(page.Items) < count {
			break
		}
	}

	logrus.WithField("payments", len(all)).Debug("razorpay: payments listed")
	return all, nil
}

func (c *RazorpayClient) ListSubscriptions(ctx context.Context) ([]razorpaydomain.Subscription, error) {
	count := c.cfg.Razorpay.PageSize
	var all []razorpaydomain.Subscription

	for skip := 0; ; skip += count {
		var page razorpaydomain.SubscriptionCollection
		if err := c.listPage(ctx, "subscriptions", count, skip, nil, &page); err != nil {
			return nil, err
		}

		all = append(all, page.Items...)

		if len(page.Items) < count {
			break
		}
	}

	logrus.WithField("subscriptions", len(all)).Debug("razorpay: subscriptions listed")
	return all, nil
}

func (c *RazorpayClient) ListInvoices(ctx context.Context) ([]razorpaydomain.Invoice, error) {
	count := c.cfg.Razorpay.PageSize
	extra := url.Values{"type": []string{"invoice"}}
	var all []razorpaydomain.Invoice

	for skip := 0; ; skip += count {
		var page razorpaydomain.InvoiceCollection
		if err := c.listPage(ctx, "invoices", count, skip, extra, &page); err != nil {
			return nil, err
		}

		all = append(all, page.Items...)

		if len(page.Items) < count {
			break
		}
	}

	logrus.WithField("invoices", len(all)).Debug("razorpay: invoices listed")
	return all, nil
}

func (c *RazorpayClient) GetPlan(ctx context.Context, planID string) (*razorpaydomain.Plan, error) {
	endpoint := fmt.Sprintf("%s/plans/%s", c.cfg.Razorpay.BaseURL, planID)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var plan razorpaydomain.Plan
	if err := json.Unmarshal(body, &plan); err != nil {
		return nil, errors.Wrap(err, "decoding razorpay plan")
	}

	return &plan, nil
}
