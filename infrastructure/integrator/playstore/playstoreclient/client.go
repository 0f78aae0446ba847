package playstoreclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const storageReadScope = "https://www.googleapis.com/auth/devstorage.read_only"

type Client interface {
	ListObjects(ctx context.Context, prefix string) ([]Object, error)
	DownloadObject(ctx context.Context, name string) ([]byte, error)
}

// Object is the subset of the Cloud Storage object resource we read.
type Object struct {
	Name    string    `json:"name"`
	Size    string    `json:"size"`
	Updated time.Time `json:"updated"`
}

type listResponse struct {
	Items         []Object `json:"items"`
	NextPageToken string   `json:"nextPageToken"`
}

type PlayStoreClient struct {
	cfg *config.Config

	mu     sync.Mutex
	source oauth2.TokenSource
}

func NewClient(cfg *config.Config) Client {
	return &PlayStoreClient{cfg: cfg}
}

// tokenSource lazily builds a service-account token source scoped to
// read-only storage access. The source caches and refreshes tokens on
// its own.
func (c *PlayStoreClient) tokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.source != nil {
		return c.source, nil
	}

	keyJSON, err := os.ReadFile(c.cfg.PlayStore.ServiceAccountFile)
	if err != nil {
		return nil, errors.Wrap(err, "reading play store service account file")
	}

	jwtCfg, err := google.JWTConfigFromJSON(keyJSON, storageReadScope)
	if err != nil {
		return nil, errors.Wrap(err, "parsing play store service account")
	}

	c.source = jwtCfg.TokenSource(ctx)
	return c.source, nil
}

func (c *PlayStoreClient) do(ctx context.Context, endpoint string) (*http.Response, error) {
	source, err := c.tokenSource(ctx)
	if err != nil {
		return nil, err
	}
	token, err := source.Token()
	if err != nil {
		return nil, errors.Wrap(err, "fetching storage access token")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	token.SetAuthHeader(req)

	httpClient := &http.Client{Timeout: 60 * time.Second}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "storage request failed")
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("storage API error: %d: %s", resp.StatusCode, string(body))
	}
	return resp, nil
}

// ListObjects lists every object in the report bucket under the given
// prefix, following pagination.
func (c *PlayStoreClient) ListObjects(ctx context.Context, prefix string) ([]Object, error) {
	var objects []Object
	pageToken := ""

	for {
		params := url.Values{}
		params.Set("prefix", prefix)
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}
		endpoint := fmt.Sprintf("%s/storage/v1/b/%s/o?%s",
			c.cfg.PlayStore.StorageBaseURL, url.PathEscape(c.cfg.PlayStore.Bucket), params.Encode())

		resp, err := c.do(ctx, endpoint)
		if err != nil {
			return nil, err
		}

		var page listResponse
		err = json.NewDecoder(resp.Body).Decode(&page)
		resp.Body.Close()
		if err != nil {
			return nil, errors.Wrap(err, "decoding object listing")
		}

		objects = append(objects, page.Items...)
		if page.NextPageToken == "" {
			return objects, nil
		}
		pageToken = page.NextPageToken
	}
}

// DownloadObject fetches an object's content via the media endpoint.
func (c *PlayStoreClient) DownloadObject(ctx context.Context, name string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/storage/v1/b/%s/o/%s?alt=media",
		c.cfg.PlayStore.StorageBaseURL, url.PathEscape(c.cfg.PlayStore.Bucket), url.PathEscape(name))

	resp, err := c.do(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}
