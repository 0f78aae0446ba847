package exchangerate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUSDToINRCachesForOneHour(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/v4/latest/USD", r.URL.Path)
		w.Write([]byte(`{"base":"USD","rates":{"INR":84.2,"EUR":0.92}}`))
	}))
	defer server.Close()

	current := time.Date(2025, 10, 1, 10, 0, 0, 0, time.UTC)
	provider := NewProvider(server.URL).WithClock(func() time.Time { return current })

	assert.Equal(t, 84.2, provider.USDToINR(context.Background()))
	assert.Equal(t, 84.2, provider.USDToINR(context.Background()))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "second call must hit the cache")

	// 59 minutes later, still cached
	current = current.Add(59 * time.Minute)
	provider.USDToINR(context.Background())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	// past the hour, refetch
	current = current.Add(2 * time.Minute)
	provider.USDToINR(context.Background())
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestUSDToINRFallsBackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := NewProvider(server.URL)
	assert.Equal(t, FallbackUSDToINR, provider.USDToINR(context.Background()))
}

func TestUSDToINRFallsBackOnUnreachableHost(t *testing.T) {
	provider := NewProvider("http://127.0.0.1:1")
	assert.Equal(t, FallbackUSDToINR, provider.USDToINR(context.Background()))
}

func TestUSDToINRFallsBackOnMissingRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base":"USD","rates":{"EUR":0.92}}`))
	}))
	defer server.Close()

	provider := NewProvider(server.URL)
	assert.Equal(t, FallbackUSDToINR, provider.USDToINR(context.Background()))
}

func TestUSDToINRDoesNotCacheFallback(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"base":"USD","rates":{"INR":83.9}}`))
	}))
	defer server.Close()

	provider := NewProvider(server.URL)
	assert.Equal(t, FallbackUSDToINR, provider.USDToINR(context.Background()))
	assert.Equal(t, 83.9, provider.USDToINR(context.Background()))
}
