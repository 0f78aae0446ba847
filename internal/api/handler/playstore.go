package handler

import (
	"net/http"

	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/playstore"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
	"github.com/tuktuki/revenue-metrics-api/pkg/apiErrors"
	"github.com/tuktuki/revenue-metrics-api/pkg/log"
)

// PlayStoreDownloads sums the newest install export in the stats
// bucket. The export granularity is whatever the console publishes, so
// there is no date filter here.
func PlayStoreDownloads(cfg *config.Config, service *playstore.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if missing := cfg.PlayStore.MissingVars(); len(missing) > 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingCredentials, "play store storage access not configured", missing)
			return
		}

		downloads, err := service.LatestDownloads(r.Context())
		if err != nil {
			logger.WithField("error", err.Error()).Error("playstore: failed to read install stats")
			apiErrors.WriteError(w, apiErrors.ErrUpstreamUnavailable, "failed to read play store install stats", nil)
			return
		}

		respondJSON(w, http.StatusOK, downloads)
	})
}
