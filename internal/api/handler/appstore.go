package handler

import (
	"net/http"

	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/appstore"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
	"github.com/tuktuki/revenue-metrics-api/pkg/apiErrors"
	"github.com/tuktuki/revenue-metrics-api/pkg/log"
)

// AppStoreDownloads returns the aggregated daily sales report. Reports
// for very recent dates may not be published yet; that surfaces as an
// upstream error.
func AppStoreDownloads(cfg *config.Config, service *appstore.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if missing := cfg.AppStore.MissingVars(); len(missing) > 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingCredentials, "app store credentials not configured", missing)
			return
		}

		date, err := reportDateParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date must be YYYY-MM-DD", nil)
			return
		}

		downloads, err := service.DailyDownloads(r.Context(), date)
		if err != nil {
			logger.WithFields(log.Fields{
				"report_date": date,
				"error":       err.Error(),
			}).Error("appstore: failed to fetch daily downloads")
			apiErrors.WriteError(w, apiErrors.ErrUpstreamUnavailable, "failed to fetch app store sales report", nil)
			return
		}

		respondJSON(w, http.StatusOK, downloads)
	})
}
