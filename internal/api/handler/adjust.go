package handler

import (
	"net/http"

	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/adjust"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
	"github.com/tuktuki/revenue-metrics-api/pkg/apiErrors"
	"github.com/tuktuki/revenue-metrics-api/pkg/log"
)

// AdjustReport returns installs and episode views per platform for one
// report date, defaulting to yesterday in IST.
func AdjustReport(cfg *config.Config, service *adjust.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if missing := cfg.Adjust.MissingVars(); len(missing) > 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingCredentials, "adjust credentials not configured", missing)
			return
		}

		date, err := reportDateParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date must be YYYY-MM-DD", nil)
			return
		}

		report, err := service.DailyReport(r.Context(), date)
		if err != nil {
			logger.WithFields(log.Fields{
				"report_date": date,
				"error":       err.Error(),
			}).Error("adjust: failed to fetch daily report")
			apiErrors.WriteError(w, apiErrors.ErrUpstreamUnavailable, "failed to fetch adjust report", nil)
			return
		}

		respondJSON(w, http.StatusOK, report)
	})
}
