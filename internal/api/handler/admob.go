package handler

import (
	"net/http"
	"time"

	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/admob"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
	"github.com/tuktuki/revenue-metrics-api/pkg/apiErrors"
	"github.com/tuktuki/revenue-metrics-api/pkg/log"
	"github.com/tuktuki/revenue-metrics-api/pkg/utils"
)

// AdMobReport returns the normalized network report. Without ?date= the
// response covers the default lookback window ending yesterday.
func AdMobReport(cfg *config.Config, service *admob.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if missing := cfg.AdMob.MissingVars(); len(missing) > 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingCredentials, "admob credentials not configured", missing)
			return
		}

		rawDate := r.URL.Query().Get("date")
		if rawDate != "" {
			date, err := time.ParseInLocation(time.DateOnly, rawDate, utils.ReportTimezone)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date must be YYYY-MM-DD", nil)
				return
			}

			report, err := service.DailyReport(r.Context(), date)
			if err != nil {
				logger.WithFields(log.Fields{
					"report_date": rawDate,
					"error":       err.Error(),
				}).Error("admob: failed to generate daily report")
				apiErrors.WriteError(w, apiErrors.ErrUpstreamUnavailable, "failed to fetch admob report", nil)
				return
			}

			respondJSON(w, http.StatusOK, report)
			return
		}

		end, err := time.ParseInLocation(time.DateOnly, utils.ISTDate(time.Now(), 1), utils.ReportTimezone)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to resolve report window", nil)
			return
		}

		report, err := service.RangeReport(r.Context(), end, admob.DefaultLookbackDays)
		if err != nil {
			logger.WithField("error", err.Error()).Error("admob: failed to generate range report")
			apiErrors.WriteError(w, apiErrors.ErrUpstreamUnavailable, "failed to fetch admob report", nil)
			return
		}

		respondJSON(w, http.StatusOK, report)
	})
}
