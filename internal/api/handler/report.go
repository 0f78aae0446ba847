package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/tuktuki/revenue-metrics-api/internal/config"
	"github.com/tuktuki/revenue-metrics-api/internal/render"
	"github.com/tuktuki/revenue-metrics-api/internal/usecases/reporting"
	"github.com/tuktuki/revenue-metrics-api/pkg/apiErrors"
	"github.com/tuktuki/revenue-metrics-api/pkg/log"
)

// DailyReport aggregates every source for one date and returns the
// unified metrics as JSON.
func DailyReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date, err := reportDateParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date must be YYYY-MM-DD", nil)
			return
		}

		metrics, err := service.DailyReport(r.Context(), date)
		if err != nil {
			logger.WithFields(log.Fields{
				"report_date": date,
				"error":       err.Error(),
			}).Error("report: aggregation failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to build daily report", nil)
			return
		}

		respondJSON(w, http.StatusOK, metrics)
	})
}

// DailyReportHTML renders the single-date dashboard page.
func DailyReportHTML(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date, err := reportDateParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date must be YYYY-MM-DD", nil)
			return
		}

		metrics, err := service.DailyReport(r.Context(), date)
		if err != nil {
			logger.WithFields(log.Fields{
				"report_date": date,
				"error":       err.Error(),
			}).Error("report: aggregation failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to build daily report", nil)
			return
		}

		page, err := render.HTML(metrics)
		if err != nil {
			logger.WithField("error", err.Error()).Error("report: html rendering failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to render report page", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	})
}

// DailyReportSpreadsheet builds the trailing-days workbook and streams
// it as an attachment. ?days overrides the configured window.
func DailyReportSpreadsheet(cfg *config.Config, service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date, err := reportDateParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date must be YYYY-MM-DD", nil)
			return
		}

		days := cfg.Excel.DaysCount
		if raw := r.URL.Query().Get("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > 90 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "days must be between 1 and 90", nil)
				return
			}
			days = parsed
		}

		reports, err := service.TrailingReports(r.Context(), date, days)
		if err != nil {
			logger.WithFields(log.Fields{
				"report_date": date,
				"report_days": days,
				"error":       err.Error(),
			}).Error("report: trailing aggregation failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to build report window", nil)
			return
		}

		workbook, err := render.Spreadsheet(reports)
		if err != nil {
			logger.WithField("error", err.Error()).Error("report: spreadsheet rendering failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to render spreadsheet", nil)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="daily-report-%s.xlsx"`, date))
		w.Write(workbook)
	})
}

// SaveDailyReport aggregates one date and posts it to the app backend.
// ?env overrides the configured environment.
func SaveDailyReport(cfg *config.Config, service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date, err := reportDateParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date must be YYYY-MM-DD", nil)
			return
		}

		envMode := r.URL.Query().Get("env")
		if envMode == "" {
			envMode = cfg.ReportSink.EnvMode
		}
		if _, ok := cfg.ReportSink.EndpointFor(envMode); !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "env must be one of dev, qa, live", nil)
			return
		}

		metrics, err := service.SyncReport(r.Context(), date, envMode)
		if err != nil {
			logger.WithFields(log.Fields{
				"report_date": date,
				"error":       err.Error(),
			}).Error("report: save to backend failed")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "failed to save report to backend", nil)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"saved":   true,
			"env":     envMode,
			"metrics": metrics,
		})
	})
}
