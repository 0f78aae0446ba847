package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/tuktuki/revenue-metrics-api/internal/scheduler"
	"github.com/tuktuki/revenue-metrics-api/pkg/apiErrors"
)

const (
	CronJobTypeDailyReport = "daily-report"
	CronJobTypeAll         = "all"
)

// CronJobServices holds the schedulers the cron endpoints can control.
type CronJobServices struct {
	DailyReportSyncService *scheduler.DailyReportSyncService
}

// RunCronJob triggers a scheduled job outside its cron window.
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type not specified", nil)
			return
		}

		switch cronType {
		case CronJobTypeDailyReport, CronJobTypeAll:
			if services.DailyReportSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "daily report sync service not available", nil)
				return
			}
			services.DailyReportSyncService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type, accepted values: daily-report, all", nil)
			return
		}

		logrus.WithField("cron_type", cronType).Info("cron: manual run triggered")

		respondJSON(w, http.StatusAccepted, map[string]any{
			"triggered": cronType,
		})
	})
}

// GetCronStatus reports the scheduler state and last-run outcome.
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DailyReportSyncService != nil {
			status["daily_report"] = services.DailyReportSyncService.GetStatus()
		}
		respondJSON(w, http.StatusOK, status)
	})
}
