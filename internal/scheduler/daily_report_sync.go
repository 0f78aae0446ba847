package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
	"github.com/tuktuki/revenue-metrics-api/internal/usecases/reporting"
	"github.com/tuktuki/revenue-metrics-api/pkg/utils"
)

// DailyReportSyncConfig holds the runtime knobs of the report scheduler.
type DailyReportSyncConfig struct {
	CronSchedule   string
	DateOffsetDays int
	EnvMode        string
	SyncEnabled    bool
}

// DailyReportSyncService schedules the daily aggregation run: pick
// yesterday's IST date, aggregate every source and push the result to
// the app backend.
type DailyReportSyncService struct {
	scheduler *gocron.Scheduler
	config    DailyReportSyncConfig
	appConfig *config.Config
	reporter  reporting.Reporter

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	lastReportDate      string
}

func NewDailyReportSyncService(reporter reporting.Reporter, appConfig *config.Config) *DailyReportSyncService {
	syncConfig := DailyReportSyncConfig{
		CronSchedule:   appConfig.ReportSync.CronSchedule,
		DateOffsetDays: appConfig.ReportSync.DateOffsetDays,
		EnvMode:        appConfig.ReportSink.EnvMode,
		SyncEnabled:    appConfig.ReportSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":    syncConfig.CronSchedule,
		"date_offset_days": syncConfig.DateOffsetDays,
		"env_mode":         syncConfig.EnvMode,
		"sync_enabled":     syncConfig.SyncEnabled,
	}).Info("scheduler: daily report sync configuration loaded")

	return &DailyReportSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		appConfig: appConfig,
		reporter:  reporter,
	}
}

// Start registers the cron job and runs the scheduler until the context
// is cancelled.
func (s *DailyReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("scheduler: daily report sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: starting daily report sync")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSync()
	})
	if err != nil {
		return fmt.Errorf("scheduling daily report sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: stopping daily report sync")
		s.scheduler.Stop()
	}()

	return nil
}

// runSync executes one aggregation run. Overlapping runs are skipped;
// the cron fires daily but a manual trigger can race it.
func (s *DailyReportSyncService) runSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: daily report sync already running, skipping")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	runID, _ := utils.GenerateID()
	date := s.reporter.ResolveReportDate(ctx)

	logrus.WithFields(logrus.Fields{
		"run_id":      runID,
		"report_date": date,
		"env_mode":    s.config.EnvMode,
	}).Info("scheduler: daily report sync started")

	metrics, err := s.reporter.SyncReport(ctx, date, s.config.EnvMode)

	s.syncMutex.Lock()
	s.lastReportDate = date
	if err != nil {
		s.lastSyncError = err.Error()
	} else {
		s.lastSyncError = ""
	}
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"run_id":      runID,
			"report_date": date,
		}).Error("scheduler: daily report sync failed")
		return
	}

	downloads, _ := metrics.TotalDownloads()
	views, _ := metrics.TotalViews()
	logrus.WithFields(logrus.Fields{
		"run_id":           runID,
		"report_date":      date,
		"report_downloads": downloads,
		"report_views":     views,
	}).Info("scheduler: daily report sync completed")
}

// TriggerManualSync starts a run outside the cron schedule.
func (s *DailyReportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: daily report sync already running, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("scheduler: manual daily report sync requested")
	go s.runSync()
}

func (s *DailyReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"date_offset_days":       s.config.DateOffsetDays,
		"env_mode":               s.config.EnvMode,
		"last_report_date":       s.lastReportDate,
		"last_sync_error":        s.lastSyncError,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
