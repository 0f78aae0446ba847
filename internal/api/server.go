package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/adjust"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/admob"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/appstore"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/playstore"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/razorpay"
	"github.com/tuktuki/revenue-metrics-api/internal/api/handler"
	"github.com/tuktuki/revenue-metrics-api/internal/api/handler/router"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
	"github.com/tuktuki/revenue-metrics-api/internal/scheduler"
	"github.com/tuktuki/revenue-metrics-api/internal/usecases/reporting"
	"github.com/tuktuki/revenue-metrics-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	razorpayService *razorpay.Integrator,
	admobService *admob.Integrator,
	adjustService *adjust.Integrator,
	appstoreService *appstore.Integrator,
	playstoreService *playstore.Integrator,
	reportService reporting.Reporter,
	reportSyncService *scheduler.DailyReportSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		DailyReportSyncService: reportSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Razorpay(config, razorpayService)...),
		router.WithRoutes(handler.AdMob(config, admobService)...),
		router.WithRoutes(handler.Adjust(config, adjustService)...),
		router.WithRoutes(handler.AppStore(config, appstoreService)...),
		router.WithRoutes(handler.PlayStore(config, playstoreService)...),
		router.WithRoutes(handler.Reports(config, reportService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server execution failed")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
