package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/adjust"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/adjust/adjustclient"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/admob"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/admob/admobclient"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/appbackend/appbackendclient"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/appstore"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/appstore/appstoreclient"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/exchangerate"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/playstore"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/playstore/playstoreclient"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/razorpay"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/razorpay/razorpayclient"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/timeapi"
	"github.com/tuktuki/revenue-metrics-api/internal/api"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
	"github.com/tuktuki/revenue-metrics-api/internal/scheduler"
	"github.com/tuktuki/revenue-metrics-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	razorpayClient := razorpayclient.NewClient(cfg)
	razorpayIntegrator := razorpay.New(cfg, razorpayClient)

	admobClient := admobclient.NewClient(cfg)
	admobIntegrator := admob.New(cfg, admobClient)

	adjustClient := adjustclient.NewClient(cfg)
	adjustIntegrator := adjust.NewIntegrator(cfg, adjustClient)

	appstoreClient := appstoreclient.NewClient(cfg)
	appstoreIntegrator := appstore.NewIntegrator(cfg, appstoreClient)

	playstoreClient := playstoreclient.NewClient(cfg)
	playstoreIntegrator := playstore.NewIntegrator(cfg, playstoreClient)

	rateProvider := exchangerate.NewProvider(cfg.ExchangeRate.BaseURL)
	dateResolver := timeapi.NewResolver(cfg.TimeAPI.BaseURL)
	backendClient := appbackendclient.NewClient(cfg)

	reportService := reporting.NewService(
		cfg,
		adjustIntegrator,
		admobIntegrator,
		razorpayIntegrator,
		rateProvider,
		dateResolver,
		backendClient,
	)

	reportSyncService := scheduler.NewDailyReportSyncService(reportService, cfg)

	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start daily report scheduler")
	} else {
		logrus.Info("daily report scheduler started")
	}

	server, err := api.New(
		cfg,
		razorpayIntegrator,
		admobIntegrator,
		adjustIntegrator,
		appstoreIntegrator,
		playstoreIntegrator,
		reportService,
		reportSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
