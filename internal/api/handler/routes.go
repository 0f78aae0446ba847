package handler

import (
	"net/http"

	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/adjust"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/admob"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/appstore"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/playstore"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/razorpay"
	"github.com/tuktuki/revenue-metrics-api/internal/api/handler/router"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
	"github.com/tuktuki/revenue-metrics-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Razorpay(cfg *config.Config, service *razorpay.Integrator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/razorpay/payments",
			Method:  http.MethodGet,
			Handler: RazorpayPayments(cfg, service),
		},
		{
			Path:    "/api/razorpay/subscriptions",
			Method:  http.MethodGet,
			Handler: RazorpaySubscriptions(cfg, service),
		},
		{
			Path:    "/api/razorpay/invoices",
			Method:  http.MethodGet,
			Handler: RazorpayInvoices(cfg, service),
		},
		{
			Path:    "/api/razorpay/plans/:id",
			Method:  http.MethodGet,
			Handler: RazorpayPlan(cfg, service),
		},
	}
}

func AdMob(cfg *config.Config, service *admob.Integrator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/admob/report",
			Method:  http.MethodGet,
			Handler: AdMobReport(cfg, service),
		},
	}
}

func Adjust(cfg *config.Config, service *adjust.Integrator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/adjust/report",
			Method:  http.MethodGet,
			Handler: AdjustReport(cfg, service),
		},
	}
}

func AppStore(cfg *config.Config, service *appstore.Integrator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/appstore/downloads",
			Method:  http.MethodGet,
			Handler: AppStoreDownloads(cfg, service),
		},
	}
}

func PlayStore(cfg *config.Config, service *playstore.Integrator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/playstore/downloads",
			Method:  http.MethodGet,
			Handler: PlayStoreDownloads(cfg, service),
		},
	}
}

func Reports(cfg *config.Config, service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/report",
			Method:  http.MethodGet,
			Handler: DailyReport(service),
		},
		{
			Path:    "/api/report/html",
			Method:  http.MethodGet,
			Handler: DailyReportHTML(service),
		},
		{
			Path:    "/api/report/spreadsheet",
			Method:  http.MethodGet,
			Handler: DailyReportSpreadsheet(cfg, service),
		},
		{
			Path:    "/api/report/save",
			Method:  http.MethodPost,
			Handler: SaveDailyReport(cfg, service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
