package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/razorpay"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
	"github.com/tuktuki/revenue-metrics-api/pkg/apiErrors"
	"github.com/tuktuki/revenue-metrics-api/pkg/log"
)

// RazorpayPayments lists all payments and returns the status summary
// with per-IST-day revenue buckets. With ?date= the response narrows to
// that day's revenue.
func RazorpayPayments(cfg *config.Config, service *razorpay.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if missing := cfg.Razorpay.MissingVars(); len(missing) > 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingCredentials, "razorpay credentials not configured", missing)
			return
		}

		date, err := reportDateParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date must be YYYY-MM-DD", nil)
			return
		}

		payments, err := service.ListPayments(r.Context())
		if err != nil {
			logger.WithField("error", err.Error()).Error("razorpay: failed to list payments")
			apiErrors.WriteError(w, apiErrors.ErrUpstreamUnavailable, "failed to fetch payments from razorpay", nil)
			return
		}

		stats := razorpay.PaymentStats(payments)
		revenue, count := razorpay.DayRevenue(payments, date)

		logger.WithFields(log.Fields{
			"report_date":     date,
			"report_payments": stats.Total,
		}).Info("razorpay: payment stats computed")

		respondJSON(w, http.StatusOK, map[string]any{
			"stats": stats,
			"day": map[string]any{
				"date":    date,
				"revenue": revenue,
				"count":   count,
			},
		})
	})
}

// RazorpaySubscriptions lists all subscriptions, enriches them with
// their plan pricing and returns the revenue summary.
func RazorpaySubscriptions(cfg *config.Config, service *razorpay.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if missing := cfg.Razorpay.MissingVars(); len(missing) > 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingCredentials, "razorpay credentials not configured", missing)
			return
		}

		subs, err := service.ListSubscriptions(r.Context())
		if err != nil {
			logger.WithField("error", err.Error()).Error("razorpay: failed to list subscriptions")
			apiErrors.WriteError(w, apiErrors.ErrUpstreamUnavailable, "failed to fetch subscriptions from razorpay", nil)
			return
		}

		// plans are deduplicated so each is fetched at most once
		plans := map[string]bool{}
		for idx := range subs {
			sub := &subs[idx]
			if sub.Plan != nil || sub.PlanID == "" || plans[sub.PlanID] {
				continue
			}
			plan, err := service.GetPlan(r.Context(), sub.PlanID)
			if err != nil {
				logger.WithFields(log.Fields{
					"plan_id": sub.PlanID,
					"error":   err.Error(),
				}).Warn("razorpay: failed to fetch plan, revenue may be partial")
				plans[sub.PlanID] = true
				continue
			}
			for j := range subs {
				if subs[j].PlanID == sub.PlanID {
					subs[j].Plan = plan
				}
			}
			plans[sub.PlanID] = true
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"stats":         razorpay.SubscriptionStats(subs),
			"subscriptions": subs,
		})
	})
}

// RazorpayInvoices returns the raw subscription-invoice listing.
func RazorpayInvoices(cfg *config.Config, service *razorpay.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if missing := cfg.Razorpay.MissingVars(); len(missing) > 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingCredentials, "razorpay credentials not configured", missing)
			return
		}

		invoices, err := service.ListInvoices(r.Context())
		if err != nil {
			logger.WithField("error", err.Error()).Error("razorpay: failed to list invoices")
			apiErrors.WriteError(w, apiErrors.ErrUpstreamUnavailable, "failed to fetch invoices from razorpay", nil)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"count":    len(invoices),
			"invoices": invoices,
		})
	})
}

// RazorpayPlan fetches a single plan by its identifier.
func RazorpayPlan(cfg *config.Config, service *razorpay.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if missing := cfg.Razorpay.MissingVars(); len(missing) > 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingCredentials, "razorpay credentials not configured", missing)
			return
		}

		planID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if planID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "plan id is required", nil)
			return
		}

		plan, err := service.GetPlan(r.Context(), planID)
		if err != nil {
			logger.WithFields(log.Fields{
				"plan_id": planID,
				"error":   err.Error(),
			}).Error("razorpay: failed to fetch plan")
			apiErrors.WriteError(w, apiErrors.ErrUpstreamUnavailable, "failed to fetch plan from razorpay", nil)
			return
		}

		respondJSON(w, http.StatusOK, plan)
	})
}
