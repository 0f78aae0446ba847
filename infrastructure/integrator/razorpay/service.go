package razorpay

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"
	razorpaydomain "github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/razorpay/domain"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/razorpay/razorpayclient"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
	"github.com/tuktuki/revenue-metrics-api/internal/domain"
	"github.com/tuktuki/revenue-metrics-api/pkg/utils"
)

// Integrator normalizes raw Razorpay collections into the report
// domain: per-day payment buckets and subscription revenue.
type Integrator struct {
	cfg    *config.Config
	Client razorpayclient.Client
}

func New(cfg *config.Config, client razorpayclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *Integrator) ListPayments(ctx context.Context) ([]razorpaydomain.Payment, error) {
	return s.Client.ListPayments(ctx)
}

func (s *Integrator) ListSubscriptions(ctx context.Context) ([]razorpaydomain.Subscription, error) {
	return s.Client.ListSubscriptions(ctx)
}

func (s *Integrator) ListInvoices(ctx context.Context) ([]razorpaydomain.Invoice, error) {
	return s.Client.ListInvoices(ctx)
}

func (s *Integrator) GetPlan(ctx context.Context, planID string) (*razorpaydomain.Plan, error) {
	return s.Client.GetPlan(ctx, planID)
}

// DayRevenue sums captured/authorized payments whose created_at falls
// on the target date in the IST civil calendar. The local-date
// conversion is the business rule: a payment at 00:30 IST belongs to
// that IST day regardless of its UTC day.
func DayRevenue(payments []razorpaydomain.Payment, date string) (revenue float64, count int) {
	for _, p := range payments {
		if !p.CountsTowardRevenue() {
			continue
		}
		if utils.ISTCivilDate(p.CreatedAt) != date {
			continue
		}

		revenue += float64(p.Amount) / 100
		count++
	}

	return revenue, count
}

// PaymentStats summarizes the full payment listing: status counts,
// total revenue, and per-IST-day groups sorted newest first.
func PaymentStats(payments []razorpaydomain.Payment) domain.PaymentStats {
	stats := domain.PaymentStats{Total: len(payments)}

	groups := make(map[string]*domain.PaymentDayGroup)

	for _, p := range payments {
		switch p.Status {
		case razorpaydomain.PaymentStatusCaptured:
			stats.Captured++
		case razorpaydomain.PaymentStatusAuthorized:
			stats.Authorized++
		case razorpaydomain.PaymentStatusFailed:
			stats.Failed++
		}

		if !p.CountsTowardRevenue() {
			continue
		}

		amount := float64(p.Amount) / 100
		stats.Revenue += amount

		day := utils.ISTCivilDate(p.CreatedAt)
		group, ok := groups[day]
		if !ok {
			group = &domain.PaymentDayGroup{Date: day}
			groups[day] = group
		}
		group.Count++
		group.Revenue += amount
	}

	stats.ByDate = make([]domain.PaymentDayGroup, 0, len(groups))
	for _, group := range groups {
		stats.ByDate = append(stats.ByDate, *group)
	}
	sort.Slice(stats.ByDate, func(i, j int) bool {
		return stats.ByDate[i].Date > stats.ByDate[j].Date
	})

	return stats
}

// SubscriptionStats rolls up status counts and revenue. A subscription
// contributes paid_count × plan amount, only when it has at least one
// paid cycle and its plan pricing is embedded.
func SubscriptionStats(subs []razorpaydomain.Subscription) domain.SubscriptionStats {
	stats := domain.SubscriptionStats{Total: len(subs)}

	for _, sub := range subs {
		switch sub.Status {
		case razorpaydomain.SubscriptionStatusActive:
			stats.Active++
		case razorpaydomain.SubscriptionStatusCreated:
			stats.Created++
		case razorpaydomain.SubscriptionStatusCompleted:
			stats.Completed++
		}

		stats.TotalPaid += sub.PaidCount

		if sub.PaidCount == 0 {
			continue
		}

		if sub.Plan == nil || sub.Plan.Item.Amount == 0 {
			logrus.WithField("subscription_id", sub.ID).Debug("razorpay: subscription without plan pricing skipped")
			continue
		}

		stats.Revenue += float64(sub.PaidCount) * float64(sub.Plan.Item.Amount) / 100
	}

	return stats
}
