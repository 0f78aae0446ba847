package razorpay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	razorpaydomain "github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/razorpay/domain"
)

func epochIST(value string) int64 {
	loc, _ := time.LoadLocation("Asia/Kolkata")
	t, _ := time.ParseInLocation("2006-01-02 15:04:05", value, loc)
	return t.Unix()
}

func TestDayRevenueBucketsByISTDay(t *testing.T) {
	payments := []razorpaydomain.Payment{
		// 00:30 IST on Oct 1: belongs to Oct 1 even though it is
		// Sep 30 in UTC
		{ID: "p1", Amount: 49900, Status: "captured", CreatedAt: epochIST("2025-10-01 00:30:00")},
		{ID: "p2", Amount: 30000, Status: "authorized", CreatedAt: epochIST("2025-10-01 12:00:00")},
		{ID: "p3", Amount: 20000, Status: "captured", CreatedAt: epochIST("2025-10-01 23:59:59")},
		// wrong status
		{ID: "p4", Amount: 99900, Status: "failed", CreatedAt: epochIST("2025-10-01 10:00:00")},
		{ID: "p5", Amount: 99900, Status: "created", CreatedAt: epochIST("2025-10-01 10:00:00")},
		{ID: "p6", Amount: 99900, Status: "refunded", CreatedAt: epochIST("2025-10-01 10:00:00")},
		// wrong day
		{ID: "p7", Amount: 50000, Status: "captured", CreatedAt: epochIST("2025-09-30 23:59:59")},
		{ID: "p8", Amount: 50000, Status: "captured", CreatedAt: epochIST("2025-10-02 00:00:00")},
	}

	revenue, count := DayRevenue(payments, "2025-10-01")
	assert.Equal(t, 999.0, revenue)
	assert.Equal(t, 3, count)
}

func TestDayRevenueEmptyListing(t *testing.T) {
	revenue, count := DayRevenue(nil, "2025-10-01")
	assert.Equal(t, 0.0, revenue)
	assert.Equal(t, 0, count)
}

func TestPaymentStats(t *testing.T) {
	payments := []razorpaydomain.Payment{
		{Amount: 10000, Status: "captured", CreatedAt: epochIST("2025-10-01 10:00:00")},
		{Amount: 20000, Status: "captured", CreatedAt: epochIST("2025-10-01 11:00:00")},
		{Amount: 5000, Status: "authorized", CreatedAt: epochIST("2025-10-02 09:00:00")},
		{Amount: 7000, Status: "failed", CreatedAt: epochIST("2025-10-02 09:30:00")},
	}

	stats := PaymentStats(payments)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Captured)
	assert.Equal(t, 1, stats.Authorized)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 350.0, stats.Revenue)

	// groups sorted newest first, failed payment excluded
	assert.Len(t, stats.ByDate, 2)
	assert.Equal(t, "2025-10-02", stats.ByDate[0].Date)
	assert.Equal(t, 50.0, stats.ByDate[0].Revenue)
	assert.Equal(t, "2025-10-01", stats.ByDate[1].Date)
	assert.Equal(t, 300.0, stats.ByDate[1].Revenue)
	assert.Equal(t, 2, stats.ByDate[1].Count)
}

func TestSubscriptionStats(t *testing.T) {
	plan := &razorpaydomain.Plan{
		ID:   "plan_1",
		Item: razorpaydomain.PlanItem{Amount: 9900},
	}

	subs := []razorpaydomain.Subscription{
		{ID: "s1", Status: "active", PaidCount: 3, Plan: plan},
		{ID: "s2", Status: "completed", PaidCount: 12, Plan: plan},
		// never paid: no revenue contribution
		{ID: "s3", Status: "created", PaidCount: 0, Plan: plan},
		// paid but plan missing: skipped from revenue, still counted
		{ID: "s4", Status: "active", PaidCount: 2},
	}

	stats := SubscriptionStats(subs)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, 1, stats.Created)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 17, stats.TotalPaid)
	assert.Equal(t, 15*99.0, stats.Revenue)
}
