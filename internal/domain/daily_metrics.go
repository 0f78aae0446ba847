package domain

// DailyMetrics is the unified result of one aggregation run for a single
// report date. Per-platform fields are pointers so that "source returned
// no data" stays distinguishable from a real zero; totals are always
// derived from the components and never stored on their own.
type DailyMetrics struct {
	Date string `json:"date"`

	AndroidDownloads *int `json:"androidDownloads"`
	IOSDownloads     *int `json:"iosDownloads"`

	AndroidViews *int `json:"androidViews"`
	IOSViews     *int `json:"iosViews"`

	AndroidImpressions *int `json:"androidImpressions"`
	IOSImpressions     *int `json:"iosImpressions"`

	AndroidAdRevenueUSD *float64 `json:"androidAdRevenueUsd"`
	IOSAdRevenueUSD     *float64 `json:"iosAdRevenueUsd"`

	// Rounded per-platform INR values for display. The rate used is
	// recorded so re-renders stay consistent within a run.
	AndroidAdRevenueINR *int    `json:"androidAdRevenueInr"`
	IOSAdRevenueINR     *int    `json:"iosAdRevenueInr"`
	USDToINR            float64 `json:"usdToInr"`

	RazorpayRevenueINR *float64 `json:"razorpayRevenueInr"`
}

// sumInt adds two optional ints. Both absent means the metric has no
// data at all ("N/A"), one absent counts as zero.
func sumInt(a, b *int) (int, bool) {
	if a == nil && b == nil {
		return 0, false
	}

	total := 0
	if a != nil {
		total += *a
	}
	if b != nil {
		total += *b
	}
	return total, true
}

func sumFloat(a, b *float64) (float64, bool) {
	if a == nil && b == nil {
		return 0, false
	}

	total := 0.0
	if a != nil {
		total += *a
	}
	if b != nil {
		total += *b
	}
	return total, true
}

func (m *DailyMetrics) TotalDownloads() (int, bool)   { return sumInt(m.AndroidDownloads, m.IOSDownloads) }
func (m *DailyMetrics) TotalViews() (int, bool)       { return sumInt(m.AndroidViews, m.IOSViews) }
func (m *DailyMetrics) TotalImpressions() (int, bool) { return sumInt(m.AndroidImpressions, m.IOSImpressions) }

// TotalAdRevenueUSD sums in full precision; rounding happens only at
// display time.
func (m *DailyMetrics) TotalAdRevenueUSD() (float64, bool) {
	return sumFloat(m.AndroidAdRevenueUSD, m.IOSAdRevenueUSD)
}

func (m *DailyMetrics) TotalAdRevenueINR() (int, bool) {
	return sumInt(m.AndroidAdRevenueINR, m.IOSAdRevenueINR)
}
