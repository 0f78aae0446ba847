package domain

import "time"

// PlatformMetrics is one platform's slice of an Adjust report.
type PlatformMetrics struct {
	Installs int `json:"installs"`
	Views    int `json:"views"`
}

// AdjustReport is the normalized Adjust response for one report date,
// keyed by platform. A nil platform entry means the API returned no row
// for that OS.
type AdjustReport struct {
	Date    string           `json:"date"`
	Android *PlatformMetrics `json:"android"`
	IOS     *PlatformMetrics `json:"ios"`
}

// AdMobDailyRow is the per-day, per-platform unit every aggregation rule
// filters against. RevenueUSD is micros/1e6, exact.
type AdMobDailyRow struct {
	Date        string   `json:"date"`
	Platform    Platform `json:"platform"`
	Impressions int      `json:"impressions"`
	Clicks      int      `json:"clicks"`
	RevenueUSD  float64  `json:"revenue"`
}

// AdMobReport carries the normalized network report rows.
type AdMobReport struct {
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
	DailyData []AdMobDailyRow `json:"dailyData"`
}

// AppStoreDownloads is the parsed daily sales report for the tracked
// Apple identifier. Downloads rolls up all three buckets; NewDownloads
// is the preferred headline figure when present.
type AppStoreDownloads struct {
	Date      string            `json:"date"`
	Downloads int               `json:"downloads"`
	Breakdown AppStoreBreakdown `json:"breakdown"`
}

type AppStoreBreakdown struct {
	NewDownloads int `json:"newDownloads"`
	Updates      int `json:"updates"`
	Redownloads  int `json:"redownloads"`
}

// PlayStoreDownloads sums the install column of the newest bulk-export
// object in the stats bucket.
type PlayStoreDownloads struct {
	Downloads   int       `json:"downloads"`
	SourceFile  string    `json:"sourceFile"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// PaymentDayGroup buckets captured/authorized payments by IST civil day.
type PaymentDayGroup struct {
	Date    string  `json:"date"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// PaymentStats summarizes a full Razorpay payment listing.
type PaymentStats struct {
	Total      int               `json:"total"`
	Captured   int               `json:"captured"`
	Authorized int               `json:"authorized"`
	Failed     int               `json:"failed"`
	Revenue    float64           `json:"revenue"`
	ByDate     []PaymentDayGroup `json:"byDate"`
}

// SubscriptionStats summarizes the subscription listing. Revenue counts
// paid_count x plan amount for subscriptions with at least one paid
// cycle.
type SubscriptionStats struct {
	Total     int     `json:"total"`
	Active    int     `json:"active"`
	Created   int     `json:"created"`
	Completed int     `json:"completed"`
	TotalPaid int     `json:"totalPaid"`
	Revenue   float64 `json:"revenue"`
}
