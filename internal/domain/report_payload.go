package domain

// ReportPayload is the body posted to the app backend's
// addPerformanceReport endpoint. The backend stores every field as a
// string, date included (epoch millis of midnight IST on the report
// date).
type ReportPayload struct {
	Date                    string `json:"date"`
	AppDownloadAndroid      string `json:"app_download_android"`
	AppDownloadIOS          string `json:"app_download_ios"`
	EpisodesViewedAndroid   string `json:"episodes_viewed_android"`
	EpisodesViewedIOS       string `json:"episodes_viewed_ios"`
	AdmobImpressionsAndroid string `json:"admob_impressions_android"`
	AdmobImpressionsIOS     string `json:"admob_impressions_ios"`
	AdmobRevenueAndroid     string `json:"admob_revenue_android"`
	AdmobRevenueIOS         string `json:"admob_revenue_ios"`
	RazorpayRevenue         string `json:"razor_pay_revenue"`
}
