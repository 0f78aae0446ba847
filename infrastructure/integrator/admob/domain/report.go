package domain

// Raw shapes of the AdMob network report stream. The generate endpoint
// returns a JSON array interleaving one header, N row entries and one
// footer.

type ReportDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

type DateRange struct {
	StartDate ReportDate `json:"startDate"`
	EndDate   ReportDate `json:"endDate"`
}

type ReportSpec struct {
	DateRange  DateRange `json:"dateRange"`
	Dimensions []string  `json:"dimensions"`
	Metrics    []string  `json:"metrics"`
}

type GenerateRequest struct {
	ReportSpec ReportSpec `json:"reportSpec"`
}

type DimensionValue struct {
	Value        string `json:"value"`
	DisplayLabel string `json:"displayLabel,omitempty"`
}

// MetricValue carries exactly one of the value fields depending on the
// metric type. Earnings come as micros.
type MetricValue struct {
	IntegerValue string  `json:"integerValue,omitempty"`
	MicrosValue  string  `json:"microsValue,omitempty"`
	DoubleValue  float64 `json:"doubleValue,omitempty"`
}

type ReportRow struct {
	DimensionValues map[string]DimensionValue `json:"dimensionValues"`
	MetricValues    map[string]MetricValue    `json:"metricValues"`
}

type ReportEntry struct {
	Header *struct {
		DateRange DateRange `json:"dateRange"`
	} `json:"header,omitempty"`
	Row    *ReportRow `json:"row,omitempty"`
	Footer *struct {
		MatchingRowCount string `json:"matchingRowCount"`
	} `json:"footer,omitempty"`
}
