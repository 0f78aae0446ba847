package domain

// Subscription statuses relevant to the stats rollup.
const (
	SubscriptionStatusCreated   = "created"
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCompleted = "completed"
)

// Plan pricing lives under plan.item; amount is in paise.
type PlanItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type Plan struct {
	ID     string   `json:"id"`
	Period string   `json:"period"`
	Item   PlanItem `json:"item"`
}

// Subscription is one entry of the /v1/subscriptions collection. The
// plan is embedded when the listing is expanded; revenue needs it.
type Subscription struct {
	ID             string `json:"id"`
	PlanID         string `json:"plan_id"`
	Status         string `json:"status"`
	TotalCount     int    `json:"total_count"`
	PaidCount      int    `json:"paid_count"`
	RemainingCount int    `json:"remaining_count"`
	CreatedAt      int64  `json:"created_at"`
	Plan           *Plan  `json:"plan,omitempty"`
}

type SubscriptionCollection struct {
	Entity string         `json:"entity"`
	Count  int            `json:"count"`
	Items  []Subscription `json:"items"`
}

// Invoice is listed but only passed through; nothing downstream
// aggregates invoices yet.
type Invoice struct {
	ID             string `json:"id"`
	Status         string `json:"status"`
	Amount         int64  `json:"amount"`
	AmountPaid     int64  `json:"amount_paid"`
	SubscriptionID string `json:"subscription_id"`
	CreatedAt      int64  `json:"created_at"`
}

type InvoiceCollection struct {
	Entity string    `json:"entity"`
	Count  int       `json:"count"`
	Items  []Invoice `json:"items"`
}
