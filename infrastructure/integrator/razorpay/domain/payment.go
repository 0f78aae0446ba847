package domain

// Payment statuses as Razorpay reports them. Only captured and
// authorized payments count toward revenue.
const (
	PaymentStatusCreated    = "created"
	PaymentStatusAuthorized = "authorized"
	PaymentStatusCaptured   = "captured"
	PaymentStatusRefunded   = "refunded"
	PaymentStatusFailed     = "failed"
)

// Payment is one entry of the /v1/payments collection. Amount is in
// minor units (paise).
type Payment struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	Method    string `json:"method"`
	Email     string `json:"email"`
	Contact   string `json:"contact"`
	CreatedAt int64  `json:"created_at"`
}

// CountsTowardRevenue reports whether this payment's amount is revenue.
func (p Payment) CountsTowardRevenue() bool {
	return p.Status == PaymentStatusCaptured || p.Status == PaymentStatusAuthorized
}

// PaymentCollection mirrors Razorpay's list envelope.
type PaymentCollection struct {
	Entity string    `json:"entity"`
	Count  int       `json:"count"`
	Items  []Payment `json:"items"`
}
