// Package checkout coordinates prepaid bookings through an external payment
// gateway. The gateway is consumed through an interface; the Stripe
// implementation lives in stripe.go.
package checkout

// PaymentStatusPaid is the only gateway status that materializes a booking.
const PaymentStatusPaid = "paid"

// SessionParams describes the checkout session to create. Amounts are
// integer minor currency units; metadata round-trips booking details through
// the gateway for later confirmation.
type SessionParams struct {
	AmountCents int64
	Currency    string
	Description string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

// Session is the gateway's view of a checkout, reduced to what confirmation
// needs.
type Session struct {
	ID            string
	URL           string
	PaymentStatus string
	AmountCents   int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Metadata      map[string]string
}

type Gateway interface {
	CreateSession(params SessionParams) (*Session, error)
	GetSession(id string) (*Session, error)
}
