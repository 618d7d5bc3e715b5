package checkout

import (
	"vilcos/errs"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

// StripeGateway implements Gateway on Stripe Checkout Sessions.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) CreateSession(params SessionParams) (*Session, error) {
	sessionParams := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(params.Currency),
					UnitAmount: stripe.Int64(params.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(params.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(params.SuccessURL),
		CancelURL:  stripe.String(params.CancelURL),
	}
	for key, value := range params.Metadata {
		sessionParams.AddMetadata(key, value)
	}

	sess, err := g.api.CheckoutSessions.New(sessionParams)
	if err != nil {
		return nil, errs.Upstreamf("create checkout session: %v", err)
	}
	return fromStripeSession(sess), nil
}

func (g *StripeGateway) GetSession(id string) (*Session, error) {
	sess, err := g.api.CheckoutSessions.Get(id, nil)
	if err != nil {
		return nil, errs.Upstreamf("retrieve checkout session %s: %v", id, err)
	}
	return fromStripeSession(sess), nil
}

func fromStripeSession(sess *stripe.CheckoutSession) *Session {
	out := &Session{
		ID:            sess.ID,
		URL:           sess.URL,
		PaymentStatus: string(sess.PaymentStatus),
		AmountCents:   sess.AmountTotal,
		Metadata:      sess.Metadata,
	}
	if sess.CustomerDetails != nil {
		out.CustomerName = sess.CustomerDetails.Name
		out.CustomerEmail = sess.CustomerDetails.Email
		out.CustomerPhone = sess.CustomerDetails.Phone
	}
	return out
}
