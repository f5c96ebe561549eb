package stripe

import (
	"context"
	"encoding/json"
	"fmt"

	"legal-letter-be/pkg/payment"

	stripeapi "github.com/stripe/stripe-go/v82"
	session "github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/customer"
	"github.com/stripe/stripe-go/v82/webhook"
)

// PlaceholderWebhookSecret is shipped in sample env files and disables verification.
const PlaceholderWebhookSecret = "whsec_placeholder"

type Gateway struct {
	webhookSecret string
}

var _ payment.Gateway = &Gateway{}

func NewGateway(secretKey, webhookSecret string) *Gateway {
	stripeapi.Key = secretKey
	return &Gateway{webhookSecret: webhookSecret}
}

// VerifiesSignatures reports whether a usable webhook secret is configured.
func (g *Gateway) VerifiesSignatures() bool {
	return g.webhookSecret != "" && g.webhookSecret != PlaceholderWebhookSecret
}

func (g *Gateway) CreateCustomer(ctx context.Context, email, name string, metadata map[string]string) (string, error) {
	cust, err := customer.New(customerParams(ctx, email, name, metadata))
	if err != nil {
		return "", fmt.Errorf("create stripe customer: %w", err)
	}
	return cust.ID, nil
}

func customerParams(ctx context.Context, email, name string, metadata map[string]string) *stripeapi.CustomerParams {
	params := &stripeapi.CustomerParams{
		Email:    stripeapi.String(email),
		Name:     stripeapi.String(name),
		Metadata: metadata,
	}
	params.Context = ctx
	return params
}

func (g *Gateway) CreateCheckoutSession(ctx context.Context, req payment.CheckoutRequest) (*payment.CheckoutSession, error) {
	s, err := session.New(checkoutSessionParams(ctx, req))
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &payment.CheckoutSession{Id: s.ID, URL: s.URL}, nil
}

// checkoutSessionParams builds a one-off payment for a single package.
func checkoutSessionParams(ctx context.Context, req payment.CheckoutRequest) *stripeapi.CheckoutSessionParams {
	params := &stripeapi.CheckoutSessionParams{
		Mode:     stripeapi.String(string(stripeapi.CheckoutSessionModePayment)),
		Customer: stripeapi.String(req.CustomerId),
		LineItems: []*stripeapi.CheckoutSessionLineItemParams{
			{
				PriceData: &stripeapi.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripeapi.String(req.Currency),
					UnitAmount: stripeapi.Int64(req.AmountCents),
					ProductData: &stripeapi.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripeapi.String(req.ProductName),
						Description: stripeapi.String(req.Description),
						Metadata:    req.Metadata,
					},
				},
				Quantity: stripeapi.Int64(1),
			},
		},
		SuccessURL: stripeapi.String(req.SuccessURL),
		CancelURL:  stripeapi.String(req.CancelURL),
		Metadata:   req.Metadata,
		PaymentIntentData: &stripeapi.CheckoutSessionPaymentIntentDataParams{
			Metadata: req.Metadata,
		},
	}
	params.Context = ctx
	return params
}

func (g *Gateway) ParseEvent(payload []byte, signature string) (*payment.Event, bool, error) {
	var (
		event    stripeapi.Event
		verified bool
	)

	if g.VerifiesSignatures() {
		var err error
		event, err = webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
		if err != nil {
			return nil, false, fmt.Errorf("%w: %v", payment.ErrInvalidSignature, err)
		}
		verified = true
	} else if err := json.Unmarshal(payload, &event); err != nil {
		return nil, false, fmt.Errorf("%w: %v", payment.ErrMalformedEvent, err)
	}

	out := &payment.Event{
		Id:   event.ID,
		Type: string(event.Type),
	}
	if event.Data == nil {
		return out, verified, nil
	}
	out.Object = event.Data.Raw

	var obj struct {
		Id            string            `json:"id"`
		Object        string            `json:"object"`
		Metadata      map[string]string `json:"metadata"`
		PaymentIntent json.RawMessage   `json:"payment_intent"`
	}
	if err := json.Unmarshal(event.Data.Raw, &obj); err != nil {
		return nil, verified, fmt.Errorf("%w: %v", payment.ErrMalformedEvent, err)
	}
	out.ObjectId = obj.Id
	out.Metadata = obj.Metadata

	switch obj.Object {
	case "payment_intent":
		out.PaymentIntentId = obj.Id
	case "checkout.session":
		out.PaymentIntentId = paymentIntentId(obj.PaymentIntent)
	}

	return out, verified, nil
}

// paymentIntentId accepts both the collapsed id and an expanded object.
func paymentIntentId(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		return id
	}
	var expanded stripeapi.PaymentIntent
	if err := json.Unmarshal(raw, &expanded); err == nil {
		return expanded.ID
	}
	return ""
}
