package payment

import (
	"context"
	"errors"
)

var (
	ErrInvalidSignature = errors.New("webhook signature verification failed")
	ErrMalformedEvent   = errors.New("malformed webhook event")
)

type CheckoutRequest struct {
	CustomerId  string
	ProductName string
	Description string
	AmountCents int64
	Currency    string
	SuccessURL  string
	CancelURL   string
	// Metadata is copied onto the session and onto its payment intent.
	Metadata map[string]string
}

type CheckoutSession struct {
	Id  string
	URL string
}

// Event is a verified provider notification. Object holds the raw data.object.
type Event struct {
	Id     string
	Type   string
	Object []byte
	// Metadata of the data object, when it carries any.
	Metadata        map[string]string
	ObjectId        string
	PaymentIntentId string
}

// Gateway is the hosted checkout provider.
type Gateway interface {
	CreateCustomer(ctx context.Context, email, name string, metadata map[string]string) (string, error)
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	// ParseEvent authenticates and decodes a webhook body. Verified reports whether
	// a signature check actually took place.
	ParseEvent(payload []byte, signature string) (evt *Event, verified bool, err error)
}
