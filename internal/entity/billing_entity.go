package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentSessionStatus string

const (
	PaymentSessionCreated   PaymentSessionStatus = "created"
	PaymentSessionCompleted PaymentSessionStatus = "completed"
	PaymentSessionFailed    PaymentSessionStatus = "failed"
)

// PaymentSession correlates an asynchronous checkout callback back to an account.
type PaymentSession struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	StripeSessionId string
	PackageType     string
	AmountCents     int64
	Status          PaymentSessionStatus
	CompletedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type WebhookOutcome string

const (
	WebhookOutcomeSuccess   WebhookOutcome = "success"
	WebhookOutcomeProcessed WebhookOutcome = "processed"
	WebhookOutcomeUnhandled WebhookOutcome = "unhandled"
	WebhookOutcomeFailed    WebhookOutcome = "failed"
	WebhookOutcomeError     WebhookOutcome = "error"
	WebhookOutcomeDuplicate WebhookOutcome = "duplicate"
)

const EventTypeSignatureFailed = "signature_verification_failed"

// WebhookLog is an append-only audit row. Applied marks the single row whose
// effect reached the ledger for a given provider event id.
type WebhookLog struct {
	Id        uuid.UUID
	EventId   *string
	EventType string
	Status    WebhookOutcome
	Error     *string
	EventData []byte
	Applied   bool
	CreatedAt time.Time
}
