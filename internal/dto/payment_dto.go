package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCheckoutRequest struct {
	PackageType string `json:"packageType"`
}

type CreateCheckoutResponse struct {
	SessionId string `json:"sessionId"`
	URL       string `json:"url"`
}

type WebhookAckResponse struct {
	Received  bool      `json:"received"`
	EventType string    `json:"event_type"`
	Duplicate bool      `json:"duplicate"`
	Timestamp time.Time `json:"timestamp"`
}

type WebhookLogDTO struct {
	Id        uuid.UUID `json:"id"`
	EventId   *string   `json:"event_id"`
	EventType string    `json:"event_type"`
	Status    string    `json:"status"`
	Error     *string   `json:"error,omitempty"`
	Applied   bool      `json:"applied"`
	CreatedAt time.Time `json:"created_at"`
}
