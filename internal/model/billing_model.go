package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentSession struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId          uuid.UUID `gorm:"type:uuid;not null;index"`
	StripeSessionId string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PackageType     string    `gorm:"type:varchar(50);not null"`
	AmountCents     int64     `gorm:"not null"`
	Status          string    `gorm:"type:varchar(20);not null;default:'created'"`
	CompletedAt     *time.Time
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (PaymentSession) TableName() string {
	return "payment_sessions"
}

// WebhookLog rows are never updated. The partial unique index lets any number
// of audit rows share an event id while only one of them may be the applied one.
type WebhookLog struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	EventId   *string        `gorm:"type:varchar(255);index;uniqueIndex:idx_webhook_logs_applied_event,where:applied = true"`
	EventType string         `gorm:"type:varchar(100);not null"`
	Status    string         `gorm:"type:varchar(20);not null"`
	Error     *string        `gorm:"type:text"`
	EventData datatypes.JSON `gorm:"type:jsonb"`
	Applied   bool           `gorm:"not null;default:false"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
}

func (WebhookLog) TableName() string {
	return "webhook_logs"
}
