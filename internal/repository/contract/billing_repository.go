package contract

import (
	"context"
	"time"

	"legal-letter-be/internal/entity"
	"legal-letter-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PaymentSessionRepository interface {
	Create(ctx context.Context, session *entity.PaymentSession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PaymentSession, error)
	MarkCompleted(ctx context.Context, stripeSessionId string, at time.Time) error
	// MarkFailedForUser fails every still-open session of the account.
	MarkFailedForUser(ctx context.Context, userId uuid.UUID) (int64, error)
}

type WebhookLogRepository interface {
	Create(ctx context.Context, log *entity.WebhookLog) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WebhookLog, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WebhookLog, error)
}
