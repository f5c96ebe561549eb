package contract

import (
	"context"

	"legal-letter-be/internal/entity"
	"legal-letter-be/internal/repository/specification"
)

type LetterRepository interface {
	Create(ctx context.Context, letter *entity.Letter) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Letter, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Letter, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// SaveTransition persists stage, status and sent_at, but only while the stored
	// row is unsent and not ahead of the new stage. Returns false when the guard fails.
	SaveTransition(ctx context.Context, letter *entity.Letter) (bool, error)
}

type EmailLogRepository interface {
	Create(ctx context.Context, log *entity.EmailLog) error
}
