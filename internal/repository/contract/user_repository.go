package contract

import (
	"context"
	"time"

	"legal-letter-be/internal/entity"
	"legal-letter-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// DecrementLettersRemaining consumes one letter from a paid account.
	// ok is false when the account had no quota left.
	DecrementLettersRemaining(ctx context.Context, userId uuid.UUID) (remaining int, ok bool, err error)
	// ActivateSubscription overwrites the subscription columns. Returns false when no such account exists.
	ActivateSubscription(ctx context.Context, userId uuid.UUID, sub entity.Subscription) (bool, error)
	SetStripeCustomerId(ctx context.Context, userId uuid.UUID, customerId string) error
	TouchLastLogin(ctx context.Context, userId uuid.UUID, at time.Time) error
}

type ContractorProfileRepository interface {
	Create(ctx context.Context, profile *entity.ContractorProfile) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ContractorProfile, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// IncrementReferral adds one point and one signup in a single statement.
	IncrementReferral(ctx context.Context, profileId uuid.UUID) error
}

type AdminProfileRepository interface {
	Create(ctx context.Context, profile *entity.AdminProfile) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdminProfile, error)
}
