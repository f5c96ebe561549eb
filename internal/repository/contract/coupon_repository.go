package contract

import (
	"context"
	"time"

	"legal-letter-be/internal/entity"
	"legal-letter-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CouponRepository interface {
	Create(ctx context.Context, coupon *entity.Coupon) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Coupon, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Coupon, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Redeem increments current_uses if the coupon is still redeemable at now.
	Redeem(ctx context.Context, couponId uuid.UUID, now time.Time) (bool, error)
}
