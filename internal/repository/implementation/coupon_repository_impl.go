package implementation

import (
	"context"
	"errors"
	"time"

	"legal-letter-be/internal/entity"
	"legal-letter-be/internal/mapper"
	"legal-letter-be/internal/model"
	"legal-letter-be/internal/repository/contract"
	"legal-letter-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CouponRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CouponMapper
}

func NewCouponRepository(db *gorm.DB) contract.CouponRepository {
	return &CouponRepositoryImpl{
		db:     db,
		mapper: mapper.NewCouponMapper(),
	}
}

func (r *CouponRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CouponRepositoryImpl) Create(ctx context.Context, coupon *entity.Coupon) error {
	m := r.mapper.ToModel(coupon)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	*coupon = *r.mapper.ToEntity(m)
	return nil
}

func (r *CouponRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Coupon, error) {
	var m model.Coupon
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CouponRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Coupon, error) {
	var models []*model.Coupon
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CouponRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Coupon{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CouponRepositoryImpl) Redeem(ctx context.Context, couponId uuid.UUID, now time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Coupon{}).
		Where("id = ? AND current_uses < max_uses AND expires_at > ?", couponId, now).
		UpdateColumn("current_uses", gorm.Expr("current_uses + 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
