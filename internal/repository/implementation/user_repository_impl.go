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

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	modelUser := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Create(modelUser).Error; err != nil {
		return translateError(err)
	}
	*user = *r.mapper.ToEntity(modelUser)
	return nil
}

func (r *UserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var modelUser model.User
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelUser).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelUser), nil
}

func (r *UserRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var modelUsers []*model.User
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelUsers).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelUsers), nil
}

func (r *UserRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.User{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepositoryImpl) DecrementLettersRemaining(ctx context.Context, userId uuid.UUID) (int, bool, error) {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND letters_remaining > 0 AND subscription_status = ?", userId, string(entity.SubscriptionStatusPaid)).
		Updates(map[string]interface{}{
			"letters_remaining": gorm.Expr("letters_remaining - 1"),
		})
	if result.Error != nil {
		return 0, false, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, false, nil
	}

	var remaining int
	if err := r.db.WithContext(ctx).Model(&model.User{}).
		Select("letters_remaining").
		Where("id = ?", userId).
		Scan(&remaining).Error; err != nil {
		return 0, true, err
	}
	return remaining, true, nil
}

func (r *UserRepositoryImpl) ActivateSubscription(ctx context.Context, userId uuid.UUID, sub entity.Subscription) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userId).
		Updates(map[string]interface{}{
			"subscription_status": string(sub.Status),
			"plan_id":             sub.PlanId,
			"package_type":        sub.PackageType,
			"letters_remaining":   sub.LettersRemaining,
			"current_period_end":  sub.CurrentPeriodEnd,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *UserRepositoryImpl) SetStripeCustomerId(ctx context.Context, userId uuid.UUID, customerId string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userId).
		Update("stripe_customer_id", customerId).Error
}

func (r *UserRepositoryImpl) TouchLastLogin(ctx context.Context, userId uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userId).
		UpdateColumn("last_login", at).Error
}
