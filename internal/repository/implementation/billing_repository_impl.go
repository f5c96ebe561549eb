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

type PaymentSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BillingMapper
}

func NewPaymentSessionRepository(db *gorm.DB) contract.PaymentSessionRepository {
	return &PaymentSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewBillingMapper(),
	}
}

func (r *PaymentSessionRepositoryImpl) Create(ctx context.Context, session *entity.PaymentSession) error {
	m := r.mapper.PaymentSessionToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	*session = *r.mapper.PaymentSessionToEntity(m)
	return nil
}

func (r *PaymentSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PaymentSession, error) {
	var m model.PaymentSession
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PaymentSessionToEntity(&m), nil
}

func (r *PaymentSessionRepositoryImpl) MarkCompleted(ctx context.Context, stripeSessionId string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.PaymentSession{}).
		Where("stripe_session_id = ?", stripeSessionId).
		Updates(map[string]interface{}{
			"status":       string(entity.PaymentSessionCompleted),
			"completed_at": at,
		}).Error
}

func (r *PaymentSessionRepositoryImpl) MarkFailedForUser(ctx context.Context, userId uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.PaymentSession{}).
		Where("user_id = ? AND status = ?", userId, string(entity.PaymentSessionCreated)).
		Update("status", string(entity.PaymentSessionFailed))
	return result.RowsAffected, result.Error
}

type WebhookLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BillingMapper
}

func NewWebhookLogRepository(db *gorm.DB) contract.WebhookLogRepository {
	return &WebhookLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewBillingMapper(),
	}
}

func (r *WebhookLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WebhookLogRepositoryImpl) Create(ctx context.Context, log *entity.WebhookLog) error {
	m := r.mapper.WebhookLogToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	*log = *r.mapper.WebhookLogToEntity(m)
	return nil
}

func (r *WebhookLogRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WebhookLog, error) {
	var m model.WebhookLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.WebhookLogToEntity(&m), nil
}

func (r *WebhookLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WebhookLog, error) {
	var models []*model.WebhookLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.WebhookLogsToEntities(models), nil
}
