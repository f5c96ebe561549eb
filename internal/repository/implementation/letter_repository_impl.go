package implementation

import (
	"context"
	"errors"

	"legal-letter-be/internal/entity"
	"legal-letter-be/internal/mapper"
	"legal-letter-be/internal/model"
	"legal-letter-be/internal/repository/contract"
	"legal-letter-be/internal/repository/specification"

	"gorm.io/gorm"
)

type LetterRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LetterMapper
}

func NewLetterRepository(db *gorm.DB) contract.LetterRepository {
	return &LetterRepositoryImpl{
		db:     db,
		mapper: mapper.NewLetterMapper(),
	}
}

func (r *LetterRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LetterRepositoryImpl) Create(ctx context.Context, letter *entity.Letter) error {
	m := r.mapper.ToModel(letter)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	*letter = *r.mapper.ToEntity(m)
	return nil
}

func (r *LetterRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Letter, error) {
	var m model.Letter
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LetterRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Letter, error) {
	var models []*model.Letter
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *LetterRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Letter{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *LetterRepositoryImpl) SaveTransition(ctx context.Context, letter *entity.Letter) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Letter{}).
		Where("id = ? AND status <> ? AND stage <= ?", letter.Id, string(entity.LetterStatusSent), int(letter.Stage)).
		Updates(map[string]interface{}{
			"stage":   int(letter.Stage),
			"status":  string(letter.Status),
			"sent_at": letter.SentAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

type EmailLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LetterMapper
}

func NewEmailLogRepository(db *gorm.DB) contract.EmailLogRepository {
	return &EmailLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewLetterMapper(),
	}
}

func (r *EmailLogRepositoryImpl) Create(ctx context.Context, log *entity.EmailLog) error {
	return r.db.WithContext(ctx).Create(r.mapper.EmailLogToModel(log)).Error
}
