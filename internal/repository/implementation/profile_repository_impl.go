package implementation

import (
	"context"
	"errors"

	"legal-letter-be/internal/entity"
	"legal-letter-be/internal/mapper"
	"legal-letter-be/internal/model"
	"legal-letter-be/internal/repository/contract"
	"legal-letter-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContractorProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewContractorProfileRepository(db *gorm.DB) contract.ContractorProfileRepository {
	return &ContractorProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *ContractorProfileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ContractorProfileRepositoryImpl) Create(ctx context.Context, profile *entity.ContractorProfile) error {
	m := r.mapper.ContractorToModel(profile)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	*profile = *r.mapper.ContractorToEntity(m)
	return nil
}

func (r *ContractorProfileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ContractorProfile, error) {
	var m model.ContractorProfile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ContractorToEntity(&m), nil
}

func (r *ContractorProfileRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ContractorProfile{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ContractorProfileRepositoryImpl) IncrementReferral(ctx context.Context, profileId uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.ContractorProfile{}).
		Where("id = ?", profileId).
		UpdateColumns(map[string]interface{}{
			"points":        gorm.Expr("points + 1"),
			"total_signups": gorm.Expr("total_signups + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type AdminProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewAdminProfileRepository(db *gorm.DB) contract.AdminProfileRepository {
	return &AdminProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *AdminProfileRepositoryImpl) Create(ctx context.Context, profile *entity.AdminProfile) error {
	m := r.mapper.AdminToModel(profile)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	*profile = *r.mapper.AdminToEntity(m)
	return nil
}

func (r *AdminProfileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdminProfile, error) {
	var m model.AdminProfile
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
	return r.mapper.AdminToEntity(&m), nil
}
