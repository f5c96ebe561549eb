package mapper

import (
	"legal-letter-be/internal/entity"
	"legal-letter-be/internal/model"
)

type CouponMapper struct{}

func NewCouponMapper() *CouponMapper {
	return &CouponMapper{}
}

func (m *CouponMapper) ToEntity(c *model.Coupon) *entity.Coupon {
	if c == nil {
		return nil
	}
	return &entity.Coupon{
		Id:              c.Id,
		ContractorId:    c.ContractorId,
		Code:            c.Code,
		DiscountPercent: c.DiscountPercent,
		MaxUses:         c.MaxUses,
		CurrentUses:     c.CurrentUses,
		ExpiresAt:       c.ExpiresAt,
		CreatedAt:       c.CreatedAt,
	}
}

func (m *CouponMapper) ToModel(c *entity.Coupon) *model.Coupon {
	if c == nil {
		return nil
	}
	return &model.Coupon{
		Id:              c.Id,
		ContractorId:    c.ContractorId,
		Code:            c.Code,
		DiscountPercent: c.DiscountPercent,
		MaxUses:         c.MaxUses,
		CurrentUses:     c.CurrentUses,
		ExpiresAt:       c.ExpiresAt,
		CreatedAt:       c.CreatedAt,
	}
}

func (m *CouponMapper) ToEntities(coupons []*model.Coupon) []*entity.Coupon {
	entities := make([]*entity.Coupon, len(coupons))
	for i, c := range coupons {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
