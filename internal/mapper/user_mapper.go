package mapper

import (
	"encoding/json"

	"legal-letter-be/internal/entity"
	"legal-letter-be/internal/model"

	"gorm.io/datatypes"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:           u.Id,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Role:         entity.UserRole(u.Role),
		Subscription: entity.Subscription{
			Status:           entity.SubscriptionStatus(u.SubscriptionStatus),
			PlanId:           u.PlanId,
			PackageType:      u.PackageType,
			LettersRemaining: u.LettersRemaining,
			CurrentPeriodEnd: u.CurrentPeriodEnd,
			DiscountPercent:  u.DiscountPercent,
			ReferredBy:       u.ReferredBy,
		},
		StripeCustomerId: u.StripeCustomerId,
		IsActive:         u.IsActive,
		LastLogin:        u.LastLogin,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:                 u.Id,
		Email:              u.Email,
		PasswordHash:       u.PasswordHash,
		Name:               u.Name,
		Role:               string(u.Role),
		SubscriptionStatus: string(u.Subscription.Status),
		PlanId:             u.Subscription.PlanId,
		PackageType:        u.Subscription.PackageType,
		LettersRemaining:   u.Subscription.LettersRemaining,
		CurrentPeriodEnd:   u.Subscription.CurrentPeriodEnd,
		DiscountPercent:    u.Subscription.DiscountPercent,
		ReferredBy:         u.Subscription.ReferredBy,
		StripeCustomerId:   u.StripeCustomerId,
		IsActive:           u.IsActive,
		LastLogin:          u.LastLogin,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

func (m *UserMapper) ContractorToEntity(p *model.ContractorProfile) *entity.ContractorProfile {
	if p == nil {
		return nil
	}
	return &entity.ContractorProfile{
		Id:           p.Id,
		UserId:       p.UserId,
		Username:     p.Username,
		Points:       p.Points,
		TotalSignups: p.TotalSignups,
		CreatedAt:    p.CreatedAt,
	}
}

func (m *UserMapper) ContractorToModel(p *entity.ContractorProfile) *model.ContractorProfile {
	if p == nil {
		return nil
	}
	return &model.ContractorProfile{
		Id:           p.Id,
		UserId:       p.UserId,
		Username:     p.Username,
		Points:       p.Points,
		TotalSignups: p.TotalSignups,
		CreatedAt:    p.CreatedAt,
	}
}

func (m *UserMapper) AdminToModel(p *entity.AdminProfile) *model.AdminProfile {
	if p == nil {
		return nil
	}
	perms, _ := json.Marshal(p.Permissions)
	return &model.AdminProfile{
		Id:          p.Id,
		UserId:      p.UserId,
		Permissions: datatypes.JSON(perms),
		CreatedAt:   p.CreatedAt,
	}
}

func (m *UserMapper) AdminToEntity(p *model.AdminProfile) *entity.AdminProfile {
	if p == nil {
		return nil
	}
	var perms []string
	_ = json.Unmarshal(p.Permissions, &perms)
	return &entity.AdminProfile{
		Id:          p.Id,
		UserId:      p.UserId,
		Permissions: perms,
		CreatedAt:   p.CreatedAt,
	}
}
