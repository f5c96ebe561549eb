package service

import (
	"legal-letter-be/internal/dto"
	"legal-letter-be/internal/entity"
)

func toUserDTO(u *entity.User) dto.UserDTO {
	return dto.UserDTO{
		Id:    u.Id,
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
		Subscription: dto.SubscriptionDTO{
			Status:           string(u.Subscription.Status),
			PlanId:           u.Subscription.PlanId,
			PackageType:      u.Subscription.PackageType,
			LettersRemaining: u.Subscription.LettersRemaining,
			CurrentPeriodEnd: u.Subscription.CurrentPeriodEnd,
			DiscountPercent:  u.Subscription.DiscountPercent,
			ReferredBy:       u.Subscription.ReferredBy,
		},
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

func toLetterDTO(l *entity.Letter) dto.LetterDTO {
	formData := l.FormData
	if formData == nil {
		formData = map[string]interface{}{}
	}
	return dto.LetterDTO{
		Id:                    l.Id,
		UserId:                l.UserId,
		Title:                 l.Title,
		Content:               l.Content,
		LetterType:            l.LetterType,
		Category:              l.Category,
		FormData:              formData,
		UrgencyLevel:          l.UrgencyLevel,
		Status:                string(l.Status),
		Stage:                 int(l.Stage),
		ProfessionalGenerated: l.ProfessionalGenerated,
		SentAt:                l.SentAt,
		CreatedAt:             l.CreatedAt,
		UpdatedAt:             l.UpdatedAt,
	}
}

func toLetterDTOs(letters []*entity.Letter) []dto.LetterDTO {
	res := make([]dto.LetterDTO, 0, len(letters))
	for _, l := range letters {
		res = append(res, toLetterDTO(l))
	}
	return res
}

func toCouponDTO(c *entity.Coupon) dto.CouponDTO {
	return dto.CouponDTO{
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

func toWebhookLogDTO(w *entity.WebhookLog) dto.WebhookLogDTO {
	return dto.WebhookLogDTO{
		Id:        w.Id,
		EventId:   w.EventId,
		EventType: w.EventType,
		Status:    string(w.Status),
		Error:     w.Error,
		Applied:   w.Applied,
		CreatedAt: w.CreatedAt,
	}
}
