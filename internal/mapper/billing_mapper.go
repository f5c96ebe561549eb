package mapper

import (
	"legal-letter-be/internal/entity"
	"legal-letter-be/internal/model"

	"gorm.io/datatypes"
)

type BillingMapper struct{}

func NewBillingMapper() *BillingMapper {
	return &BillingMapper{}
}

func (m *BillingMapper) PaymentSessionToEntity(p *model.PaymentSession) *entity.PaymentSession {
	if p == nil {
		return nil
	}
	return &entity.PaymentSession{
		Id:              p.Id,
		UserId:          p.UserId,
		StripeSessionId: p.StripeSessionId,
		PackageType:     p.PackageType,
		AmountCents:     p.AmountCents,
		Status:          entity.PaymentSessionStatus(p.Status),
		CompletedAt:     p.CompletedAt,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (m *BillingMapper) PaymentSessionToModel(p *entity.PaymentSession) *model.PaymentSession {
	if p == nil {
		return nil
	}
	return &model.PaymentSession{
		Id:              p.Id,
		UserId:          p.UserId,
		StripeSessionId: p.StripeSessionId,
		PackageType:     p.PackageType,
		AmountCents:     p.AmountCents,
		Status:          string(p.Status),
		CompletedAt:     p.CompletedAt,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (m *BillingMapper) WebhookLogToEntity(w *model.WebhookLog) *entity.WebhookLog {
	if w == nil {
		return nil
	}
	return &entity.WebhookLog{
		Id:        w.Id,
		EventId:   w.EventId,
		EventType: w.EventType,
		Status:    entity.WebhookOutcome(w.Status),
		Error:     w.Error,
		EventData: []byte(w.EventData),
		Applied:   w.Applied,
		CreatedAt: w.CreatedAt,
	}
}

func (m *BillingMapper) WebhookLogToModel(w *entity.WebhookLog) *model.WebhookLog {
	if w == nil {
		return nil
	}
	var data datatypes.JSON
	if len(w.EventData) > 0 {
		data = datatypes.JSON(w.EventData)
	}
	return &model.WebhookLog{
		Id:        w.Id,
		EventId:   w.EventId,
		EventType: w.EventType,
		Status:    string(w.Status),
		Error:     w.Error,
		EventData: data,
		Applied:   w.Applied,
		CreatedAt: w.CreatedAt,
	}
}

func (m *BillingMapper) WebhookLogsToEntities(logs []*model.WebhookLog) []*entity.WebhookLog {
	entities := make([]*entity.WebhookLog, len(logs))
	for i, l := range logs {
		entities[i] = m.WebhookLogToEntity(l)
	}
	return entities
}
