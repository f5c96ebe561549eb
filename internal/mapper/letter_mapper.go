package mapper

import (
	"encoding/json"

	"legal-letter-be/internal/entity"
	"legal-letter-be/internal/model"

	"gorm.io/datatypes"
)

type LetterMapper struct{}

func NewLetterMapper() *LetterMapper {
	return &LetterMapper{}
}

func (m *LetterMapper) ToEntity(l *model.Letter) *entity.Letter {
	if l == nil {
		return nil
	}
	formData := map[string]interface{}{}
	if len(l.FormData) > 0 {
		_ = json.Unmarshal(l.FormData, &formData)
	}
	return &entity.Letter{
		Id:                    l.Id,
		UserId:                l.UserId,
		Title:                 l.Title,
		Content:               l.Content,
		LetterType:            l.LetterType,
		Category:              l.Category,
		FormData:              formData,
		UrgencyLevel:          l.UrgencyLevel,
		Status:                entity.LetterStatus(l.Status),
		Stage:                 entity.LetterStage(l.Stage),
		Origin:                entity.LetterOrigin(l.Origin),
		ProfessionalGenerated: l.ProfessionalGenerated,
		SentAt:                l.SentAt,
		CreatedAt:             l.CreatedAt,
		UpdatedAt:             l.UpdatedAt,
	}
}

func (m *LetterMapper) ToModel(l *entity.Letter) *model.Letter {
	if l == nil {
		return nil
	}
	formData := l.FormData
	if formData == nil {
		formData = map[string]interface{}{}
	}
	raw, _ := json.Marshal(formData)
	return &model.Letter{
		Id:                    l.Id,
		UserId:                l.UserId,
		Title:                 l.Title,
		Content:               l.Content,
		LetterType:            l.LetterType,
		Category:              l.Category,
		FormData:              datatypes.JSON(raw),
		UrgencyLevel:          l.UrgencyLevel,
		Status:                string(l.Status),
		Stage:                 int(l.Stage),
		Origin:                string(l.Origin),
		ProfessionalGenerated: l.ProfessionalGenerated,
		SentAt:                l.SentAt,
		CreatedAt:             l.CreatedAt,
		UpdatedAt:             l.UpdatedAt,
	}
}

func (m *LetterMapper) ToEntities(letters []*model.Letter) []*entity.Letter {
	entities := make([]*entity.Letter, len(letters))
	for i, l := range letters {
		entities[i] = m.ToEntity(l)
	}
	return entities
}

func (m *LetterMapper) EmailLogToModel(e *entity.EmailLog) *model.EmailLog {
	if e == nil {
		return nil
	}
	return &model.EmailLog{
		Id:             e.Id,
		LetterId:       e.LetterId,
		RecipientEmail: e.RecipientEmail,
		Status:         string(e.Status),
		Error:          e.Error,
		SentAt:         e.SentAt,
	}
}
