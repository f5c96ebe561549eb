package dto

import (
	"time"

	"github.com/google/uuid"
)

type GenerateDocumentRequest struct {
	Title        string                 `json:"title" validate:"max=255"`
	DocumentType string                 `json:"documentType"`
	Category     string                 `json:"category"`
	FormData     map[string]interface{} `json:"formData"`
	UrgencyLevel string                 `json:"urgencyLevel"`
}

type GenerateLetterRequest struct {
	Title        string                 `json:"title" validate:"max=255"`
	Prompt       string                 `json:"prompt"`
	LetterType   string                 `json:"letterType"`
	FormData     map[string]interface{} `json:"formData"`
	UrgencyLevel string                 `json:"urgencyLevel"`
}

type SubmitLetterRequest struct {
	Title        string                 `json:"title" validate:"max=255"`
	LetterType   string                 `json:"letterType"`
	FormData     map[string]interface{} `json:"formData"`
	UrgencyLevel string                 `json:"urgencyLevel"`
}

type UpdateStageRequest struct {
	Stage int `json:"stage"`
}

type SendLetterRequest struct {
	RecipientEmail string `json:"recipientEmail"`
}

type LetterDTO struct {
	Id                    uuid.UUID              `json:"id"`
	UserId                uuid.UUID              `json:"user_id"`
	Title                 string                 `json:"title"`
	Content               string                 `json:"content"`
	LetterType            string                 `json:"letter_type"`
	Category              string                 `json:"category,omitempty"`
	FormData              map[string]interface{} `json:"form_data"`
	UrgencyLevel          string                 `json:"urgency_level"`
	Status                string                 `json:"status"`
	Stage                 int                    `json:"stage"`
	ProfessionalGenerated bool                   `json:"professional_generated"`
	SentAt                *time.Time             `json:"sent_at,omitempty"`
	CreatedAt             time.Time              `json:"created_at"`
	UpdatedAt             time.Time              `json:"updated_at"`
}

type GenerateLetterResponse struct {
	Letter           LetterDTO `json:"letter"`
	LettersRemaining int       `json:"letters_remaining"`
}

type GenerateDocumentResponse struct {
	Document         LetterDTO `json:"document"`
	LettersRemaining int       `json:"letters_remaining"`
}

type LetterResponse struct {
	Letter LetterDTO `json:"letter"`
}

type LettersResponse struct {
	Letters []LetterDTO `json:"letters"`
}
