package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Letter struct {
	Id                    uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserId                uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title                 string         `gorm:"type:varchar(255);not null"`
	Content               string         `gorm:"type:text"`
	LetterType            string         `gorm:"type:varchar(100)"`
	Category              string         `gorm:"type:varchar(100)"`
	FormData              datatypes.JSON `gorm:"type:jsonb"`
	UrgencyLevel          string         `gorm:"type:varchar(50);not null;default:'standard'"`
	Status                string         `gorm:"type:varchar(20);not null"`
	Stage                 int            `gorm:"not null;check:stage BETWEEN 1 AND 4"`
	Origin                string         `gorm:"type:varchar(20);not null"`
	ProfessionalGenerated bool           `gorm:"not null;default:false"`
	SentAt                *time.Time
	CreatedAt             time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime"`
}

func (Letter) TableName() string {
	return "letters"
}

type EmailLog struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	LetterId       uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipientEmail string    `gorm:"type:varchar(255);not null"`
	Status         string    `gorm:"type:varchar(20);not null"`
	Error          *string   `gorm:"type:text"`
	SentAt         time.Time `gorm:"not null"`
}

func (EmailLog) TableName() string {
	return "email_logs"
}
