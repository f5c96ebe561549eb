package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email              string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash       string    `gorm:"type:varchar(255);not null"`
	Name               string    `gorm:"type:varchar(255);not null"`
	Role               string    `gorm:"type:varchar(20);not null;default:'user';index"`
	SubscriptionStatus string    `gorm:"type:varchar(20);not null;default:'free'"`
	PlanId             *string   `gorm:"type:varchar(255)"`
	PackageType        *string   `gorm:"type:varchar(50)"`
	LettersRemaining   int       `gorm:"not null;default:0;check:letters_remaining >= 0"`
	CurrentPeriodEnd   *time.Time
	DiscountPercent    int        `gorm:"not null;default:0"`
	ReferredBy         *uuid.UUID `gorm:"type:uuid"`
	StripeCustomerId   *string    `gorm:"type:varchar(255)"`
	IsActive           bool       `gorm:"not null;default:true"`
	LastLogin          *time.Time
	CreatedAt          time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

type ContractorProfile struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Username     string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Points       int       `gorm:"not null;default:0"`
	TotalSignups int       `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (ContractorProfile) TableName() string {
	return "contractor_profiles"
}

type AdminProfile struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserId      uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null"`
	Permissions datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
}

func (AdminProfile) TableName() string {
	return "admin_profiles"
}
