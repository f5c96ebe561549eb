package model

import (
	"time"

	"github.com/google/uuid"
)

type Coupon struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ContractorId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Code            string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	DiscountPercent int       `gorm:"not null;check:discount_percent BETWEEN 1 AND 100"`
	MaxUses         int       `gorm:"not null;default:100"`
	CurrentUses     int       `gorm:"not null;default:0"`
	ExpiresAt       time.Time `gorm:"not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime;index"`
}

func (Coupon) TableName() string {
	return "coupons"
}
