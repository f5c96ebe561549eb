package specification

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByCode struct {
	Code string
}

func (s ByCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("code = ?", strings.ToUpper(strings.TrimSpace(s.Code)))
}

type ByContractor struct {
	ContractorID uuid.UUID
}

func (s ByContractor) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("contractor_id = ?", s.ContractorID)
}

// RedeemableAt keeps coupons that are unexpired and below their use limit.
type RedeemableAt struct {
	Now time.Time
}

func (s RedeemableAt) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("expires_at > ? AND current_uses < max_uses", s.Now)
}
