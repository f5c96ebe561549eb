package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReferralDiscountPercent is granted by a contractor username code.
const ReferralDiscountPercent = 20

type Coupon struct {
	Id              uuid.UUID
	ContractorId    uuid.UUID
	Code            string
	DiscountPercent int
	MaxUses         int
	CurrentUses     int
	ExpiresAt       time.Time
	CreatedAt       time.Time
}

// Redeemable reports whether the coupon is unexpired and has uses left.
func (c *Coupon) Redeemable(now time.Time) bool {
	return now.Before(c.ExpiresAt) && c.CurrentUses < c.MaxUses
}

// Referral is a resolved discount code.
type Referral struct {
	ContractorUserId uuid.UUID
	DiscountPercent  int
	CouponId         *uuid.UUID
}
