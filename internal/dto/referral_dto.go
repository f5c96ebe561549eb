package dto

import (
	"time"

	"github.com/google/uuid"
)

type ValidateCouponRequest struct {
	CouponCode string `json:"coupon_code"`
}

type ValidateCouponResponse struct {
	Valid           bool   `json:"valid"`
	DiscountPercent int    `json:"discount_percent"`
	Message         string `json:"message"`
}

type CreateCouponRequest struct {
	DiscountPercent int `json:"discount_percent"`
	MaxUses         int `json:"max_uses" validate:"min=0,max=100000"`
	ExpiresInDays   int `json:"expires_in_days" validate:"min=0,max=3650"`
}

type CouponDTO struct {
	Id              uuid.UUID `json:"id"`
	ContractorId    uuid.UUID `json:"contractor_id"`
	Code            string    `json:"code"`
	DiscountPercent int       `json:"discount_percent"`
	MaxUses         int       `json:"max_uses"`
	CurrentUses     int       `json:"current_uses"`
	ExpiresAt       time.Time `json:"expires_at"`
	CreatedAt       time.Time `json:"created_at"`
}

type CouponResponse struct {
	Coupon CouponDTO `json:"coupon"`
}

type CouponsResponse struct {
	Coupons []CouponDTO `json:"coupons"`
}

type ContractorStatsResponse struct {
	Points          int    `json:"points"`
	TotalSignups    int    `json:"total_signups"`
	Username        string `json:"username"`
	DiscountPercent int    `json:"discount_percent"`
	TotalCoupons    int64  `json:"total_coupons"`
	ActiveCoupons   int64  `json:"active_coupons"`
}
