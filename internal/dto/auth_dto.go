// FILE: internal/dto/auth_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type RegisterWithCouponRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	CouponCode string `json:"coupon_code"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SubscriptionDTO struct {
	Status           string     `json:"status"`
	PlanId           *string    `json:"planId"`
	PackageType      *string    `json:"packageType"`
	LettersRemaining int        `json:"lettersRemaining"`
	CurrentPeriodEnd *time.Time `json:"currentPeriodEnd"`
	DiscountPercent  int        `json:"discount_percent,omitempty"`
	ReferredBy       *uuid.UUID `json:"referred_by,omitempty"`
}

// UserDTO is the public account view. It never carries the password hash.
type UserDTO struct {
	Id           uuid.UUID       `json:"id"`
	Email        string          `json:"email"`
	Name         string          `json:"name"`
	Role         string          `json:"role"`
	Subscription SubscriptionDTO `json:"subscription"`
	IsActive     bool            `json:"isActive"`
	LastLogin    *time.Time      `json:"lastLogin,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

type AuthResponse struct {
	User    UserDTO `json:"user"`
	Token   string  `json:"token"`
	Message string  `json:"message"`
}

type MeResponse struct {
	User UserDTO `json:"user"`
}
