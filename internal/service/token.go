package service

import (
	"time"

	"legal-letter-be/internal/entity"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer signs the bearer tokens checked by serverutils.JwtMiddleware.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

func (t *TokenIssuer) Issue(user *entity.User, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"userId": user.Id.String(),
		"email":  user.Email,
		"role":   string(user.Role),
		"iat":    now.Unix(),
		"exp":    now.Add(t.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}
