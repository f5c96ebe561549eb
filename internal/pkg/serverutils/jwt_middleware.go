package serverutils

import (
	"strings"

	"legal-letter-be/internal/pkg/apperror"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
	LocalRole   = "role"
)

// JwtMiddleware verifies the bearer token and exposes its claims as locals.
func JwtMiddleware(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{
			JWTAlg: jwtware.HS256,
			Key:    []byte(secret),
		},
		SuccessHandler: func(ctx *fiber.Ctx) error {
			token, ok := ctx.Locals("user").(*jwt.Token)
			if !ok {
				return apperror.Auth("Invalid or expired token")
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return apperror.Auth("Invalid or expired token")
			}
			userId, _ := claims["userId"].(string)
			if userId == "" {
				return apperror.Auth("Invalid or expired token")
			}
			email, _ := claims["email"].(string)
			role, _ := claims["role"].(string)

			ctx.Locals(LocalUserID, userId)
			ctx.Locals(LocalEmail, email)
			ctx.Locals(LocalRole, role)
			return ctx.Next()
		},
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			if strings.TrimSpace(ctx.Get(fiber.HeaderAuthorization)) == "" {
				return apperror.Auth("No authorization token provided")
			}
			return apperror.Auth("Invalid or expired token")
		},
	})
}

// RequireRole rejects callers whose token role is not in roles.
func RequireRole(message string, roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, _ := ctx.Locals(LocalRole).(string)
		for _, r := range roles {
			if role == r {
				return ctx.Next()
			}
		}
		return apperror.Forbidden(message)
	}
}
