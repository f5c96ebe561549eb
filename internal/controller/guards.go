package controller

import (
	"legal-letter-be/internal/entity"
	"legal-letter-be/internal/pkg/apperror"
	"legal-letter-be/internal/pkg/serverutils"
	"legal-letter-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Guards are the route middlewares built by the server and shared by every controller.
type Guards struct {
	Auth          fiber.Handler
	AuthLimit     fiber.Handler
	GenerateLimit fiber.Handler
}

func passThrough(ctx *fiber.Ctx) error {
	return ctx.Next()
}

// withDefaults fills unset guards with a pass-through handler.
func (g Guards) withDefaults() Guards {
	if g.AuthLimit == nil {
		g.AuthLimit = passThrough
	}
	if g.GenerateLimit == nil {
		g.GenerateLimit = passThrough
	}
	return g
}

func currentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := ctx.Locals(serverutils.LocalUserID).(string)
	userId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.Auth("Invalid or expired token")
	}
	return userId, nil
}

func currentCaller(ctx *fiber.Ctx) (service.Caller, error) {
	userId, err := currentUserId(ctx)
	if err != nil {
		return service.Caller{}, err
	}
	role, _ := ctx.Locals(serverutils.LocalRole).(string)
	return service.Caller{UserId: userId, Role: entity.UserRole(role)}, nil
}

// paramId returns uuid.Nil for a malformed id, which no record matches.
func paramId(ctx *fiber.Ctx) uuid.UUID {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil
	}
	return id
}

func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return apperror.Validation("Invalid request body")
	}
	return serverutils.ValidateRequest(out)
}
