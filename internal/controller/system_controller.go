package controller

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const apiVersion = "2.0.0"

// HealthCheck reports whether the database answers.
type HealthCheck func(ctx context.Context) error

type ISystemController interface {
	RegisterRoutes(r fiber.Router)
	Root(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type systemController struct {
	check HealthCheck
}

func NewSystemController(check HealthCheck) ISystemController {
	return &systemController{check: check}
}

func (c *systemController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Root)
	r.Get("/health", c.Health)
}

func (c *systemController) Root(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"message":   "Talk To My Lawyer API is running!",
		"timestamp": time.Now().UTC(),
		"version":   apiVersion,
	})
}

func (c *systemController) Health(ctx *fiber.Ctx) error {
	pingCtx, cancel := context.WithTimeout(ctx.UserContext(), 3*time.Second)
	defer cancel()

	if err := c.check(pingCtx); err != nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     err.Error(),
			"timestamp": time.Now().UTC(),
		})
	}
	return ctx.JSON(fiber.Map{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC(),
	})
}
