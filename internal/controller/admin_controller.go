// FILE: internal/controller/admin_controller.go
package controller

import (
	"legal-letter-be/internal/entity"
	"legal-letter-be/internal/pkg/serverutils"
	"legal-letter-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router, guards Guards)
	Users(ctx *fiber.Ctx) error
	Letters(ctx *fiber.Ctx) error
	WebhookLogs(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService   service.IAdminService
	paymentService service.IPaymentService
}

func NewAdminController(adminService service.IAdminService, paymentService service.IPaymentService) IAdminController {
	return &adminController{
		adminService:   adminService,
		paymentService: paymentService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router, guards Guards) {
	h := r.Group("/admin")
	h.Use(guards.Auth)
	h.Use(serverutils.RequireRole("Admin access required", string(entity.UserRoleAdmin)))
	h.Get("/users", c.Users)
	h.Get("/letters", c.Letters)
	h.Get("/webhook-logs", c.WebhookLogs)
	h.Get("/stats", c.Stats)
}

// Users accepts an optional ?role= filter.
func (c *adminController) Users(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListUsers(ctx.UserContext(), ctx.Query("role"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching users", res))
}

func (c *adminController) Letters(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListLetters(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching letters", res))
}

func (c *adminController) WebhookLogs(ctx *fiber.Ctx) error {
	res, err := c.paymentService.ListWebhookLogs(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching webhook logs", res))
}

func (c *adminController) Stats(ctx *fiber.Ctx) error {
	res, err := c.adminService.Stats(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching stats", res))
}
