// FILE: internal/controller/payment_controller.go
package controller

import (
	"legal-letter-be/internal/dto"
	"legal-letter-be/internal/entity"
	"legal-letter-be/internal/pkg/serverutils"
	"legal-letter-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const stripeSignatureHeader = "Stripe-Signature"

type IPaymentController interface {
	RegisterRoutes(r fiber.Router, guards Guards)
	CreateCheckout(ctx *fiber.Ctx) error
	StripeWebhook(ctx *fiber.Ctx) error
	WebhookLogs(ctx *fiber.Ctx) error
}

type paymentController struct {
	service service.IPaymentService
}

func NewPaymentController(service service.IPaymentService) IPaymentController {
	return &paymentController{service: service}
}

func (c *paymentController) RegisterRoutes(r fiber.Router, guards Guards) {
	r.Post("/subscription/create-checkout", guards.Auth, c.CreateCheckout)

	h := r.Group("/webhooks")
	h.Post("/stripe", c.StripeWebhook)
	h.Get("/logs", guards.Auth, serverutils.RequireRole("Admin access required", string(entity.UserRoleAdmin)), c.WebhookLogs)
}

func (c *paymentController) CreateCheckout(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateCheckoutRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.StartCheckout(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Checkout session created", res))
}

// StripeWebhook needs the raw body; the signature covers the exact bytes received.
func (c *paymentController) StripeWebhook(ctx *fiber.Ctx) error {
	payload := append([]byte(nil), ctx.Body()...)

	res, err := c.service.ReconcileWebhook(ctx.UserContext(), payload, ctx.Get(stripeSignatureHeader))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Webhook received", res))
}

func (c *paymentController) WebhookLogs(ctx *fiber.Ctx) error {
	res, err := c.service.ListWebhookLogs(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching webhook logs", res))
}
