// FILE: internal/controller/auth_controller.go
package controller

import (
	"legal-letter-be/internal/dto"
	"legal-letter-be/internal/pkg/serverutils"
	"legal-letter-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router, guards Guards)
	Register(ctx *fiber.Ctx) error
	RegisterWithCoupon(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router, guards Guards) {
	guards = guards.withDefaults()

	h := r.Group("/auth")
	h.Post("/register", guards.AuthLimit, c.Register)
	h.Post("/register-with-coupon", guards.AuthLimit, c.RegisterWithCoupon)
	h.Post("/login", guards.AuthLimit, c.Login)
	h.Get("/me", guards.Auth, c.Me)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *authController) RegisterWithCoupon(ctx *fiber.Ctx) error {
	var req dto.RegisterWithCouponRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.RegisterWithCoupon(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Me(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching profile", res))
}
