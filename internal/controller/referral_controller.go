package controller

import (
	"legal-letter-be/internal/dto"
	"legal-letter-be/internal/entity"
	"legal-letter-be/internal/pkg/apperror"
	"legal-letter-be/internal/pkg/serverutils"
	"legal-letter-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReferralController interface {
	RegisterRoutes(r fiber.Router, guards Guards)
	ValidateCoupon(ctx *fiber.Ctx) error
	CreateCoupon(ctx *fiber.Ctx) error
	ListCoupons(ctx *fiber.Ctx) error
	ContractorStats(ctx *fiber.Ctx) error
	RemoteEmployeeStats(ctx *fiber.Ctx) error
}

type referralController struct {
	service service.IReferralService
}

func NewReferralController(service service.IReferralService) IReferralController {
	return &referralController{service: service}
}

func (c *referralController) RegisterRoutes(r fiber.Router, guards Guards) {
	contractorOnly := serverutils.RequireRole("Contractor access required", string(entity.UserRoleContractor))

	h := r.Group("/coupons")
	h.Post("/validate", c.ValidateCoupon)
	h.Post("", guards.Auth, contractorOnly, c.CreateCoupon)
	h.Post("/create", guards.Auth, contractorOnly, c.CreateCoupon)
	h.Get("", guards.Auth, contractorOnly, c.ListCoupons)

	r.Get("/contractor/stats", guards.Auth, contractorOnly, c.ContractorStats)
	r.Get("/remote-employee/stats", guards.Auth,
		serverutils.RequireRole("Remote Employee access required", string(entity.UserRoleContractor)),
		c.RemoteEmployeeStats)
}

func (c *referralController) ValidateCoupon(ctx *fiber.Ctx) error {
	var req dto.ValidateCouponRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.ValidateCode(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *referralController) CreateCoupon(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateCouponRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.CreateCoupon(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Coupon created successfully", res))
}

func (c *referralController) ListCoupons(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListCoupons(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching coupons", res))
}

func (c *referralController) ContractorStats(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ContractorStats(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching stats", res))
}

// RemoteEmployeeStats serves the same stats under the legacy remote employee naming.
func (c *referralController) RemoteEmployeeStats(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ContractorStats(ctx.UserContext(), userId)
	if apperror.Is(err, apperror.KindNotFound) {
		return apperror.NotFound("Remote Employee profile not found")
	}
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching stats", res))
}
