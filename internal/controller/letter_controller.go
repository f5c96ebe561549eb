package controller

import (
	"legal-letter-be/internal/dto"
	"legal-letter-be/internal/pkg/serverutils"
	"legal-letter-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILetterController interface {
	RegisterRoutes(r fiber.Router, guards Guards)
	DocumentTypes(ctx *fiber.Ctx) error
	GenerateDocument(ctx *fiber.Ctx) error
	GenerateLetter(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	UpdateStage(ctx *fiber.Ctx) error
	Send(ctx *fiber.Ctx) error
}

type letterController struct {
	service service.ILetterService
}

func NewLetterController(service service.ILetterService) ILetterController {
	return &letterController{service: service}
}

func (c *letterController) RegisterRoutes(r fiber.Router, guards Guards) {
	guards = guards.withDefaults()

	d := r.Group("/documents")
	d.Get("/types", c.DocumentTypes)
	d.Post("/generate", guards.Auth, guards.GenerateLimit, c.GenerateDocument)

	h := r.Group("/letters")
	h.Use(guards.Auth)
	h.Post("/generate", guards.GenerateLimit, c.GenerateLetter)
	h.Post("/submit", c.Submit)
	h.Get("", c.List)
	h.Get("/:id", c.Show)
	h.Put("/:id/stage", c.UpdateStage)
	h.Post("/:id/send", c.Send)
}

func (c *letterController) DocumentTypes(ctx *fiber.Ctx) error {
	res := dto.DocumentTypesResponse{Categories: c.service.DocumentTypes()}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching document types", res))
}

func (c *letterController) GenerateDocument(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.GenerateDocumentRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.GenerateDocument(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Document generated successfully", res))
}

func (c *letterController) GenerateLetter(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.GenerateLetterRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.GenerateLetter(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Letter generated successfully", res))
}

func (c *letterController) Submit(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.SubmitLetterRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Submit(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Letter submitted successfully", res))
}

func (c *letterController) List(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.List(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching letters", res))
}

func (c *letterController) Show(ctx *fiber.Ctx) error {
	caller, err := currentCaller(ctx)
	if err != nil {
		return err
	}
	letterId := paramId(ctx)

	res, err := c.service.Get(ctx.UserContext(), caller, letterId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching letter", res))
}

func (c *letterController) UpdateStage(ctx *fiber.Ctx) error {
	caller, err := currentCaller(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateStageRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	letterId := paramId(ctx)

	res, err := c.service.UpdateStage(ctx.UserContext(), caller, letterId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Letter stage updated", res))
}

func (c *letterController) Send(ctx *fiber.Ctx) error {
	caller, err := currentCaller(ctx)
	if err != nil {
		return err
	}

	var req dto.SendLetterRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	letterId := paramId(ctx)

	res, err := c.service.Send(ctx.UserContext(), caller, letterId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Letter sent successfully", res))
}
