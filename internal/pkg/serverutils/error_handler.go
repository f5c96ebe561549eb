package serverutils

import (
	"errors"
	"time"

	"legal-letter-be/internal/pkg/apperror"
	"legal-letter-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders every error returned by a handler in the response
// envelope. Server side failures never leak their cause to the client.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"
		var details map[string]interface{}

		var appErr *apperror.AppError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &appErr):
			code = appErr.HTTPStatus()
			details = appErr.Details
			if code < fiber.StatusInternalServerError || appErr.Kind == apperror.KindExternalService {
				message = appErr.Message
			}
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			if code < fiber.StatusInternalServerError {
				message = fiberErr.Message
			}
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("HTTP", "Request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"status": code,
				"error":  err.Error(),
			})
		}

		body := fiber.Map{
			"success": false,
			"code":    code,
			"message": message,
		}
		for k, v := range details {
			body[k] = v
		}
		if code >= fiber.StatusInternalServerError {
			body["timestamp"] = time.Now().UTC().Format(time.RFC3339)
		}

		return ctx.Status(code).JSON(body)
	}
}
