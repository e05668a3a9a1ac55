package serverutils

import (
	"errors"

	"ai-chat-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// NewErrorHandler returns the app-level fiber error handler. No request is
// allowed to die without a response: unexpected errors are logged and the
// user gets a plain error page.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("server", "unhandled request error", map[string]interface{}{
				"path":   ctx.Path(),
				"method": ctx.Method(),
				"error":  err.Error(),
			})
		}

		return ctx.Status(code).SendString("Something went wrong. Please try again.")
	}
}
