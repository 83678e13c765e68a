package handlers

import (
	"daily-journal/commands"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(commands.FrontendError{
		Message: message,
		Code:    commands.CodeValidation,
	})
}

// commandError writes a FrontendError returned by the command boundary. The
// boundary has already logged the underlying cause.
func commandError(c *fiber.Ctx, err error) error {
	var fe *commands.FrontendError
	if !errors.As(err, &fe) {
		requestID, _ := c.Locals("requestID").(string)
		slog.Error("untranslated error reached handler",
			"request_id", requestID,
			"method", c.Method(),
			"path", c.Path(),
			"error", err,
		)
		fe = &commands.FrontendError{Message: "Internal server error"}
	}

	return c.Status(statusForCode(fe.Code)).JSON(fe)
}

func statusForCode(code string) int {
	switch code {
	case commands.CodeNotFound:
		return fiber.StatusNotFound
	case commands.CodeAlreadyExists:
		return fiber.StatusConflict
	case commands.CodeValidation:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
