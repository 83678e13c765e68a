package handlers

import (
	"daily-journal/app"

	"github.com/gofiber/fiber/v2"
)

func SystemInfo(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return success(c, fiber.Map{"system": a.Commands.SystemInfo()})
	}
}

// Health reports whether the database answers a ping
func Health(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.DB.PingContext(c.UserContext()); err != nil {
			a.Logger.Error("health check failed", "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return success(c, fiber.Map{"status": "ok"})
	}
}
