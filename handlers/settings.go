package handlers

import (
	"daily-journal/app"
	"daily-journal/models"

	"github.com/gofiber/fiber/v2"
)

func GetSetting(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("key")
		if err := a.Validator.Var("key", key, "settingkey"); err != nil {
			return badRequest(c, err.Error())
		}

		setting, err := a.Commands.GetSetting(c.UserContext(), key)
		if err != nil {
			return commandError(c, err)
		}

		return success(c, fiber.Map{"setting": setting})
	}
}

func SetSetting(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("key")
		if err := a.Validator.Var("key", key, "settingkey"); err != nil {
			return badRequest(c, err.Error())
		}

		var req models.SetSettingRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		setting, err := a.Commands.SetSetting(c.UserContext(), key, req.Value)
		if err != nil {
			return commandError(c, err)
		}

		return success(c, fiber.Map{"setting": setting})
	}
}
