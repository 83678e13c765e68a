package handlers

import (
	"daily-journal/app"
	"daily-journal/models"

	"github.com/gofiber/fiber/v2"
)

func GetUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := a.Commands.GetUser(c.UserContext(), c.Params("id"))
		if err != nil {
			return commandError(c, err)
		}

		return success(c, fiber.Map{"user": user})
	}
}

func CreateUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateUserRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return badRequest(c, err.Error())
		}

		user, err := a.Commands.CreateUser(c.UserContext(), req.Email, req.Name)
		if err != nil {
			return commandError(c, err)
		}

		return created(c, fiber.Map{"user": user})
	}
}

// UpdateUser applies a partial update; absent fields are left unchanged
func UpdateUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateUserRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return badRequest(c, err.Error())
		}

		user, err := a.Commands.UpdateUser(c.UserContext(), c.Params("id"), req)
		if err != nil {
			return commandError(c, err)
		}

		return success(c, fiber.Map{"user": user})
	}
}
