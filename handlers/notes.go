package handlers

import (
	"daily-journal/app"
	"daily-journal/models"

	"github.com/gofiber/fiber/v2"
)

// GetNote retrieves the note for a date. A missing note is {"note": null}.
func GetNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		note, err := a.Commands.GetNote(c.UserContext(), c.Params("date"))
		if err != nil {
			return commandError(c, err)
		}

		return success(c, fiber.Map{"note": note})
	}
}

// SaveNote creates or overwrites the note for a date
func SaveNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.SaveNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		note, err := a.Commands.SaveNote(c.UserContext(), c.Params("date"), req.Content)
		if err != nil {
			return commandError(c, err)
		}

		return success(c, fiber.Map{"note": note})
	}
}

// DeleteNote removes the note for a date; missing notes are not an error
func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Commands.DeleteNote(c.UserContext(), c.Params("date")); err != nil {
			return commandError(c, err)
		}

		return success(c, fiber.Map{
			"message": "Note deleted successfully",
		})
	}
}

// ListNotes returns metadata for all notes, newest date first
func ListNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.Commands.ListNotes(c.UserContext())
		if err != nil {
			return commandError(c, err)
		}

		return success(c, fiber.Map{"notes": notes})
	}
}

// SearchNotes returns metadata for notes containing q
func SearchNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.Commands.SearchNotes(c.UserContext(), c.Query("q"))
		if err != nil {
			return commandError(c, err)
		}

		return success(c, fiber.Map{
			"notes": notes,
			"query": c.Query("q"),
		})
	}
}

func NoteStats(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := a.Commands.NoteStats(c.UserContext(), c.Params("date"))
		if err != nil {
			return commandError(c, err)
		}

		return success(c, fiber.Map{"stats": stats})
	}
}
