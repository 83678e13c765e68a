package setup

import (
	"daily-journal/app"
	"daily-journal/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	// Public routes
	fiberApp.Get("/health", handlers.Health(application))
	fiberApp.Get("/api/system", handlers.SystemInfo(application))

	api := fiberApp.Group("/api")

	// Notes are keyed by calendar date
	api.Get("/notes", handlers.ListNotes(application))
	api.Get("/notes/search", handlers.SearchNotes(application))
	api.Get("/notes/:date", handlers.GetNote(application))
	api.Post("/notes/:date", handlers.SaveNote(application))
	api.Put("/notes/:date", handlers.SaveNote(application))
	api.Delete("/notes/:date", handlers.DeleteNote(application))
	api.Get("/notes/:date/stats", handlers.NoteStats(application))

	api.Post("/users", handlers.CreateUser(application))
	api.Get("/users/:id", handlers.GetUser(application))
	api.Patch("/users/:id", handlers.UpdateUser(application))

	api.Get("/settings/:key", handlers.GetSetting(application))
	api.Put("/settings/:key", handlers.SetSetting(application))
}
