package app

import (
	"daily-journal/commands"
	"daily-journal/database"
	"daily-journal/validator"
	"io"
	"log/slog"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	DB        *database.DB
	Commands  *commands.Commands
	Validator *validator.Validator
	Logger    *slog.Logger

	// handles held by services, released on Close
	closers []io.Closer
}

// New creates a new App instance with all dependencies
func New(db *database.DB, cmds *commands.Commands, logger *slog.Logger, closers ...io.Closer) *App {
	return &App{
		DB:        db,
		Commands:  cmds,
		Validator: validator.New(),
		Logger:    logger,
		closers:   closers,
	}
}

// Close releases every handle on the database. The pool is closed with the last one.
func (a *App) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
