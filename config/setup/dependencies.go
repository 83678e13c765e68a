package setup

import (
	"context"
	"daily-journal/app"
	"daily-journal/commands"
	"daily-journal/config"
	"daily-journal/database"
	"daily-journal/services"
	"fmt"
	"log/slog"
)

// InitDatabase opens the SQLite database and applies the schema
func InitDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*database.DB, error) {
	db, err := database.Open(ctx, cfg.Database.Path, database.Options{
		MaxOpenConns:  cfg.Database.MaxOpenConns,
		MaxIdleConns:  cfg.Database.MaxIdleConns,
		BusyTimeoutMS: cfg.Database.BusyTimeoutMS,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("database initialized", "path", cfg.Database.Path)
	return db, nil
}

// InitApp wires services and the command boundary on top of db. Each service
// gets its own repository, and with it its own reference on the pool.
func InitApp(db *database.DB, cfg *config.Config, logger *slog.Logger) (*app.App, error) {
	var repos []*database.Repository
	for range 3 {
		repo, err := database.NewRepository(db)
		if err != nil {
			for _, r := range repos {
				r.Close()
			}
			return nil, fmt.Errorf("failed to create repository: %w", err)
		}
		repos = append(repos, repo)
	}
	noteRepo, userRepo, settingsRepo := repos[0], repos[1], repos[2]

	cmds := commands.New(
		services.NewNoteService(noteRepo),
		services.NewUserService(userRepo),
		services.NewSettingsService(settingsRepo),
		cfg.Version,
		logger,
	)
	logger.Debug("application initialized with dependency injection")

	return app.New(db, cmds, logger, noteRepo, userRepo, settingsRepo), nil
}

// Shutdown releases all handles; the pool closes with the last one
func Shutdown(application *app.App, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if application == nil {
		return
	}
	if err := application.Close(); err != nil {
		logger.Error("failed to close database", "error", err)
		return
	}
	logger.Info("database closed")
}
