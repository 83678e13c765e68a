// Package commands is the boundary between the journal core and its callers.
// Every operation returns either a result or a *FrontendError.
package commands

import (
	"context"
	"daily-journal/models"
	"log/slog"
	"runtime"
)

type NoteService interface {
	Get(ctx context.Context, date string) (*models.Note, error)
	Save(ctx context.Context, date, content string) (*models.Note, error)
	Delete(ctx context.Context, date string) error
	List(ctx context.Context) ([]models.NoteMetadata, error)
	Search(ctx context.Context, query string) ([]models.NoteMetadata, error)
	Stats(ctx context.Context, date string) (models.TextStats, error)
}

type UserService interface {
	Get(ctx context.Context, userID string) (*models.User, error)
	Create(ctx context.Context, email, name string) (*models.User, error)
	Update(ctx context.Context, userID string, req models.UpdateUserRequest) (*models.User, error)
}

type SettingsService interface {
	Get(ctx context.Context, key string) (*models.Setting, error)
	Set(ctx context.Context, key, value string) (*models.Setting, error)
}

type Commands struct {
	notes    NoteService
	users    UserService
	settings SettingsService
	version  string
	logger   *slog.Logger
}

func New(notes NoteService, users UserService, settings SettingsService, version string, logger *slog.Logger) *Commands {
	if logger == nil {
		logger = slog.Default()
	}
	return &Commands{
		notes:    notes,
		users:    users,
		settings: settings,
		version:  version,
		logger:   logger,
	}
}

// ==================== NOTES ====================

func (c *Commands) SaveNote(ctx context.Context, date, content string) (*models.Note, error) {
	note, err := c.notes.Save(ctx, date, content)
	if err != nil {
		return nil, translate(c.logger, "save_note", err)
	}
	return note, nil
}

// GetNote returns nil without error when no note exists for date.
func (c *Commands) GetNote(ctx context.Context, date string) (*models.Note, error) {
	note, err := c.notes.Get(ctx, date)
	if err != nil {
		return nil, translate(c.logger, "get_note", err)
	}
	return note, nil
}

func (c *Commands) DeleteNote(ctx context.Context, date string) error {
	if err := c.notes.Delete(ctx, date); err != nil {
		return translate(c.logger, "delete_note", err)
	}
	return nil
}

func (c *Commands) ListNotes(ctx context.Context) ([]models.NoteMetadata, error) {
	notes, err := c.notes.List(ctx)
	if err != nil {
		return nil, translate(c.logger, "list_notes", err)
	}
	return notes, nil
}

func (c *Commands) SearchNotes(ctx context.Context, query string) ([]models.NoteMetadata, error) {
	notes, err := c.notes.Search(ctx, query)
	if err != nil {
		return nil, translate(c.logger, "search_notes", err)
	}
	return notes, nil
}

func (c *Commands) NoteStats(ctx context.Context, date string) (models.TextStats, error) {
	stats, err := c.notes.Stats(ctx, date)
	if err != nil {
		return models.TextStats{}, translate(c.logger, "note_stats", err)
	}
	return stats, nil
}

// ==================== USERS ====================

func (c *Commands) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := c.users.Get(ctx, userID)
	if err != nil {
		return nil, translate(c.logger, "get_user", err)
	}
	return user, nil
}

func (c *Commands) CreateUser(ctx context.Context, email, name string) (*models.User, error) {
	user, err := c.users.Create(ctx, email, name)
	if err != nil {
		return nil, translate(c.logger, "create_user", err)
	}
	return user, nil
}

func (c *Commands) UpdateUser(ctx context.Context, userID string, req models.UpdateUserRequest) (*models.User, error) {
	user, err := c.users.Update(ctx, userID, req)
	if err != nil {
		return nil, translate(c.logger, "update_user", err)
	}
	return user, nil
}

// ==================== SETTINGS & SYSTEM ====================

// GetSetting returns nil without error when key was never set.
func (c *Commands) GetSetting(ctx context.Context, key string) (*models.Setting, error) {
	s, err := c.settings.Get(ctx, key)
	if err != nil {
		return nil, translate(c.logger, "get_setting", err)
	}
	return s, nil
}

func (c *Commands) SetSetting(ctx context.Context, key, value string) (*models.Setting, error) {
	s, err := c.settings.Set(ctx, key, value)
	if err != nil {
		return nil, translate(c.logger, "set_setting", err)
	}
	return s, nil
}

func (c *Commands) SystemInfo() models.SystemInfo {
	return models.SystemInfo{
		Platform: runtime.GOOS,
		Version:  c.version,
		Arch:     runtime.GOARCH,
	}
}
