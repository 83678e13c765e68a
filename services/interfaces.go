package services

import (
	"context"
	"daily-journal/models"
	"time"
)

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	GetNote(ctx context.Context, date string) (*models.Note, error)
	UpsertNote(ctx context.Context, note *models.Note) (*models.Note, error)
	DeleteNote(ctx context.Context, date string) error
	ListNotes(ctx context.Context) ([]models.NoteMetadata, error)
	SearchNotes(ctx context.Context, query string) ([]models.NoteMetadata, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) (bool, error)
}

// SettingsRepository defines the interface for key/value settings
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (*models.Setting, error)
	UpsertSetting(ctx context.Context, s *models.Setting) error
}

// Clock returns the current time. Tests replace it.
type Clock func() time.Time

// IDGenerator returns a fresh opaque identifier.
type IDGenerator func() string
