package database

import (
	"context"
	"daily-journal/models"
	"database/sql"
	"errors"
	"fmt"
)

// ==================== SETTINGS ====================

func (r *Repository) GetSetting(ctx context.Context, key string) (*models.Setting, error) {
	var s models.Setting
	err := r.db.QueryRowContext(ctx, `
		SELECT key, value, updated_at FROM settings WHERE key = ?
	`, key).Scan(&s.Key, &s.Value, &s.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query setting: %w", err)
	}
	return &s, nil
}

func (r *Repository) UpsertSetting(ctx context.Context, s *models.Setting) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, s.Key, s.Value, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert setting: %w", err)
	}
	return nil
}

// Ping checks that the pool can reach the database file.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
