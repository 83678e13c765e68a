package database

import (
	"context"
	"daily-journal/models"
	"database/sql"
	"errors"
	"fmt"
)

// ==================== NOTE OPERATIONS ====================

const noteColumns = `id, date, content, word_count, created_at, updated_at`

// GetNote retrieves a note by date. A missing note is (nil, nil).
func (r *Repository) GetNote(ctx context.Context, date string) (*models.Note, error) {
	var note models.Note
	err := r.db.QueryRowContext(ctx, `
		SELECT `+noteColumns+`
		FROM notes
		WHERE date = ?
	`, date).Scan(
		&note.ID, &note.Date, &note.Content, &note.WordCount,
		&note.CreatedAt, &note.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query note by date: %w", err)
	}

	return &note, nil
}

// UpsertNote inserts note, or overwrites content, word_count and updated_at of the
// existing row for note.Date. The stored row is returned, so on conflict the
// existing id and created_at come back instead of the ones in note.
func (r *Repository) UpsertNote(ctx context.Context, note *models.Note) (*models.Note, error) {
	var saved models.Note
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO notes (id, date, content, word_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			content = excluded.content,
			word_count = excluded.word_count,
			updated_at = excluded.updated_at
		RETURNING `+noteColumns,
		note.ID, note.Date, note.Content, note.WordCount, note.CreatedAt, note.UpdatedAt,
	).Scan(
		&saved.ID, &saved.Date, &saved.Content, &saved.WordCount,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, fmt.Errorf("upsert note: %w", ErrDuplicate)
		}
		return nil, fmt.Errorf("upsert note: %w", err)
	}

	return &saved, nil
}

// DeleteNote removes the note for date. Deleting a missing note is not an error.
func (r *Repository) DeleteNote(ctx context.Context, date string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE date = ?`, date)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

// ListNotes returns metadata for every note, most recent date first.
func (r *Repository) ListNotes(ctx context.Context) ([]models.NoteMetadata, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+noteColumns+`
		FROM notes
		ORDER BY date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return scanMetadata(rows)
}

// SearchNotes returns metadata for notes whose content matches %query%.
// % and _ inside query keep their LIKE meaning.
func (r *Repository) SearchNotes(ctx context.Context, query string) ([]models.NoteMetadata, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+noteColumns+`
		FROM notes
		WHERE content LIKE ?
		ORDER BY date DESC
	`, "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("search notes: %w", err)
	}
	return scanMetadata(rows)
}

func scanMetadata(rows *sql.Rows) ([]models.NoteMetadata, error) {
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	notes := make([]models.NoteMetadata, 0)
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(
			&note.ID, &note.Date, &note.Content, &note.WordCount,
			&note.CreatedAt, &note.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		// Only the preview leaves this package
		notes = append(notes, note.Metadata())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return notes, nil
}
