package database

import (
	"context"
	"daily-journal/models"
	"database/sql"
	"errors"
	"fmt"
)

// ==================== USER OPERATIONS ====================

// GetUser retrieves a user by ID. A missing user is (nil, nil).
func (r *Repository) GetUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, name, created_at, updated_at
		FROM users WHERE id = ?
	`, userID).Scan(
		&user.ID, &user.Email, &user.Name, &user.CreatedAt, &user.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user by id: %w", err)
	}

	return &user, nil
}

// CreateUser inserts a new user. A taken email yields ErrDuplicate.
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, user.ID, user.Email, user.Name, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("insert user: %w", ErrDuplicate)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// UpdateUser writes email, name and updated_at. It reports whether a row matched.
func (r *Repository) UpdateUser(ctx context.Context, user *models.User) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE users SET
			email = ?,
			name = ?,
			updated_at = ?
		WHERE id = ?
	`, user.Email, user.Name, user.UpdatedAt, user.ID)
	if err != nil {
		if isUniqueConstraintError(err) {
			return false, fmt.Errorf("update user: %w", ErrDuplicate)
		}
		return false, fmt.Errorf("update user: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update user: %w", err)
	}
	return n > 0, nil
}
