package database

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ErrDuplicate is returned when a write violates a UNIQUE constraint.
var ErrDuplicate = errors.New("unique constraint violation")

// ErrClosed is returned when cloning a handle that has already been released.
var ErrClosed = errors.New("database handle closed")

func isUniqueConstraintError(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
