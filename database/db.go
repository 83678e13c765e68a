package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	_ "github.com/mattn/go-sqlite3"
)

// Options tunes the connection pool.
type Options struct {
	MaxOpenConns  int
	MaxIdleConns  int
	BusyTimeoutMS int
}

func DefaultOptions() Options {
	return Options{
		MaxOpenConns:  25,
		MaxIdleConns:  5,
		BusyTimeoutMS: 5000,
	}
}

// DB is the storage handle. Copies made with Clone share one pool; the pool is
// closed when the last copy is closed.
type DB struct {
	*sql.DB
	refs   *atomic.Int32
	closed atomic.Bool
}

// SQLite URI filenames end at '?' or '#' and decode %HH escapes.
var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

func New(dbPath string, opts Options) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL&_foreign_keys=on",
		uriPathEscaper.Replace(dbPath), opts.BusyTimeoutMS)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return Wrap(db, opts)
}

// Wrap adopts an already opened *sql.DB as a storage handle.
func Wrap(db *sql.DB, opts Options) (*DB, error) {
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	refs := &atomic.Int32{}
	refs.Store(1)
	return &DB{DB: db, refs: refs}, nil
}

// Open opens the database at dbPath and applies the schema.
func Open(ctx context.Context, dbPath string, opts Options) (*DB, error) {
	db, err := New(dbPath, opts)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (db *DB) Migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS notes (
			id TEXT PRIMARY KEY,
			date TEXT UNIQUE NOT NULL,
			content TEXT NOT NULL,
			word_count INTEGER NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_notes_date ON notes(date)`,
		`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)`,
	}

	for _, query := range queries {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// Pool exposes the shared connection pool.
func (db *DB) Pool() *sql.DB {
	return db.DB
}

// Clone returns another handle on the same pool. It fails with ErrClosed once
// this handle or the pool has been released.
func (db *DB) Clone() (*DB, error) {
	if db.closed.Load() {
		return nil, ErrClosed
	}
	for {
		n := db.refs.Load()
		if n <= 0 {
			return nil, ErrClosed
		}
		if db.refs.CompareAndSwap(n, n+1) {
			return &DB{DB: db.DB, refs: db.refs}, nil
		}
	}
}

// Close releases this handle. Closing a handle twice is a no-op.
func (db *DB) Close() error {
	if !db.closed.CompareAndSwap(false, true) {
		return nil
	}
	if db.refs.Add(-1) > 0 {
		return nil
	}
	return db.DB.Close()
}
