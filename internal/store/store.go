package store

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/funcbase/cli/internal/domain"
	"github.com/funcbase/cli/internal/store/migrations"
)

// Store is the sqlite-backed invocation log.
type Store struct {
	db *sql.DB
}

// New opens the database at path and runs any pending migrations.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := configureSQLite(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	// The log is per-user data.
	_ = os.Chmod(path, 0600)

	if err := migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// NewWithDB wraps an existing connection. Used by tests with in-memory
// databases.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

func configureSQLite(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("configure database: %w", err)
		}
	}
	return nil
}

// DB exposes the underlying connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the store connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Insert adds an invocation record.
func (s *Store) Insert(inv domain.Invocation) error {
	_, err := s.db.Exec(
		`INSERT INTO invocations (function, route, method, status, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		inv.Function, inv.Route, inv.Method, inv.Status, inv.DurationMs,
		inv.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert invocation: %w", err)
	}
	return nil
}

// List returns the most recent invocations, newest first.
func (s *Store) List(limit int) ([]domain.Invocation, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		`SELECT id, function, route, method, status, duration_ms, created_at
		 FROM invocations ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list invocations: %w", err)
	}
	defer rows.Close()

	var out []domain.Invocation
	for rows.Next() {
		var inv domain.Invocation
		var createdAt string
		if err := rows.Scan(&inv.ID, &inv.Function, &inv.Route, &inv.Method,
			&inv.Status, &inv.DurationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("scan invocation: %w", err)
		}
		if t, perr := time.Parse(time.RFC3339, createdAt); perr == nil {
			inv.CreatedAt = t
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

var _ domain.InvocationStore = (*Store)(nil)
