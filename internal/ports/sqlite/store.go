// Package sqlite provides a SQLite-backed UserStore for local hosts.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"cardgame/internal/domain"
	"cardgame/internal/ports"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS users (
	name    TEXT PRIMARY KEY,
	version TEXT NOT NULL,
	record  TEXT NOT NULL
)`

// Store persists user records in a single SQLite table.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the schema.
// The path ":memory:" opens a private in-memory database.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := ":memory:"
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// A single connection keeps ":memory:" databases shared across calls.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) Load(ctx context.Context, name string) (*domain.User, string, error) {
	var version, record string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT version, record FROM users WHERE name = ?`, name).Scan(&version, &record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", ports.ErrRecordNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("select user: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal([]byte(record), &user); err != nil {
		return nil, "", fmt.Errorf("decode user %s: %w", name, err)
	}
	return &user, version, nil
}

func (s *Store) Create(ctx context.Context, user *domain.User) (bool, string, error) {
	record, err := json.Marshal(user)
	if err != nil {
		return false, "", fmt.Errorf("encode user %s: %w", user.Name, err)
	}

	version := uuid.NewString()
	res, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO users (name, version, record) VALUES (?, ?, ?) ON CONFLICT(name) DO NOTHING`,
		user.Name, version, string(record),
	)
	if err != nil {
		return false, "", fmt.Errorf("insert user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, "", fmt.Errorf("insert user: %w", err)
	}
	if n == 0 {
		return false, "", nil
	}
	return true, version, nil
}

func (s *Store) Save(ctx context.Context, user *domain.User, version string) (string, error) {
	record, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("encode user %s: %w", user.Name, err)
	}

	next := uuid.NewString()
	res, err := s.sqlDB.ExecContext(ctx,
		`UPDATE users SET version = ?, record = ? WHERE name = ? AND version = ?`,
		next, string(record), user.Name, version,
	)
	if err != nil {
		return "", fmt.Errorf("update user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("update user: %w", err)
	}
	if n == 0 {
		return "", ports.ErrVersionConflict
	}
	return next, nil
}

var _ ports.UserStore = (*Store)(nil)
