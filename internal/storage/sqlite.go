// Package storage provides SQLite-based persistence for user settings.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Game state is never stored here; only preferences that should survive
// sessions, such as the ghost-piece display style.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/blockfall/internal/config"
)

// Store manages the SQLite database connection for settings persistence.
type Store struct {
	db *sql.DB
}

// Setting keys known to the platform.
const (
	KeyShadowStyle = "shadow_style"
)

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get retrieves a setting value. The second return is false when the key
// has never been set.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM settings WHERE key = ?",
		key,
	).Scan(&value)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot query setting %q: %w", key, err)
	}

	return value, true, nil
}

// Set stores a setting value, replacing any previous one.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save setting %q: %w", key, err)
	}
	return nil
}

// Delete removes a setting, reverting it to its default.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM settings WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("storage: cannot delete setting %q: %w", key, err)
	}
	return nil
}

// All returns every stored setting, keyed by name.
func (s *Store) All() (map[string]string, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		settings[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return settings, nil
}

// ShadowStyle returns the stored ghost-piece style, falling back to the
// given default when unset or invalid.
func (s *Store) ShadowStyle(fallback config.ShadowStyle) config.ShadowStyle {
	value, ok, err := s.Get(KeyShadowStyle)
	if err != nil || !ok {
		return fallback
	}
	style, err := config.ParseShadowStyle(value)
	if err != nil {
		return fallback
	}
	return style
}

// SetShadowStyle persists the ghost-piece style.
func (s *Store) SetShadowStyle(style config.ShadowStyle) error {
	return s.Set(KeyShadowStyle, string(style))
}
