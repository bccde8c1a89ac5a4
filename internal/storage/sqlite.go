// Package storage provides SQLite-based persistence for quest boards.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/goal-bingo/internal/quest"
)

// Store manages the SQLite database connection for quest persistence.
// Every quest lives in its own namespace so several users can share a file.
type Store struct {
	db *sql.DB
}

// Entry is one persisted key of a namespace.
type Entry struct {
	Namespace string
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandHome(dbPath)
	if err != nil {
		return nil, err
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS quest_state (
			namespace TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (namespace, key)
		);
		CREATE INDEX IF NOT EXISTS idx_quest_state_updated ON quest_state(updated_at DESC);
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

// Get returns the value stored under namespace/key.
func (s *Store) Get(namespace, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM quest_state WHERE namespace = ? AND key = ?",
		namespace, key,
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %s/%s: %w", namespace, key, err)
	}
	return value, true, nil
}

// Set stores value under namespace/key, replacing any previous value.
func (s *Store) Set(namespace, key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO quest_state (namespace, key, value, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(namespace, key) DO UPDATE SET
		   value = excluded.value,
		   updated_at = excluded.updated_at`,
		namespace, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s/%s: %w", namespace, key, err)
	}
	return nil
}

// ClearNamespace deletes every key of a namespace.
func (s *Store) ClearNamespace(namespace string) error {
	_, err := s.db.Exec("DELETE FROM quest_state WHERE namespace = ?", namespace)
	if err != nil {
		return fmt.Errorf("storage: cannot clear %s: %w", namespace, err)
	}
	return nil
}

// Entries returns every key of a namespace ordered by key.
func (s *Store) Entries(namespace string) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT namespace, key, value, updated_at
		 FROM quest_state
		 WHERE namespace = ?
		 ORDER BY key`,
		namespace,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var updatedAt any
		if err := rows.Scan(&e.Namespace, &e.Key, &e.Value, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.UpdatedAt = parseTimestamp(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Namespaces lists every namespace holding state, most recently updated first.
func (s *Store) Namespaces() ([]string, error) {
	rows, err := s.db.Query(
		`SELECT namespace
		 FROM quest_state
		 GROUP BY namespace
		 ORDER BY MAX(updated_at) DESC, namespace`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query namespaces: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var ns string
		if err := rows.Scan(&ns); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, ns)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// Bucket returns a quest.Store view of one namespace.
func (s *Store) Bucket(namespace string) *Bucket {
	return &Bucket{store: s, namespace: namespace}
}

// Bucket is a namespaced view of a Store.
type Bucket struct {
	store     *Store
	namespace string
}

// Namespace returns the bucket's namespace.
func (b *Bucket) Namespace() string { return b.namespace }

// Get implements quest.Store.
func (b *Bucket) Get(key string) (string, bool, error) {
	return b.store.Get(b.namespace, key)
}

// Set implements quest.Store.
func (b *Bucket) Set(key, value string) error {
	return b.store.Set(b.namespace, key, value)
}

// Clear implements quest.Store.
func (b *Bucket) Clear() error {
	return b.store.ClearNamespace(b.namespace)
}

// Ensure Bucket implements quest.Store
var _ quest.Store = (*Bucket)(nil)

// parseTimestamp handles both time.Time and string datetimes from the driver.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
