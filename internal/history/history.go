// Package history provides SQLite-based storage of generated artifacts.
// Input form data is never persisted; only the resolved output text and how
// it was produced are kept, as an operational record of past generations.
package history

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store wraps a SQLite connection for artifact storage.
type Store struct {
	conn *sqlx.DB
}

// Artifact is one stored generation result.
type Artifact struct {
	ID        string    `db:"id" json:"id"`
	EventName string    `db:"event_name" json:"event_name"`
	Kind      string    `db:"kind" json:"kind"`       // description | expectations
	Outcome   string    `db:"outcome" json:"outcome"` // model | fallback
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS artifacts (
		id TEXT PRIMARY KEY,
		event_name TEXT NOT NULL,
		kind TEXT NOT NULL,
		outcome TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_artifacts_created ON artifacts(created_at);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Save inserts one artifact and returns its generated ID.
func (s *Store) Save(eventName, kind, outcome, content string) (string, error) {
	id := uuid.NewString()
	_, err := s.conn.Exec(
		`INSERT INTO artifacts (id, event_name, kind, outcome, content, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, eventName, kind, outcome, content, time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("insert artifact: %w", err)
	}
	return id, nil
}

// List returns the most recent artifacts, newest first.
func (s *Store) List(limit int) ([]Artifact, error) {
	if limit <= 0 {
		limit = 20
	}
	artifacts := []Artifact{}
	err := s.conn.Select(&artifacts,
		`SELECT id, event_name, kind, outcome, content, created_at
		 FROM artifacts ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	return artifacts, nil
}

// Record implements generator.Recorder. Storage failures are logged, never
// surfaced: a broken history database must not fail a generation request.
func (s *Store) Record(kind, outcome, eventName, content string) {
	if _, err := s.Save(eventName, kind, outcome, content); err != nil {
		slog.Error("failed to record artifact", "kind", kind, "error", err)
	}
}
