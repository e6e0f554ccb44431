// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a log of past searches in a local SQLite
// database so the researcher can review what was queried and when.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/O957/sort-by-citations/pkg/types"
)

const dbFile = "history.db"

// Entry is one recorded search.
type Entry struct {
	ID             int64     `json:"id"`
	Mode           string    `json:"mode"`
	Subject        string    `json:"subject"`
	MinYear        int       `json:"min_year,omitempty"`
	MaxYear        int       `json:"max_year,omitempty"`
	MinCitations   int       `json:"min_citations,omitempty"`
	OpenAccessOnly bool      `json:"open_access_only"`
	ResultCount    int       `json:"result_count"`
	TopCitations   int       `json:"top_citations"`
	CreatedAt      time.Time `json:"created_at"`
}

// Store manages the search-history SQLite database.
type Store struct {
	db         *sql.DB
	maxEntries int
}

// NewStore opens or creates the history database at cfg.Dir/history.db,
// creating the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = 20
	}

	s := &Store{db: db, maxEntries: maxEntries}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	stmt := `CREATE TABLE IF NOT EXISTS searches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		mode TEXT NOT NULL,
		subject TEXT NOT NULL,
		min_year INTEGER NOT NULL DEFAULT 0,
		max_year INTEGER NOT NULL DEFAULT 0,
		min_citations INTEGER NOT NULL DEFAULT 0,
		open_access_only INTEGER NOT NULL DEFAULT 0,
		result_count INTEGER NOT NULL DEFAULT 0,
		top_citations INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record appends one search to the history.
func (s *Store) Record(ctx context.Context, e Entry) error {
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO searches
			(mode, subject, min_year, max_year, min_citations, open_access_only,
			 result_count, top_citations, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Mode, e.Subject, e.MinYear, e.MaxYear, e.MinCitations,
		boolToInt(e.OpenAccessOnly), e.ResultCount, e.TopCitations,
		createdAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording search: %w", err)
	}
	return nil
}

// Recent returns the most recent searches, newest first. A limit of 0 uses
// the configured default.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = s.maxEntries
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, mode, subject, min_year, max_year, min_citations,
			open_access_only, result_count, top_citations, created_at
		 FROM searches ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var openAccess int
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Mode, &e.Subject, &e.MinYear, &e.MaxYear,
			&e.MinCitations, &openAccess, &e.ResultCount, &e.TopCitations,
			&createdAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.OpenAccessOnly = openAccess != 0
		if t, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
