// Package store persists a log of decomposition runs in SQLite so CLI
// users can revisit earlier breakdowns. The core engine is
// persistence-free; this log is opt-in caller-side plumbing.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hummbl-dev/hummbl-prototype"
	_ "github.com/mattn/go-sqlite3"
)

// Run represents a row in the runs table.
type Run struct {
	ID              int64   `json:"id"`
	Statement       string  `json:"statement"`
	ConstraintCount int     `json:"constraint_count"`
	ComponentCount  int     `json:"component_count"`
	Complexity      float64 `json:"complexity"`
	Confidence      float64 `json:"confidence"`
	WarningCount    int     `json:"warning_count"`
	ResultJSON      string  `json:"result,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

// Store wraps the SQLite run log.
type Store struct {
	db     *sql.DB
	closed bool
}

// New opens (creating if needed) the run log at dbPath.
func New(dbPath string) (*Store, error) {
	// Ensure parent directory exists
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	return &Store{db: db}, nil
}

// LogRun writes one decomposition run to the log and returns its ID.
func (s *Store) LogRun(ctx context.Context, r Run) (int64, error) {
	if s.closed {
		return 0, hummbl.ErrStoreClosed
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (statement, constraint_count, component_count, complexity, confidence, warning_count, result)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, r.Statement, r.ConstraintCount, r.ComponentCount, r.Complexity, r.Confidence, r.WarningCount, r.ResultJSON)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	return res.LastInsertId()
}

// ListRuns returns the most recent runs, newest first, without the full
// result payload.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if s.closed {
		return nil, hummbl.ErrStoreClosed
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, statement, constraint_count, component_count, complexity, confidence, warning_count, created_at
		FROM runs ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Statement, &r.ConstraintCount, &r.ComponentCount,
			&r.Complexity, &r.Confidence, &r.WarningCount, &r.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun returns one run including its full result payload.
func (s *Store) GetRun(ctx context.Context, id int64) (Run, error) {
	if s.closed {
		return Run{}, hummbl.ErrStoreClosed
	}
	var r Run
	var result sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT id, statement, constraint_count, component_count, complexity, confidence, warning_count, result, created_at
		FROM runs WHERE id = ?
	`, id).Scan(&r.ID, &r.Statement, &r.ConstraintCount, &r.ComponentCount,
		&r.Complexity, &r.Confidence, &r.WarningCount, &result, &r.CreatedAt)
	if err != nil {
		return Run{}, err
	}
	r.ResultJSON = result.String
	return r, nil
}

// Close shuts down the store.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
