// Package storage keeps a process-lifetime ledger of finished snake runs.
// The database is an in-memory SQLite instance (pure-Go modernc.org/sqlite
// driver); nothing is written to disk, so records vanish with the process.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store is the run ledger. It is safe for concurrent use; SSH sessions
// share one Store.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Run is one finished session.
type Run struct {
	ID       string // UUID, assigned by RecordRun when empty
	Variant  string // Game ID, e.g. "snake" or "snake_wrap"
	Player   string // "local" or the SSH user
	Score    int
	Length   int
	Moves    int
	Reason   string // "wall" or "self"
	Duration time.Duration
	EndedAt  time.Time
}

// Stats aggregates the runs of one variant.
type Stats struct {
	Variant    string
	Runs       int
	HighScore  int
	AvgScore   float64
	MaxLength  int
	LastPlayed time.Time
}

// ErrEmptyVariant is returned when a run has no variant.
var ErrEmptyVariant = errors.New("storage: run has no variant")

// Open creates an empty in-memory ledger.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every pooled connection to ":memory:" is a separate database, so the
	// pool is pinned to one connection that is never recycled.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			variant TEXT NOT NULL,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			reason TEXT NOT NULL,
			duration_ms INTEGER NOT NULL,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(variant, score DESC, ended_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database and drops all records.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun stores a finished run and returns its ID.
func (s *Store) RecordRun(r Run) (string, error) {
	if r.Variant == "" {
		return "", ErrEmptyVariant
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.EndedAt.IsZero() {
		r.EndedAt = s.now()
	}
	if r.Player == "" {
		r.Player = "local"
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, variant, player, score, length, moves, reason, duration_ms, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Variant, r.Player, r.Score, r.Length, r.Moves, r.Reason,
		r.Duration.Milliseconds(), r.EndedAt.UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot record run: %w", err)
	}
	return r.ID, nil
}

// TopRuns returns the best runs for a variant, highest score first.
// Ties go to the earlier run. A non-positive limit means 10.
func (s *Store) TopRuns(variant string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, variant, player, score, length, moves, reason, duration_ms, ended_at
		 FROM runs
		 WHERE variant = ?
		 ORDER BY score DESC, ended_at ASC
		 LIMIT ?`,
		variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r          Run
			durationMs int64
			endedAt    int64
		)
		if err := rows.Scan(&r.ID, &r.Variant, &r.Player, &r.Score, &r.Length, &r.Moves, &r.Reason, &durationMs, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.EndedAt = time.UnixMilli(endedAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// HighScore returns the best score recorded for a variant, or 0.
func (s *Store) HighScore(variant string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE variant = ?",
		variant,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats aggregates all runs of a variant. A variant with no runs yields
// zero values.
func (s *Store) Stats(variant string) (Stats, error) {
	stats := Stats{Variant: variant}

	var lastPlayed sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(MAX(length), 0), MAX(ended_at)
		 FROM runs WHERE variant = ?`,
		variant,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.MaxLength, &lastPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	if lastPlayed.Valid {
		stats.LastPlayed = time.UnixMilli(lastPlayed.Int64)
	}
	return stats, nil
}

// Clear deletes all runs of a variant.
func (s *Store) Clear(variant string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE variant = ?", variant); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
