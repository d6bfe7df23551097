// Package storage persists match results in SQLite. It records
// outcomes only (winner, board size, move count, duration) and never
// individual moves. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/rkoschmitzky/Terminal-Tic-Tac-Toe/internal/board"
	"github.com/rkoschmitzky/Terminal-Tic-Tac-Toe/internal/match"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// ResultEntry is one persisted match outcome.
type ResultEntry struct {
	ID           int64
	Winner       board.Mark // board.Empty for a draw
	Axes         string     // comma-separated axis names, empty for a draw
	Size         int
	Moves        int
	DurationSecs int
	CreatedAt    time.Time
}

// Counts aggregates outcomes, optionally per board size.
type Counts struct {
	WinsA int
	WinsB int
	Draws int
}

// Games returns the total number of recorded matches.
func (c Counts) Games() int {
	return c.WinsA + c.WinsB + c.Draws
}

// Open creates or opens a SQLite database at the given path. It creates
// the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			winner INTEGER NOT NULL,
			axes TEXT NOT NULL DEFAULT '',
			size INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_size ON results(size);
		CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at DESC);
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

// SaveResult records one finished match. Returns the ID of the inserted
// record.
func (s *Store) SaveResult(r match.Result) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO results (winner, axes, size, moves, duration_secs) VALUES (?, ?, ?, ?, ?)",
		int(r.Winner), joinAxes(r.Axes), r.Size, r.Moves, int(r.Duration.Seconds()),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the most recent match results, newest first.
func (s *Store) RecentResults(limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, winner, axes, size, moves, duration_secs, created_at
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var winner int
		var createdAt any
		if err := rows.Scan(&e.ID, &winner, &e.Axes, &e.Size, &e.Moves, &e.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Winner = board.Mark(winner)
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Tally aggregates outcomes. A size of 0 counts matches on every board
// size.
func (s *Store) Tally(size int) (Counts, error) {
	query := `
		SELECT
			COUNT(CASE WHEN winner = ? THEN 1 END),
			COUNT(CASE WHEN winner = ? THEN 1 END),
			COUNT(CASE WHEN winner = ? THEN 1 END)
		FROM results`
	args := []any{int(board.PlayerA), int(board.PlayerB), int(board.Empty)}
	if size > 0 {
		query += " WHERE size = ?"
		args = append(args, size)
	}

	var c Counts
	if err := s.db.QueryRow(query, args...).Scan(&c.WinsA, &c.WinsB, &c.Draws); err != nil {
		return Counts{}, fmt.Errorf("storage: cannot tally results: %w", err)
	}
	return c, nil
}

// ClearResults deletes all recorded matches.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// joinAxes flattens the winning axes into a display string.
func joinAxes(axes []board.Axis) string {
	if len(axes) == 0 {
		return ""
	}
	names := make([]string, len(axes))
	for i, a := range axes {
		names[i] = a.String()
	}
	return strings.Join(names, ", ")
}

// parseTimestamp handles the driver returning either time.Time or a
// string for DATETIME columns.
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
