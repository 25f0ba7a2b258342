// Package storage provides a SQLite-based journal of finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// ErrRunNotFound is returned when no run has the requested ID.
var ErrRunNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// Run is one journaled run: the variant it was played on plus the
// inputs and outcome needed to replay it.
type Run struct {
	ID        string
	GameID    string
	Seed      int64
	TickRate  int
	Ticks     int
	Jumps     []int
	Score     int
	Reason    string
	Duration  time.Duration
	CreatedAt time.Time
}

// Log returns the run as the game emitted it.
func (r Run) Log() core.RunLog {
	return core.RunLog{
		Seed:     r.Seed,
		TickRate: r.TickRate,
		Ticks:    r.Ticks,
		Jumps:    r.Jumps,
		Score:    r.Score,
		Reason:   r.Reason,
		Duration: r.Duration,
	}
}

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
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			jumps TEXT NOT NULL,
			score INTEGER NOT NULL,
			reason TEXT NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_created ON runs(game_id, created_at DESC);
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

// SaveRun appends a finished run to the journal and returns the stored
// record with its generated ID.
func (s *Store) SaveRun(gameID string, run core.RunLog) (Run, error) {
	jumps := run.Jumps
	if jumps == nil {
		jumps = []int{}
	}
	encoded, err := json.Marshal(jumps)
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot encode jumps: %w", err)
	}

	r := Run{
		ID:        uuid.NewString(),
		GameID:    gameID,
		Seed:      run.Seed,
		TickRate:  run.TickRate,
		Ticks:     run.Ticks,
		Jumps:     jumps,
		Score:     run.Score,
		Reason:    run.Reason,
		Duration:  run.Duration.Round(time.Millisecond),
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	_, err = s.db.Exec(
		`INSERT INTO runs (id, game_id, seed, tick_rate, ticks, jumps, score, reason, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GameID, r.Seed, r.TickRate, r.Ticks, string(encoded),
		r.Score, r.Reason, r.Duration.Milliseconds(), r.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r, nil
}

const runColumns = `id, game_id, seed, tick_rate, ticks, jumps, score, reason, duration_ms, created_at`

// RecentRuns returns up to limit runs, newest first. An empty gameID
// lists runs of every variant.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	var (
		rows *sql.Rows
		err  error
	)
	if gameID == "" {
		rows, err = s.db.Query(
			`SELECT `+runColumns+` FROM runs
			 ORDER BY created_at DESC, rowid DESC
			 LIMIT ?`,
			limit,
		)
	} else {
		rows, err = s.db.Query(
			`SELECT `+runColumns+` FROM runs
			 WHERE game_id = ?
			 ORDER BY created_at DESC, rowid DESC
			 LIMIT ?`,
			gameID, limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID returns the run with the given ID, or ErrRunNotFound.
func (s *Store) RunByID(id string) (Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return r, err
}

// CountRuns returns the number of journaled runs for the game, or for
// every variant when gameID is empty.
func (s *Store) CountRuns(gameID string) (int, error) {
	var n int
	var err error
	if gameID == "" {
		err = s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n)
	} else {
		err = s.db.QueryRow("SELECT COUNT(*) FROM runs WHERE game_id = ?", gameID).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r          Run
		jumps      string
		durationMs int64
		createdMs  int64
	)
	err := sc.Scan(&r.ID, &r.GameID, &r.Seed, &r.TickRate, &r.Ticks, &jumps,
		&r.Score, &r.Reason, &durationMs, &createdMs)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, err
	}
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	if err := json.Unmarshal([]byte(jumps), &r.Jumps); err != nil {
		return Run{}, fmt.Errorf("storage: run %s: cannot decode jumps: %w", r.ID, err)
	}
	r.Duration = time.Duration(durationMs) * time.Millisecond
	r.CreatedAt = time.UnixMilli(createdMs).UTC()
	return r, nil
}
