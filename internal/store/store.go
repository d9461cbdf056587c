package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// ErrRunNotFound is returned by GetRun for an unknown id.
var ErrRunNotFound = errors.New("store: run not found")

// Run is one recorded sampling pass.
type Run struct {
	ID         string        `json:"id"`
	CreatedAt  time.Time     `json:"createdAt"`
	N          int           `json:"n"`
	L          int           `json:"l"`
	M          int           `json:"m"`
	Scale      float64       `json:"scale"`
	Threshold  float64       `json:"threshold"`
	Guesses    int           `json:"guesses"`
	Seed       int64         `json:"seed"`
	Workers    int           `json:"workers"`
	Accepted   int           `json:"accepted"`
	Positive   int           `json:"positive"`
	Negative   int           `json:"negative"`
	MeanRadius float64       `json:"meanRadius"`
	Elapsed    time.Duration `json:"elapsed"`
	Outputs    []string      `json:"outputs,omitempty"`
}

// Store wraps the SQLite run catalog.
type Store struct {
	db *sql.DB
}

// Open creates or opens the catalog at path and applies the schema.
// It is safe to call on an existing database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite has a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

// SaveRun inserts r. An empty ID gets a fresh UUIDv7 and a zero CreatedAt
// becomes now; both are written back into r.
func (s *Store) SaveRun(ctx context.Context, r *Run) error {
	if r.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generate run id: %w", err)
		}
		r.ID = id.String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	r.CreatedAt = r.CreatedAt.UTC()
	outputs, err := encodeOutputs(r.Outputs)
	if err != nil {
		return fmt.Errorf("encode outputs of run %s: %w", r.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, n, l, m, scale, threshold, guesses, seed, workers,
			accepted, positive, negative, mean_radius, elapsed_ms, outputs)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt.Format(time.RFC3339Nano), r.N, r.L, r.M, r.Scale, r.Threshold,
		r.Guesses, r.Seed, r.Workers, r.Accepted, r.Positive, r.Negative, r.MeanRadius,
		r.Elapsed.Milliseconds(), outputs)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", r.ID, err)
	}
	return nil
}

const runColumns = `id, created_at, n, l, m, scale, threshold, guesses, seed, workers,
	accepted, positive, negative, mean_radius, elapsed_ms, outputs`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*Run, error) {
	var (
		r         Run
		createdAt string
		elapsedMS int64
		outputs   string
	)
	err := sc.Scan(&r.ID, &createdAt, &r.N, &r.L, &r.M, &r.Scale, &r.Threshold, &r.Guesses,
		&r.Seed, &r.Workers, &r.Accepted, &r.Positive, &r.Negative, &r.MeanRadius, &elapsedMS, &outputs)
	if err != nil {
		return nil, err
	}
	if r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("run %s: bad created_at %q: %w", r.ID, createdAt, err)
	}
	r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	if r.Outputs, err = decodeOutputs(outputs); err != nil {
		return nil, fmt.Errorf("run %s: bad outputs %q: %w", r.ID, outputs, err)
	}
	return &r, nil
}

// Output paths are stored as a JSON array of strings.
func encodeOutputs(paths []string) (string, error) {
	if len(paths) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(paths)
	return string(b), err
}

// decodeOutputs returns nil for an empty list.
func decodeOutputs(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var paths []string
	if err := json.Unmarshal([]byte(s), &paths); err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, nil
	}
	return paths, nil
}

// GetRun returns the run with the given id or ErrRunNotFound.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+runColumns+" FROM runs WHERE id = ?", id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ListRuns returns up to limit runs, newest first. limit <= 0 means all.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]*Run, error) {
	q := "SELECT " + runColumns + " FROM runs ORDER BY id DESC"
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
