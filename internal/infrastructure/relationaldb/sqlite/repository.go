// Package sqlite provides a SQLite implementation of the RunLedger interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ersonp/catalog-seed/internal/domain/entities"
	"github.com/ersonp/catalog-seed/internal/infrastructure/config"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const memoryPath = ":memory:"

// generateUUID returns a new UUID string.
func generateUUID() string {
	return uuid.New().String()
}

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.RunLedger using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite ledger, creating the parent directory if needed.
func NewRepository(cfg config.HistoryConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	if cfg.Path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Every pooled connection to :memory: would see its own database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- One row per successful script generation
	CREATE TABLE IF NOT EXISTS generation_runs (
		id TEXT PRIMARY KEY,
		output_path TEXT NOT NULL,
		checksum TEXT NOT NULL,
		media_count INTEGER NOT NULL,
		media_types TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_generation_runs_output ON generation_runs(output_path);
	CREATE INDEX IF NOT EXISTS idx_generation_runs_created ON generation_runs(created_at);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// SaveRun records a generation run, filling in ID and CreatedAt when unset.
func (r *Repository) SaveRun(ctx context.Context, run *entities.GenerationRun) error {
	if run.ID == "" {
		run.ID = generateUUID()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = timeNow().UTC()
	}

	types := run.MediaTypes
	if types == nil {
		types = []entities.MediaType{}
	}
	typesJSON, err := json.Marshal(types)
	if err != nil {
		return fmt.Errorf("marshaling media types: %w", err)
	}

	query := `
		INSERT INTO generation_runs (id, output_path, checksum, media_count, media_types, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		run.ID, run.OutputPath, run.Checksum, run.MediaCount, string(typesJSON), run.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// ListRuns returns up to limit runs, newest first. A non-positive limit returns all runs.
func (r *Repository) ListRuns(ctx context.Context, limit int) ([]entities.GenerationRun, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `
		SELECT id, output_path, checksum, media_count, media_types, created_at
		FROM generation_runs
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`
	return r.queryRuns(ctx, query, limit)
}

// LatestRun returns the newest run for outputPath, or nil if there is none.
func (r *Repository) LatestRun(ctx context.Context, outputPath string) (*entities.GenerationRun, error) {
	query := `
		SELECT id, output_path, checksum, media_count, media_types, created_at
		FROM generation_runs
		WHERE output_path = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`
	runs, err := r.queryRuns(ctx, query, outputPath)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// CountRuns returns the number of recorded runs.
func (r *Repository) CountRuns(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM generation_runs`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting runs: %w", err)
	}
	return count, nil
}

// queryRuns is a helper to execute generation run queries.
func (r *Repository) queryRuns(ctx context.Context, query string, args ...any) ([]entities.GenerationRun, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []entities.GenerationRun
	for rows.Next() {
		var run entities.GenerationRun
		var typesJSON string
		var createdAt int64

		if err := rows.Scan(
			&run.ID,
			&run.OutputPath,
			&run.Checksum,
			&run.MediaCount,
			&typesJSON,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}

		if err := json.Unmarshal([]byte(typesJSON), &run.MediaTypes); err != nil {
			return nil, fmt.Errorf("unmarshaling media types: %w", err)
		}
		run.CreatedAt = time.Unix(0, createdAt).UTC()

		runs = append(runs, run)
	}
	return runs, rows.Err()
}
