package ports

import (
	"context"

	"github.com/ersonp/catalog-seed/internal/domain/entities"
)

// RunLedger persists the history of generation runs.
type RunLedger interface {
	// EnsureSchema creates the ledger schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the database connection.
	Close() error

	// SaveRun records a completed generation.
	SaveRun(ctx context.Context, run *entities.GenerationRun) error

	// ListRuns returns runs newest first.
	ListRuns(ctx context.Context, limit int) ([]entities.GenerationRun, error)

	// LatestRun returns the newest run for an output path, or nil if none exists.
	LatestRun(ctx context.Context, outputPath string) (*entities.GenerationRun, error)
}
