package ports

import (
	"context"

	"github.com/ersonp/catalog-seed/internal/domain/entities"
)

// ScriptRenderer turns a seed script plan into SQL text.
type ScriptRenderer interface {
	// Render returns the full script. Equal input must yield equal bytes.
	Render(script entities.SeedScript) ([]byte, error)
}

// ScriptExecutor runs a rendered script against a live database.
type ScriptExecutor interface {
	// Exec executes the script as a single batch.
	Exec(ctx context.Context, script string) error

	// Close releases the connection.
	Close() error
}
