package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ersonp/catalog-seed/internal/application/handlers"
	"github.com/ersonp/catalog-seed/internal/domain/entities"
	"github.com/ersonp/catalog-seed/internal/infrastructure/config"
	"github.com/ersonp/catalog-seed/internal/infrastructure/hashing"
	"github.com/ersonp/catalog-seed/internal/infrastructure/parsers"
	"github.com/ersonp/catalog-seed/internal/infrastructure/relationaldb/sqlite"
	"github.com/ersonp/catalog-seed/internal/infrastructure/sqlscript"
)

// pipeline runs generation end to end with the real loader, renderer and ledger.
type pipeline struct {
	dataDir string
	output  string
	ledger  *sqlite.Repository
	handler *handlers.GenerateHandler
}

func newPipeline(t *testing.T) *pipeline {
	t.Helper()
	root := t.TempDir()

	ledger, err := sqlite.NewRepository(config.HistoryConfig{Path: filepath.Join(root, ".seedgen", "history.db")})
	require.NoError(t, err)
	t.Cleanup(func() { ledger.Close() })
	require.NoError(t, ledger.EnsureSchema(context.Background()))

	dataDir := filepath.Join(root, "Data")
	require.NoError(t, os.MkdirAll(dataDir, 0755))

	return &pipeline{
		dataDir: dataDir,
		output:  filepath.Join(root, "sql", "full_demo_bootstrap.sql"),
		ledger:  ledger,
		handler: handlers.NewGenerateHandler(
			parsers.NewLoader(nil),
			sqlscript.NewRenderer(),
			hashing.NewBcryptHasher(0),
			ledger,
			nil,
		),
	}
}

func (p *pipeline) writeCatalog(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(p.dataDir, name), []byte(content), 0644))
}

func (p *pipeline) generate(t *testing.T) (*handlers.GenerateResult, string) {
	t.Helper()
	result, err := p.handler.Handle(context.Background(), handlers.GenerateOptions{
		DataDir:      p.dataDir,
		OutputPath:   p.output,
		PasswordHash: config.DefaultPasswordHash,
		Users:        entities.DefaultSeedUsers,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(p.output)
	require.NoError(t, err)
	return result, string(data)
}
