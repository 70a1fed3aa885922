package integration

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/catalog-seed/internal/application/handlers"
	"github.com/ersonp/catalog-seed/internal/infrastructure/relationaldb/postgres"
)

// TestApply_Idempotent runs the generated script twice against a live database.
// It needs INTEGRATION_TEST=1 and DATABASE_URL pointing at a disposable database.
func TestApply_Idempotent(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") != "1" || os.Getenv("DATABASE_URL") == "" {
		t.Skip("set INTEGRATION_TEST=1 and DATABASE_URL to run")
	}
	ctx := context.Background()
	url := os.Getenv("DATABASE_URL")

	p := newPipeline(t)
	p.writeCatalog(t, "Shows.json", showsCatalog)
	p.writeCatalog(t, "Books.json", `{"Books": [{"title": "Dune", "year_of_release": 1965}]}`)
	_, _ = p.generate(t)

	executor, err := postgres.NewExecutor(ctx, url, nil)
	require.NoError(t, err)
	defer executor.Close()
	apply := handlers.NewApplyHandler(executor, nil)

	_, err = apply.Handle(ctx, p.output)
	require.NoError(t, err)
	first := countRows(t, url)

	_, err = apply.Handle(ctx, p.output)
	require.NoError(t, err)
	second := countRows(t, url)

	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first["media.media"], 4)
	assert.GreaterOrEqual(t, first["users.users"], 6)
}

func countRows(t *testing.T, url string) map[string]int {
	t.Helper()
	ctx := context.Background()
	conn, err := pgx.Connect(ctx, url)
	require.NoError(t, err)
	defer conn.Close(ctx)

	counts := make(map[string]int)
	for _, table := range []string{"media.media", "users.users", "interaction.user_lists", "interaction.list_items", "interaction.user_media"} {
		var n int
		require.NoError(t, conn.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n))
		counts[table] = n
	}
	return counts
}
