package integration

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/catalog-seed/internal/application/handlers"
	"github.com/ersonp/catalog-seed/internal/domain/entities"
	"github.com/ersonp/catalog-seed/internal/infrastructure/config"
	"github.com/ersonp/catalog-seed/internal/infrastructure/parsers"
)

const showsCatalog = `{
  // demo shows
  "Shows": [
    {"title": "Echo", "creator": "Director: Ana Ruiz and Tom Lee", "network": "HBO",},
    {"title": "Echo", "country_of_origin": "US"},
    /* no title: dropped */
    {"year_of_release": 1999},
    {"title": "???", "year_of_release": "circa 2004"},
  ],
}`

func TestPipeline_ShowsCatalog(t *testing.T) {
	p := newPipeline(t)
	p.writeCatalog(t, "Shows.json", showsCatalog)

	result, sql := p.generate(t)

	assert.Equal(t, 3, result.MediaCount)
	assert.Equal(t, 1, result.Dropped)
	assert.Equal(t, []entities.MediaType{"show"}, result.Types)

	assert.Contains(t, sql, "VALUES ('show:echo:na', 'show', 'media.show', 'Echo', NULL, NULL, ARRAY['Ana Ruiz', 'Tom Lee']::VARCHAR(255)[], NULL, NULL, ")
	assert.Contains(t, sql, "'show:echo:na:2', 'show', 'media.show', 'Echo', NULL, 'US', ARRAY[]::VARCHAR(255)[]")
	assert.Contains(t, sql, "'show:item:2004', 'show', 'media.show', '???', '2004-01-01'")
	assert.Contains(t, sql, `'{"network":"HBO","source_category":"Shows","source_file":"Shows.json"}'::jsonb`)

	for _, u := range entities.DefaultSeedUsers {
		assert.Contains(t, sql, "'"+u.FirstName()+" Show Base List'")
	}
	assert.Contains(t, sql, "'Demo starter list for show'")
}

func TestPipeline_Deterministic(t *testing.T) {
	p := newPipeline(t)
	p.writeCatalog(t, "Shows.json", showsCatalog)
	p.writeCatalog(t, "Books.yaml", "Books:\n  - title: Dune\n    year_of_release: 1965\n    creator: 'Author: Frank Herbert'\n")

	first, firstSQL := p.generate(t)
	second, secondSQL := p.generate(t)

	assert.Equal(t, firstSQL, secondSQL)
	assert.Equal(t, first.Checksum, second.Checksum)
	assert.False(t, first.Unchanged)
	assert.True(t, second.Unchanged)

	runs, err := p.ledger.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second.RunID, runs[0].ID)
	assert.Equal(t, []entities.MediaType{"book", "show"}, runs[0].MediaTypes)
}

func TestPipeline_CategoryMapping(t *testing.T) {
	p := newPipeline(t)
	p.writeCatalog(t, "a.json", `{"Shows": [{"title": "Severance"}]}`)
	p.writeCatalog(t, "b.json", `{"ObscureThing": [{"title": "Widget", "year_of_release": 2020}]}`)

	result, sql := p.generate(t)

	assert.Equal(t, []entities.MediaType{"show", "obscurething"}, result.Types)
	assert.Contains(t, sql, "'obscurething:widget:2020', 'obscurething', 'media.obscurething', 'Widget', '2020-01-01'")
	assert.Contains(t, sql, "'Brandon Obscurething Base List'")
}

func TestPipeline_DescriptionTruncated(t *testing.T) {
	p := newPipeline(t)
	long := strings.Repeat("a", 300)
	p.writeCatalog(t, "Books.json", `{"Books": [{"title": "Long", "synopsis": "`+long+`"}]}`)

	_, sql := p.generate(t)

	assert.Contains(t, sql, "'"+strings.Repeat("a", 255)+"', ")
	assert.NotContains(t, sql, strings.Repeat("a", 256))
}

func TestPipeline_FormatsAgree(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "json",
			file:    "Manga.json",
			content: `{"Manga": [{"title": "Berserk", "year_of_release": 1989}, {"title": "Berserk", "year_of_release": 1989}]}`,
		},
		{
			name:    "yaml",
			file:    "Manga.yaml",
			content: "Manga:\n  - title: Berserk\n    year_of_release: 1989\n  - title: Berserk\n    year_of_release: 1989\n",
		},
		{
			name:    "toml",
			file:    "Manga.toml",
			content: "[[Manga]]\ntitle = \"Berserk\"\nyear_of_release = 1989\n\n[[Manga]]\ntitle = \"Berserk\"\nyear_of_release = 1989\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPipeline(t)
			p.writeCatalog(t, tt.file, tt.content)

			result, sql := p.generate(t)

			assert.Equal(t, 2, result.MediaCount)
			assert.Contains(t, sql, "'manga:berserk:1989', 'manga'")
			assert.Contains(t, sql, "'manga:berserk:1989:2', 'manga'")
		})
	}
}

func TestPipeline_YAMLNonStringKeys(t *testing.T) {
	p := newPipeline(t)
	p.writeCatalog(t, "Shows.yaml", "Shows:\n  - title: Echo\n    ratings: {1: 5}\n  - title: Dark\n    1999: remaster\n")

	result, sql := p.generate(t)

	assert.Equal(t, 2, result.MediaCount)
	assert.Contains(t, sql, `'{"ratings":{"1":5},"source_category":"Shows","source_file":"Shows.yaml"}'::jsonb`)
	assert.Contains(t, sql, `'{"1999":"remaster","source_category":"Shows","source_file":"Shows.yaml"}'::jsonb`)
}

func TestPipeline_SkipsUnshapedAndUnknownFiles(t *testing.T) {
	p := newPipeline(t)
	p.writeCatalog(t, "notes.txt", "not a catalog")
	p.writeCatalog(t, "list.json", `[{"title": "bare array"}]`)
	p.writeCatalog(t, "scalar.json", `{"Shows": "nope"}`)

	result, sql := p.generate(t)

	assert.Zero(t, result.MediaCount)
	assert.Empty(t, result.Types)
	assert.Contains(t, sql, "BEGIN;")
	assert.Contains(t, sql, "COMMIT;")
	assert.NotContains(t, sql, "Base List")
}

func TestPipeline_MalformedFileAborts(t *testing.T) {
	p := newPipeline(t)
	p.writeCatalog(t, "Shows.json", `{"Shows": [{"title": "Echo"}`)

	_, err := p.handler.Handle(context.Background(), handlers.GenerateOptions{
		DataDir:      p.dataDir,
		OutputPath:   p.output,
		PasswordHash: config.DefaultPasswordHash,
	})

	require.Error(t, err)
	var parseErr *parsers.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "Shows.json", parseErr.File)
	_, statErr := os.Stat(p.output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPipeline_MissingDataDir(t *testing.T) {
	p := newPipeline(t)
	require.NoError(t, os.RemoveAll(p.dataDir))

	_, err := p.handler.Handle(context.Background(), handlers.GenerateOptions{
		DataDir:      p.dataDir,
		OutputPath:   p.output,
		PasswordHash: config.DefaultPasswordHash,
	})

	require.Error(t, err)
}
