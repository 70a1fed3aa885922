package parsers

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONParser_Parse(t *testing.T) {
	input := `// Shows catalog
	{
		"Shows": [
			{"title": "Echo", "year_of_release": 2019, /* inline */ "seasons": 2,},
			"not a mapping",
			{"title": "Echo"},
		],
	}`

	doc, err := (&JSONParser{}).Parse(strings.NewReader(input))

	require.NoError(t, err)
	assert.True(t, doc.Shaped())
	assert.Equal(t, "Shows", doc.Category)
	require.Len(t, doc.Items, 2)
	assert.Equal(t, map[string]any{
		"title":           "Echo",
		"year_of_release": json.Number("2019"),
		"seasons":         json.Number("2"),
	}, doc.Items[0])
}

func TestJSONParser_Parse_FirstKeyWins(t *testing.T) {
	input := `{"Movies": [{"title": "Heat"}], "Shows": [{"title": "Echo"}]}`

	doc, err := (&JSONParser{}).Parse(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, "Movies", doc.Category)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "Heat", doc.Items[0]["title"])
}

func TestJSONParser_Parse_Unshaped(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "top level array", input: `[{"title": "Echo"}]`},
		{name: "empty object", input: `{}`},
		{name: "value not a sequence", input: `{"Shows": {"title": "Echo"}}`},
		{name: "scalar", input: `42`},
		{name: "empty category key", input: `{"": [{"title": "Echo"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := (&JSONParser{}).Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.False(t, doc.Shaped())
		})
	}
}

func TestJSONParser_Parse_EmptySequenceIsShaped(t *testing.T) {
	doc, err := (&JSONParser{}).Parse(strings.NewReader(`{"Podcasts": []}`))

	require.NoError(t, err)
	assert.True(t, doc.Shaped())
	assert.Empty(t, doc.Items)
}

func TestJSONParser_Parse_InvalidInput(t *testing.T) {
	_, err := (&JSONParser{}).Parse(strings.NewReader(`{"Shows": [{"title": "Echo"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing JSON")
}

func TestYAMLParser_Parse(t *testing.T) {
	input := `# comment
Shows:
  - title: Echo
    year_of_release: 2019
    creator: "Director: Jane Doe"
  - plain string
Movies:
  - title: Heat
`

	doc, err := (&YAMLParser{}).Parse(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, "Shows", doc.Category)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "Echo", doc.Items[0]["title"])
	assert.Equal(t, 2019, doc.Items[0]["year_of_release"])
}

func TestYAMLParser_Parse_NonStringKeys(t *testing.T) {
	input := `Shows:
  - title: Echo
    ratings: {1: 5, 2: [{3: x}]}
  - title: Dark
    1999: remaster
`

	doc, err := (&YAMLParser{}).Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, doc.Items, 2)
	assert.Equal(t, map[string]any{
		"1": 5,
		"2": []any{map[string]any{"3": "x"}},
	}, doc.Items[0]["ratings"])
	assert.Equal(t, map[string]any{"title": "Dark", "1999": "remaster"}, doc.Items[1])

	_, err = json.Marshal(doc.Items)
	assert.NoError(t, err)
}

func TestYAMLParser_Parse_Unshaped(t *testing.T) {
	for _, input := range []string{"", "- a\n- b\n", "Shows: nope\n"} {
		doc, err := (&YAMLParser{}).Parse(strings.NewReader(input))
		require.NoError(t, err)
		assert.False(t, doc.Shaped(), "input %q", input)
	}
}

func TestYAMLParser_Parse_InvalidInput(t *testing.T) {
	_, err := (&YAMLParser{}).Parse(strings.NewReader("Shows: [unclosed\n"))
	require.Error(t, err)
}

func TestTOMLParser_Parse(t *testing.T) {
	input := `
[[Games]]
title = "Tetris"
year_of_release = 1984

[[Games]]
title = "Doom"
platforms = ["PC", "Mac"]
`

	doc, err := (&TOMLParser{}).Parse(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, "Games", doc.Category)
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "Tetris", doc.Items[0]["title"])
	assert.Equal(t, int64(1984), doc.Items[0]["year_of_release"])
	assert.Equal(t, []any{"PC", "Mac"}, doc.Items[1]["platforms"])
}

func TestTOMLParser_Parse_InvalidInput(t *testing.T) {
	_, err := (&TOMLParser{}).Parse(strings.NewReader("[[Games]\ntitle ="))
	require.Error(t, err)
}

func TestForFormat(t *testing.T) {
	assert.IsType(t, &JSONParser{}, ForFormat("json"))
	assert.IsType(t, &JSONParser{}, ForFormat("JSONC"))
	assert.IsType(t, &YAMLParser{}, ForFormat("yml"))
	assert.IsType(t, &TOMLParser{}, ForFormat("toml"))
	assert.Nil(t, ForFormat("csv"))
}

func TestForFile(t *testing.T) {
	assert.IsType(t, &JSONParser{}, ForFile("Shows.json"))
	assert.IsType(t, &JSONParser{}, ForFile("Shows.jsonc"))
	assert.IsType(t, &YAMLParser{}, ForFile("Shows.yaml"))
	assert.IsType(t, &TOMLParser{}, ForFile("Games.toml"))
	assert.Nil(t, ForFile("README.md"))
	assert.Nil(t, ForFile("noextension"))
}
