package sqlscript

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	assert.Equal(t, "'Echo'", Quote("Echo"))
	assert.Equal(t, "'Ender''s Game'", Quote("Ender's Game"))
	assert.Equal(t, "''", Quote(""))
}

func TestQuoteNullable(t *testing.T) {
	s := "JP"
	assert.Equal(t, "NULL", QuoteNullable(nil))
	assert.Equal(t, "'JP'", QuoteNullable(&s))
}

func TestJSONB(t *testing.T) {
	out, err := JSONB(map[string]any{
		"source_file": "Shows.json",
		"network":     "<HBO> & co",
		"seasons":     json.Number("3"),
		"quote":       "it's",
	})

	require.NoError(t, err)
	assert.Equal(t, `'{"network":"<HBO> & co","quote":"it''s","seasons":3,"source_file":"Shows.json"}'::jsonb`, out)
}

func TestJSONB_Error(t *testing.T) {
	_, err := JSONB(map[string]any{"bad": make(chan int)})
	require.Error(t, err)
}

func TestVarcharArray(t *testing.T) {
	assert.Equal(t, "ARRAY[]::VARCHAR(255)[]", VarcharArray(nil))
	assert.Equal(t, "ARRAY[]::VARCHAR(255)[]", VarcharArray([]string{}))
	assert.Equal(t, "ARRAY['Jane Doe', 'O''Neil']::VARCHAR(255)[]", VarcharArray([]string{"Jane Doe", "O'Neil"}))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		n        int
		expected string
	}{
		{name: "shorter", input: "abc", n: 5, expected: "abc"},
		{name: "exact", input: "abcde", n: 5, expected: "abcde"},
		{name: "longer", input: "abcdef", n: 5, expected: "abcde"},
		{name: "multibyte counted as characters", input: "日本語テキスト", n: 3, expected: "日本語"},
		{name: "zero", input: "abc", n: 0, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.n))
		})
	}

	long := strings.Repeat("x", 300)
	assert.Len(t, Truncate(long, MaxDescriptionLength), MaxDescriptionLength)
}
