package sqlscript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// MaxDescriptionLength is the number of characters kept from a description.
const MaxDescriptionLength = 255

// Quote renders s as a single-quoted SQL string literal.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// QuoteNullable renders nil as NULL and anything else via Quote.
func QuoteNullable(s *string) string {
	if s == nil {
		return "NULL"
	}
	return Quote(*s)
}

// JSONB renders v as a jsonb literal. Map keys are sorted and HTML characters
// are left unescaped so the text is stable across runs.
func JSONB(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encoding jsonb value: %w", err)
	}
	return Quote(strings.TrimSuffix(buf.String(), "\n")) + "::jsonb", nil
}

// VarcharArray renders values as a VARCHAR(255)[] literal.
func VarcharArray(values []string) string {
	if len(values) == 0 {
		return "ARRAY[]::VARCHAR(255)[]"
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = Quote(v)
	}
	return "ARRAY[" + strings.Join(quoted, ", ") + "]::VARCHAR(255)[]"
}

// Truncate keeps at most n characters of s.
func Truncate(s string, n int) string {
	if n < 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
