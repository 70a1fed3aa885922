// Package parsers reads catalog files into raw item records.
package parsers

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Document is a decoded category file. Category is empty when the file does
// not have the expected shape: a non-empty mapping whose first key holds a
// sequence.
type Document struct {
	Category string
	// Items holds the mapping elements of the sequence; other elements are dropped.
	Items []map[string]any
}

// Shaped reports whether the document contributes a category.
func (d *Document) Shaped() bool {
	return d != nil && d.Category != ""
}

// Parser defines the interface for parsing catalog documents.
type Parser interface {
	Parse(r io.Reader) (*Document, error)
}

// ParseError reports a catalog file that could not be decoded.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "yaml", "toml".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json", "jsonc":
		return &JSONParser{}
	case "yaml", "yml":
		return &YAMLParser{}
	case "toml":
		return &TOMLParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	return ForFormat(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// newDocument builds a document from a category key and its decoded value.
// Values that are not sequences yield an unshaped document.
func newDocument(category string, value any) *Document {
	var elems []any
	switch v := value.(type) {
	case []any:
		elems = v
	case []map[string]any:
		elems = make([]any, len(v))
		for i := range v {
			elems[i] = v[i]
		}
	default:
		return &Document{}
	}

	doc := &Document{Category: category, Items: make([]map[string]any, 0, len(elems))}
	for _, e := range elems {
		if item, ok := stringKeys(e).(map[string]any); ok {
			doc.Items = append(doc.Items, item)
		}
	}
	return doc
}

// stringKeys rewrites every nested map[any]any (YAML mappings with non-string
// keys) into map[string]any, formatting keys with fmt.Sprint.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = stringKeys(val)
		}
		return out
	case map[string]any:
		for k, val := range t {
			t[k] = stringKeys(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = stringKeys(val)
		}
		return t
	default:
		return v
	}
}
