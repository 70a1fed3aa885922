package parsers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// JSONParser parses relaxed JSON catalog documents.
type JSONParser struct{}

// Parse strips comments and trailing commas, then decodes the first top-level key.
func (p *JSONParser) Parse(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading JSON: %w", err)
	}

	data := StripRelaxed(raw)
	if err := validateJSON(data); err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	tok, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return &Document{}, nil
	}
	if !decoder.More() {
		return &Document{}, nil
	}

	keyTok, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	key, _ := keyTok.(string)

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	return newDocument(key, value), nil
}

// validateJSON reports where strict parsing fails.
func validateJSON(data []byte) error {
	if json.Valid(data) {
		return nil
	}
	var v any
	err := json.Unmarshal(data, &v)
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Errorf("parsing JSON at offset %d: %w", syntaxErr.Offset, err)
	}
	if err == nil {
		err = errors.New("invalid JSON")
	}
	return fmt.Errorf("parsing JSON: %w", err)
}
