package parsers

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// TOMLParser parses TOML catalog documents, where the category is an array
// of tables such as [[Shows]].
type TOMLParser struct{}

// Parse decodes the first top-level key in document order.
func (p *TOMLParser) Parse(r io.Reader) (*Document, error) {
	var data map[string]any
	md, err := toml.NewDecoder(r).Decode(&data)
	if err != nil {
		return nil, fmt.Errorf("parsing TOML: %w", err)
	}

	for _, key := range md.Keys() {
		if len(key) != 1 {
			continue
		}
		return newDocument(key[0], data[key[0]]), nil
	}
	return &Document{}, nil
}
