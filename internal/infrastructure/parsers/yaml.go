package parsers

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLParser parses YAML catalog documents.
type YAMLParser struct{}

// Parse decodes the first key of the top-level mapping.
func (p *YAMLParser) Parse(r io.Reader) (*Document, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return &Document{}, nil
		}
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return &Document{}, nil
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode || len(mapping.Content) < 2 {
		return &Document{}, nil
	}

	var value any
	if err := mapping.Content[1].Decode(&value); err != nil {
		return nil, fmt.Errorf("decoding YAML category %q: %w", mapping.Content[0].Value, err)
	}

	return newDocument(mapping.Content[0].Value, value), nil
}
