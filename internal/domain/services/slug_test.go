package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple", input: "Echo", expected: "echo"},
		{name: "spaces", input: "The Memory Library", expected: "the-memory-library"},
		{name: "punctuation collapsed", input: "Re:Zero -- Starting Life!", expected: "re-zero-starting-life"},
		{name: "leading and trailing trimmed", input: "  (Echo)  ", expected: "echo"},
		{name: "digits kept", input: "2001: A Space Odyssey", expected: "2001-a-space-odyssey"},
		{name: "only symbols", input: "???", expected: "item"},
		{name: "empty", input: "", expected: "item"},
		{name: "non ascii dropped", input: "Pokémon", expected: "pok-mon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
