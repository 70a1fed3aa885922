package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ersonp/catalog-seed/internal/domain/entities"
)

func TestMediaTypeFor(t *testing.T) {
	tests := []struct {
		category string
		expected entities.MediaType
	}{
		{category: "Shows", expected: "show"},
		{category: "LightNovels", expected: "light_novel"},
		{category: "Webseries", expected: "web_series"},
		{category: "ObscureThing", expected: "obscurething"},
		{category: "Board Games", expected: "board-games"},
		{category: "shows", expected: "shows"},
		{category: "!!!", expected: "item"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.expected, MediaTypeFor(tt.category))
		})
	}
}
