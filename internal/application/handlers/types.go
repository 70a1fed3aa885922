package handlers

import (
	"fmt"
	"sort"

	"github.com/ersonp/catalog-seed/internal/domain/entities"
	"github.com/ersonp/catalog-seed/internal/domain/ports"
)

// CategoryMapping is one row of the fixed category table.
type CategoryMapping struct {
	Category  string
	MediaType entities.MediaType
}

// TypeCount is the number of catalog records found for a media type.
type TypeCount struct {
	MediaType entities.MediaType
	Records   int
}

// TypesHandler reports media types, from the fixed table or a catalog directory.
type TypesHandler struct {
	source ports.CatalogSource
}

// NewTypesHandler creates a new types handler.
func NewTypesHandler(source ports.CatalogSource) *TypesHandler {
	return &TypesHandler{source: source}
}

// Table returns the fixed category mappings sorted by category.
func (h *TypesHandler) Table() []CategoryMapping {
	result := make([]CategoryMapping, 0, len(entities.CategoryTypes))
	for category, mt := range entities.CategoryTypes {
		result = append(result, CategoryMapping{Category: category, MediaType: mt})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Category < result[j].Category
	})
	return result
}

// Scan counts records per media type in dir, in first-encounter order.
func (h *TypesHandler) Scan(dir string) ([]TypeCount, error) {
	catalog, err := h.source.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	counts := make(map[entities.MediaType]int, len(catalog.Types))
	for _, rec := range catalog.Records {
		counts[rec.MediaType]++
	}

	result := make([]TypeCount, 0, len(catalog.Types))
	for _, mt := range catalog.Types {
		result = append(result, TypeCount{MediaType: mt, Records: counts[mt]})
	}
	return result, nil
}
