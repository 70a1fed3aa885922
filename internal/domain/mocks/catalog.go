// Package mocks provides mock implementations for testing.
package mocks

import "github.com/ersonp/catalog-seed/internal/domain/entities"

// CatalogSource is a mock implementation of ports.CatalogSource.
type CatalogSource struct {
	Catalog *entities.Catalog
	Err     error

	// Call tracking
	LoadCallCount int
	LastDir       string
}

// Load returns the configured catalog or error.
func (m *CatalogSource) Load(dir string) (*entities.Catalog, error) {
	m.LoadCallCount++
	m.LastDir = dir
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Catalog == nil {
		return &entities.Catalog{}, nil
	}
	return m.Catalog, nil
}
