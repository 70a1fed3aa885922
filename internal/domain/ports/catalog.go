// Package ports defines interfaces for external service communication.
package ports

import "github.com/ersonp/catalog-seed/internal/domain/entities"

// CatalogSource loads raw catalog records from a directory of category files.
type CatalogSource interface {
	// Load reads every recognized catalog file in dir in lexicographic order.
	Load(dir string) (*entities.Catalog, error)
}
