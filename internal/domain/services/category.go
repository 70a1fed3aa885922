package services

import "github.com/ersonp/catalog-seed/internal/domain/entities"

// MediaTypeFor maps a category key to its media type. Unknown keys fall back
// to their slug so every category yields some type.
func MediaTypeFor(category string) entities.MediaType {
	if mt, ok := entities.CategoryTypes[category]; ok {
		return mt
	}
	return entities.MediaType(Slugify(category))
}
