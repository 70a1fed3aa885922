package services

import (
	"strconv"

	"github.com/ersonp/catalog-seed/internal/domain/entities"
)

// IdentityResolver assigns external identifiers within one source file.
// A fresh resolver must be used for each file.
type IdentityResolver struct {
	seen map[string]struct{}
}

// NewIdentityResolver creates a resolver with an empty identifier set.
func NewIdentityResolver() *IdentityResolver {
	return &IdentityResolver{seen: make(map[string]struct{})}
}

// BaseID returns "{type}:{slug(title)}:{year|na}".
func BaseID(mediaType entities.MediaType, title string, year *int) string {
	yearPart := "na"
	if year != nil {
		yearPart = strconv.Itoa(*year)
	}
	return string(mediaType) + ":" + Slugify(title) + ":" + yearPart
}

// Resolve returns the base identifier, or the base with the lowest free
// ":N" suffix (N >= 2) when the base was already handed out.
func (r *IdentityResolver) Resolve(mediaType entities.MediaType, title string, year *int) string {
	base := BaseID(mediaType, title, year)
	id := base
	for n := 2; r.used(id); n++ {
		id = base + ":" + strconv.Itoa(n)
	}
	r.seen[id] = struct{}{}
	return id
}

func (r *IdentityResolver) used(id string) bool {
	_, ok := r.seen[id]
	return ok
}
