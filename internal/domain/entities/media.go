// Package entities contains core domain data structures.
package entities

// MediaType is the canonical code of a media category, e.g. "show" or "light_novel".
type MediaType string

// Class returns the ltree path locating the type in the media taxonomy.
func (t MediaType) Class() string {
	return "media." + string(t)
}

// Words returns the type with underscores replaced by spaces.
func (t MediaType) Words() string {
	out := []byte(t)
	for i, c := range out {
		if c == '_' {
			out[i] = ' '
		}
	}
	return string(out)
}

// Title returns the type in title case, e.g. "Light Novel".
func (t MediaType) Title() string {
	out := []byte(t.Words())
	upper := true
	for i, c := range out {
		switch {
		case c >= 'a' && c <= 'z':
			if upper {
				out[i] = c - 'a' + 'A'
			}
			upper = false
		case c >= 'A' && c <= 'Z':
			if !upper {
				out[i] = c - 'A' + 'a'
			}
			upper = false
		default:
			upper = true
		}
	}
	return string(out)
}

// Media is a catalog item normalized into the uniform media schema.
type Media struct {
	ExternalID      string         `json:"external_id"`
	MediaType       MediaType      `json:"media_type"`
	MediaClass      string         `json:"media_class"`
	Title           string         `json:"title"`
	ReleaseDate     *string        `json:"release_date,omitempty"`
	CountryOfOrigin *string        `json:"country_of_origin,omitempty"`
	Creators        []string       `json:"creators"`
	CoverURL        *string        `json:"cover_url,omitempty"`
	Description     *string        `json:"description,omitempty"`
	Attributes      map[string]any `json:"attributes"`
}

// CatalogRecord is one raw item read from a category file, tagged with
// where it came from. Fields holds the item exactly as decoded.
type CatalogRecord struct {
	MediaType  MediaType
	Category   string
	SourceFile string
	Fields     map[string]any
}

// Catalog is the flattened output of loading a catalog directory.
type Catalog struct {
	Records []CatalogRecord
	// Types lists distinct media types in first-encounter order.
	Types []MediaType
}
