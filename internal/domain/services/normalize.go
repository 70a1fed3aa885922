package services

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ersonp/catalog-seed/internal/domain/entities"
)

// MaxCreators caps the number of names kept per item.
const MaxCreators = 10

var (
	reYear         = regexp.MustCompile(`(19|20)\d{2}`)
	reCreatorSplit = regexp.MustCompile(`,| and `)
	reCreatorRole  = buildRolePattern(entities.CreatorRoles)
)

func buildRolePattern(roles []string) *regexp.Regexp {
	quoted := make([]string, len(roles))
	for i, r := range roles {
		quoted[i] = regexp.QuoteMeta(r)
	}
	return regexp.MustCompile(`\b(` + strings.Join(quoted, "|") + `)\s*:\s*`)
}

// NormalizedItem is a catalog record mapped onto media columns, before an
// external identifier is assigned.
type NormalizedItem struct {
	Title       string
	Year        *int
	Country     *string
	Creators    []string
	Description *string
	Attributes  map[string]any
}

// Normalize maps a raw record onto media columns. It reports false when the
// record has no usable title.
func Normalize(rec entities.CatalogRecord) (NormalizedItem, bool) {
	title, ok := stringField(rec.Fields, entities.FieldTitle)
	if !ok {
		return NormalizedItem{}, false
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return NormalizedItem{}, false
	}

	item := NormalizedItem{
		Title:      title,
		Year:       ParseYear(rec.Fields[entities.FieldYear]),
		Creators:   ParseCreators(rec.Fields[entities.FieldCreator]),
		Attributes: make(map[string]any, len(rec.Fields)+2),
	}

	if country, ok := stringField(rec.Fields, entities.FieldCountry); ok {
		country = strings.TrimSpace(country)
		item.Country = &country
	}
	if synopsis, ok := stringField(rec.Fields, entities.FieldSummary); ok {
		synopsis = strings.TrimSpace(synopsis)
		item.Description = &synopsis
	}

	for k, v := range rec.Fields {
		if entities.CoreFields[k] {
			continue
		}
		item.Attributes[k] = v
	}
	item.Attributes[entities.AttrSourceCategory] = rec.Category
	item.Attributes[entities.AttrSourceFile] = rec.SourceFile

	return item, true
}

// ParseYear extracts the first 19xx/20xx run from a number or string.
// It returns nil when nothing matches.
func ParseYear(raw any) *int {
	if raw == nil {
		return nil
	}
	m := reYear.FindString(stringify(raw))
	if m == "" {
		return nil
	}
	year, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &year
}

// ParseCreators strips role labels such as "Director:" and splits the rest on
// commas and " and ". The result is never nil.
func ParseCreators(raw any) []string {
	creators := []string{}
	if raw == nil {
		return creators
	}

	var txt string
	if list, ok := raw.([]any); ok {
		parts := make([]string, 0, len(list))
		for _, v := range list {
			if v != nil {
				parts = append(parts, stringify(v))
			}
		}
		txt = strings.Join(parts, ", ")
	} else {
		txt = stringify(raw)
	}

	txt = strings.TrimSpace(txt)
	if txt == "" {
		return creators
	}
	txt = reCreatorRole.ReplaceAllString(txt, "")

	for _, part := range reCreatorSplit.Split(txt, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		creators = append(creators, part)
		if len(creators) == MaxCreators {
			break
		}
	}
	return creators
}

// ReleaseDate formats a year as the first day of that year.
func ReleaseDate(year *int) *string {
	if year == nil {
		return nil
	}
	date := fmt.Sprintf("%04d-01-01", *year)
	return &date
}

// stringField returns the field as text. Absent and null fields report false.
func stringField(fields map[string]any, key string) (string, bool) {
	v, ok := fields[key]
	if !ok || v == nil {
		return "", false
	}
	return stringify(v), true
}

// stringify renders decoded JSON, YAML, or TOML scalars as text.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	default:
		return fmt.Sprint(t)
	}
}
