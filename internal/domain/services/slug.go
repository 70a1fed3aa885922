package services

import (
	"regexp"
	"strings"
)

var reNonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases value and collapses every run of characters outside
// [a-z0-9] into a single hyphen. Values with nothing left become "item".
func Slugify(value string) string {
	slug := reNonSlug.ReplaceAllString(strings.ToLower(strings.TrimSpace(value)), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "item"
	}
	return slug
}
