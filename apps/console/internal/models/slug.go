package models

import (
	"regexp"
	"strings"
)

var (
	reApostrophes = regexp.MustCompile("['`´’]+")
	reNonAlnum    = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify is the shared slug contract for every resource table: lowercase,
// apostrophes stripped, runs of non-alphanumerics collapsed to a single
// hyphen, leading/trailing hyphens trimmed.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = reApostrophes.ReplaceAllString(slug, "")
	slug = reNonAlnum.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}
