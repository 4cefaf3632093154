package domain

import "strings"

// NormalizeGenres splits a comma-delimited genre string into lowercase, trimmed tags.
// Segments are kept even when empty, so "" yields a single empty tag.
func NormalizeGenres(genre string) []string {
	parts := strings.Split(genre, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.ToLower(strings.TrimSpace(p)))
	}
	return tags
}
