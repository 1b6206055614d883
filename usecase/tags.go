package usecase

import (
	"strings"
	"unicode/utf8"
)

const maxTitleLength = 200

// titleTooLong measures the stored title limit in characters, not bytes,
// so multibyte titles are not rejected early.
func titleTooLong(title string) bool {
	return utf8.RuneCountInString(title) > maxTitleLength
}

// clampTitle truncates an auto-fetched page title to the stored limit.
// Client-supplied titles are rejected instead of truncated.
func clampTitle(title string) string {
	if !titleTooLong(title) {
		return title
	}
	runes := []rune(title)
	return strings.TrimSpace(string(runes[:maxTitleLength]))
}

// ParseTagsParam splits a comma-separated tags query parameter, trimming
// each entry and dropping empties.
func ParseTagsParam(raw string) []string {
	if raw == "" {
		return nil
	}
	tags := make([]string, 0)
	for _, tag := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

// normalizeTags trims stored tags. Duplicates are kept as given; the
// backend does not deduplicate.
func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	return normalized
}
