// Package catalog holds the pure query logic of the event board: tag
// indexing and the text+tag filter predicate. It never mutates the event
// list it is given.
package catalog

import (
	"slices"
	"strings"

	"eventBoard/internal/models"
)

// Normalize prepares a free-text query for matching: leading/trailing
// whitespace stripped, lowercased.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Tags returns the distinct tag values across all events, in first-seen
// order. Empty and whitespace-only tags are excluded from the index.
func Tags(events []models.Event) []string {
	seen := make(map[string]struct{})

	var tags []string
	for _, event := range events {
		for _, tag := range event.Tags {
			if strings.TrimSpace(tag) == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}

	return tags
}

// Filter returns the subsequence of events matching both the normalized
// text query and the selected tag, preserving input order. An empty query
// or tag places no constraint. Filter always works from the full list it
// is handed, never from a previous result.
func Filter(events []models.Event, query, tag string) []models.Event {
	query = Normalize(query)

	var matched []models.Event
	for _, event := range events {
		if !matchesQuery(event, query) {
			continue
		}
		if tag != "" && !slices.Contains(event.Tags, tag) {
			continue
		}
		matched = append(matched, event)
	}

	return matched
}

func matchesQuery(event models.Event, query string) bool {
	if query == "" {
		return true
	}

	haystack := strings.ToLower(
		event.Title + " " + event.Description + " " + strings.Join(event.Tags, " "),
	)

	return strings.Contains(haystack, query)
}
