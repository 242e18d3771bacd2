package services

import (
	"regexp"

	"github.com/lifestory-app/lifestory-backend/internal/models"
)

// SearchResultLimit caps the number of search hits returned to the caller.
const SearchResultLimit = 20

// excerptLength is the number of leading characters kept from the content
// before highlighting. Matches past this point are simply not visible in
// the excerpt; the excerpt is never re-centered on a match.
const excerptLength = 200

// HighlightExcerpt truncates content to its first 200 characters (plus an
// ellipsis if longer) and wraps every case-insensitive occurrence of the
// literal query in <mark> tags. Truncation happens before highlighting.
func HighlightExcerpt(content, query string) string {
	excerpt := content
	if runes := []rune(content); len(runes) > excerptLength {
		excerpt = string(runes[:excerptLength]) + "..."
	}
	if query == "" {
		return excerpt
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil {
		return excerpt
	}
	return re.ReplaceAllString(excerpt, "<mark>${0}</mark>")
}

// HighlightResults attaches a highlighted excerpt to each matched entry.
// The entries are expected to already be filtered by the store's substring
// match and ordered most-recent-first.
func HighlightResults(entries []models.Entry, query string) []models.SearchResult {
	results := make([]models.SearchResult, 0, len(entries))
	for _, e := range entries {
		results = append(results, models.SearchResult{
			Entry:     e,
			Highlight: HighlightExcerpt(e.Content, query),
		})
	}
	return results
}
