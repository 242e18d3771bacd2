package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/lifestory-app/lifestory-backend/internal/services"
)

// SearchEntries matches the query case-insensitively against entry titles
// and content, newest first, capped at 20 results, each with a highlighted
// excerpt. An empty query is a validation error and never touches the store.
func SearchEntries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "Query parameter required")
		return
	}

	userID, ok := requireAuth(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	entries, err := entryStore.Fetch(ctx, userID, services.EntryFilter{
		Query: query,
		Limit: services.SearchResultLimit,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Search failed")
		return
	}

	writeJSON(w, http.StatusOK, services.HighlightResults(entries, query))
}
