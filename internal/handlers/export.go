package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/lifestory-app/lifestory-backend/internal/services"
)

type ExportRequest struct {
	Year  int    `json:"year"`
	Title string `json:"title"`
}

type ExportResponse struct {
	HTML         string `json:"html"`
	TotalEntries int    `json:"total_entries"`
	Title        string `json:"title"`
}

// ExportYear renders the authenticated user's entries for one calendar year
// into a printable HTML document, one chapter per month. PDF conversion
// happens client-side.
func ExportYear(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Year <= 0 {
		writeError(w, http.StatusBadRequest, "Year is required")
		return
	}

	start := time.Date(req.Year, time.January, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(req.Year, time.December, 31, 23, 59, 59, 0, time.Local)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	entries, err := entryStore.Fetch(ctx, userID, services.EntryFilter{
		After:     &start,
		Before:    &end,
		Ascending: true,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Export failed")
		return
	}

	writeJSON(w, http.StatusOK, ExportResponse{
		HTML:         services.ComposeExport(entries, req.Year, req.Title),
		TotalEntries: len(entries),
		Title:        services.ExportTitle(req.Title, req.Year),
	})
}
