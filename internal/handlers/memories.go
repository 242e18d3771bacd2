package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/lifestory-app/lifestory-backend/internal/services"
)

// GetTodayMemory returns the most recent entry from a prior year written on
// today's month and day, or JSON null when there is no such anniversary.
func GetTodayMemory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	today := time.Now()
	cutoff := today.AddDate(-1, 0, 0)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	entries, err := entryStore.Fetch(ctx, userID, services.EntryFilter{
		StrictlyBefore: &cutoff,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch memories")
		return
	}

	memory := services.FindTodayMemory(entries, today)
	if memory == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, memory)
}
