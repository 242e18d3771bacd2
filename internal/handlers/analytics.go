package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/lifestory-app/lifestory-backend/internal/services"
)

// GetAnalytics computes the analytics bundle for the requested period
// (last7days, last30days, last3months, last6months, lastyear; default
// last30days). An empty period yields the all-zero bundle, not an error.
func GetAnalytics(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	period := services.NormalizePeriod(r.URL.Query().Get("period"))
	now := time.Now()
	start := services.PeriodStart(period, now)

	ctx, cancel := context.WithTimeout(r.Context(), 35*time.Second)
	defer cancel()

	entries, err := entryStore.Fetch(ctx, userID, services.EntryFilter{
		After:  &start,
		Before: &now,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch entries")
		return
	}

	bundle, err := services.BuildAnalytics(entries, now, useTrueMean)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to compute analytics")
		return
	}

	if len(entries) > 0 {
		texts := make([]string, 0, len(entries))
		for _, e := range entries {
			texts = append(texts, e.Content)
		}
		bundle.Summary = summarizer.GenerateSummary(ctx, texts, period)
	}

	writeJSON(w, http.StatusOK, bundle)
}
