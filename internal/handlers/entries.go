package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/lifestory-app/lifestory-backend/internal/models"
	"github.com/lifestory-app/lifestory-backend/internal/services"
)

type CreateEntryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CreateEntryResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Entry   *models.Entry `json:"entry,omitempty"`
}

type GetEntriesResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Entries []models.Entry `json:"entries"`
	Total   int            `json:"total"`
}

// CreateEntry creates a journal entry for the authenticated user. Word count
// is derived from the content and the sentiment fields come from the
// classifier, which degrades to a neutral result if the AI API is down.
func CreateEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "Title and content are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 35*time.Second)
	defer cancel()

	sentiment := classifier.AnalyzeSentiment(ctx, req.Content)

	entry, err := entryStore.Insert(ctx, models.Entry{
		UserID:         userID,
		Title:          req.Title,
		Content:        req.Content,
		WordCount:      models.CountWords(req.Content),
		SentimentScore: sentiment.Score,
		SentimentLabel: sentiment.Label,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create entry")
		return
	}

	writeJSON(w, http.StatusCreated, CreateEntryResponse{
		Success: true,
		Message: "Entry created successfully",
		Entry:   &entry,
	})
}

// GetEntries returns the authenticated user's entries, newest first.
// Optional month (1-12) and year query parameters narrow the range to one
// calendar month or one calendar year.
func GetEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	filter := services.EntryFilter{}

	monthStr := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")

	year := time.Now().Year()
	if yearStr != "" {
		if y, err := strconv.Atoi(yearStr); err == nil && y > 0 {
			year = y
		}
	}

	if monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			writeError(w, http.StatusBadRequest, "Invalid month")
			return
		}
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
		end := start.AddDate(0, 1, 0).Add(-time.Second)
		filter.After = &start
		filter.Before = &end
	} else if yearStr != "" {
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
		end := time.Date(year, time.December, 31, 23, 59, 59, 0, time.Local)
		filter.After = &start
		filter.Before = &end
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	entries, err := entryStore.Fetch(ctx, userID, filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, GetEntriesResponse{
			Success: false,
			Message: "Failed to fetch entries",
			Entries: []models.Entry{},
		})
		return
	}

	writeJSON(w, http.StatusOK, GetEntriesResponse{
		Success: true,
		Entries: entries,
		Total:   len(entries),
	})
}
