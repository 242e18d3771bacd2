package services

import (
	"time"

	"github.com/lifestory-app/lifestory-backend/internal/models"
)

// FindTodayMemory scans entries (already filtered to created_at older than
// one year and ordered most-recent-first) for the first one sharing today's
// month and day. Because of the ordering, the first match is the most recent
// qualifying anniversary, which may be more than one year back. Returns nil
// when no prior-year entry matches.
func FindTodayMemory(entries []models.Entry, today time.Time) *models.Entry {
	monthDay := today.Format("01-02")
	for i := range entries {
		if entries[i].CreatedAt.Format("01-02") == monthDay {
			return &entries[i]
		}
	}
	return nil
}
