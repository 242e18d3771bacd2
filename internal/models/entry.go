package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sentiment labels assigned by the classifier at creation time.
// Entries never carry any other value.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Entry represents one journal entry owned by a single user.
// Entries are immutable after creation; created_at is the sole
// ordering and grouping key for all analytics.
type Entry struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	WordCount      int       `json:"word_count"`
	SentimentScore float64   `json:"sentiment_score"`
	SentimentLabel string    `json:"sentiment_label"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CountWords computes the stored word count for entry content:
// split on whitespace, empty tokens discarded.
func CountWords(content string) int {
	return len(strings.Fields(content))
}
