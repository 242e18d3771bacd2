package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lifestory-app/lifestory-backend/internal/database"
	"github.com/lifestory-app/lifestory-backend/internal/models"
)

// EntryFilter narrows an owner-scoped entries query. Zero values mean "no bound".
type EntryFilter struct {
	After          *time.Time // created_at >= After
	Before         *time.Time // created_at <= Before
	StrictlyBefore *time.Time // created_at < StrictlyBefore (memories lookup)
	Query          string     // case-insensitive substring match on title OR content
	Ascending      bool       // default is created_at DESC
	Limit          int        // 0 means no limit
}

// EntryStore is the gateway to durable entry storage. Every method is
// owner-scoped: rows belonging to other users are never visible.
type EntryStore interface {
	Fetch(ctx context.Context, ownerID uuid.UUID, filter EntryFilter) ([]models.Entry, error)
	Insert(ctx context.Context, entry models.Entry) (models.Entry, error)
}

// PostgresEntryStore implements EntryStore on the shared entries table.
type PostgresEntryStore struct {
	DB *sql.DB
}

// NewEntryStore returns an EntryStore backed by the global Postgres connection.
func NewEntryStore() *PostgresEntryStore {
	return &PostgresEntryStore{DB: database.PostgresDB}
}

const entryColumns = "id, user_id, title, content, word_count, sentiment_score, sentiment_label, created_at, updated_at"

// Fetch returns the owner's entries matching filter, ordered by created_at.
func (s *PostgresEntryStore) Fetch(ctx context.Context, ownerID uuid.UUID, filter EntryFilter) ([]models.Entry, error) {
	var sb strings.Builder
	args := []interface{}{ownerID}
	sb.WriteString("SELECT " + entryColumns + " FROM entries WHERE user_id = $1")

	if filter.After != nil {
		args = append(args, *filter.After)
		fmt.Fprintf(&sb, " AND created_at >= $%d", len(args))
	}
	if filter.Before != nil {
		args = append(args, *filter.Before)
		fmt.Fprintf(&sb, " AND created_at <= $%d", len(args))
	}
	if filter.StrictlyBefore != nil {
		args = append(args, *filter.StrictlyBefore)
		fmt.Fprintf(&sb, " AND created_at < $%d", len(args))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		fmt.Fprintf(&sb, " AND (title ILIKE $%d OR content ILIKE $%d)", len(args), len(args))
	}

	if filter.Ascending {
		sb.WriteString(" ORDER BY created_at ASC")
	} else {
		sb.WriteString(" ORDER BY created_at DESC")
	}
	if filter.Limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", filter.Limit)
	}

	rows, err := s.DB.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.Entry, 0)
	for rows.Next() {
		var e models.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.WordCount,
			&e.SentimentScore, &e.SentimentLabel, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Insert stores a new entry and returns it with the database-assigned
// id and timestamps filled in.
func (s *PostgresEntryStore) Insert(ctx context.Context, entry models.Entry) (models.Entry, error) {
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO entries (user_id, title, content, word_count, sentiment_score, sentiment_label)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, entry.UserID, entry.Title, entry.Content, entry.WordCount,
		entry.SentimentScore, entry.SentimentLabel,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return models.Entry{}, err
	}
	return entry, nil
}
