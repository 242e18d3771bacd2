package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/lifestory-app/lifestory-backend/internal/models"
	"github.com/lifestory-app/lifestory-backend/internal/services"
)

// recordingStore counts store calls so tests can assert a handler bailed
// out before touching storage.
type recordingStore struct {
	fetchCalls  int
	insertCalls int
}

func (s *recordingStore) Fetch(ctx context.Context, ownerID uuid.UUID, filter services.EntryFilter) ([]models.Entry, error) {
	s.fetchCalls++
	return nil, nil
}

func (s *recordingStore) Insert(ctx context.Context, entry models.Entry) (models.Entry, error) {
	s.insertCalls++
	return entry, nil
}

func TestSearchEntriesEmptyQueryIsValidationError(t *testing.T) {
	store := &recordingStore{}
	entryStore = store

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	rr := httptest.NewRecorder()

	SearchEntries(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Query parameter required")
	// The store must not be consulted for an invalid query
	assert.Equal(t, 0, store.fetchCalls)
}

func TestSearchEntriesRequiresAuth(t *testing.T) {
	store := &recordingStore{}
	entryStore = store

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=family", nil)
	rr := httptest.NewRecorder()

	SearchEntries(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, 0, store.fetchCalls)
}
