package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/lifestory-app/lifestory-backend/internal/config"
	"github.com/lifestory-app/lifestory-backend/internal/services"
)

// Shared handler dependencies, wired once at startup.
var (
	entryStore  services.EntryStore
	classifier  services.SentimentClassifier
	summarizer  services.Summarizer
	prompter    services.PromptGenerator
	cache       = &services.CacheService{}
	useTrueMean bool
)

// InitServices wires the entry store and the AI client into the handlers.
// Call after the database connections are established.
func InitServices(cfg *config.Config) {
	entryStore = services.NewEntryStore()
	ai := services.NewOpenAIClient(cfg)
	classifier = ai
	summarizer = ai
	prompter = ai
	useTrueMean = cfg.UseTrueMonthlyMean()

	if cfg.OpenAIAPIKey == "" {
		log.Println("⚠️  WARNING: OPENAI_API_KEY not set. Sentiment, summaries and prompts will use fallback values.")
	}
}

// extractBearerToken pulls the token out of an "Authorization: Bearer x" header.
func extractBearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// requireAuth validates the session and returns the authenticated user's ID.
// Returns (uuid.Nil, false) if not authenticated.
func requireAuth(r *http.Request) (uuid.UUID, bool) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return uuid.Nil, false
	}
	userID, ok, err := services.ValidateSession(token)
	if err != nil || !ok {
		return uuid.Nil, false
	}
	return userID, true
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes the standard {success:false, message} envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// writeUnauthorized is the shared 401 response.
func writeUnauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "Authentication required")
}
