package handlers

import (
	"net/http"

	"github.com/lifestory-app/lifestory-backend/internal/services"
)

// SignOut revokes the caller's session token. Token issuance belongs to the
// identity service; this backend only resolves and revokes tokens.
func SignOut(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		writeUnauthorized(w)
		return
	}

	if err := services.InvalidateSession(token); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to sign out")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Signed out",
	})
}
