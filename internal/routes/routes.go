package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/lifestory-app/lifestory-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux) {
	// Session revocation (tokens are issued by the identity service)
	r.Post("/api/auth/signout", handlers.SignOut)

	// Journal entries
	r.Post("/api/entries", handlers.CreateEntry)
	r.Get("/api/entries", handlers.GetEntries)

	// Analytics dashboard
	r.Get("/api/analytics", handlers.GetAnalytics)

	// "On this day" memories
	r.Get("/api/memories/today", handlers.GetTodayMemory)

	// Full-text-ish search with highlighted excerpts
	r.Get("/api/search", handlers.SearchEntries)

	// Year export (HTML document for client-side printing)
	r.Post("/api/export", handlers.ExportYear)

	// Daily reflection prompt
	r.Get("/api/reflection-prompt", handlers.GetReflectionPrompt)
}
