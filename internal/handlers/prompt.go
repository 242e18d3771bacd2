package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/lifestory-app/lifestory-backend/internal/services"
)

type PromptResponse struct {
	Prompt string `json:"prompt"`
}

// GetReflectionPrompt returns an AI-generated journal prompt. The prompt is
// cached per day so dashboard loads don't each cost a completion call; on
// any failure a fixed fallback prompt is served.
func GetReflectionPrompt(w http.ResponseWriter, r *http.Request) {
	cacheKey := "reflection_prompt:" + time.Now().Format("2006-01-02")

	var cached PromptResponse
	if hit, _ := cache.Get(cacheKey, &cached); hit && cached.Prompt != "" {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 35*time.Second)
	defer cancel()

	resp := PromptResponse{Prompt: prompter.GenerateReflectionPrompt(ctx)}

	if resp.Prompt != services.FallbackPrompt {
		_ = cache.SetWithTTL(cacheKey, resp, services.PromptCacheTTL)
	}

	writeJSON(w, http.StatusOK, resp)
}
