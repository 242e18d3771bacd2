package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifestory-app/lifestory-backend/internal/config"
	"github.com/lifestory-app/lifestory-backend/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOpenAIClient(&config.Config{
		OpenAIAPIKey:   "test-key",
		OpenAIBaseURL:  srv.URL,
		SentimentModel: "test-sentiment-model",
		SummaryModel:   "test-summary-model",
	})
}

func chatReply(t *testing.T, w http.ResponseWriter, content string) {
	t.Helper()
	resp := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	}
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(resp))
}

func TestAnalyzeSentimentParsesResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		chatReply(t, w, `{"score": 0.8, "label": "positive", "confidence": 0.9}`)
	})

	result := client.AnalyzeSentiment(context.Background(), "what a wonderful day")
	assert.InDelta(t, 0.8, result.Score, 1e-9)
	assert.Equal(t, models.SentimentPositive, result.Label)
	assert.InDelta(t, 0.9, result.Confidence, 1e-9)
}

func TestAnalyzeSentimentClampsAndNormalizes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		chatReply(t, w, `{"score": 3.5, "label": "euphoric", "confidence": 2}`)
	})

	result := client.AnalyzeSentiment(context.Background(), "off the charts")
	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, models.SentimentNeutral, result.Label)
	assert.Equal(t, 1.0, result.Confidence)
}

func TestAnalyzeSentimentFallsBackOnServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	})

	result := client.AnalyzeSentiment(context.Background(), "anything")
	assert.Equal(t, NeutralSentiment(), result)
}

func TestAnalyzeSentimentFallsBackOnBadJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		chatReply(t, w, "sorry, I can't do that")
	})

	result := client.AnalyzeSentiment(context.Background(), "anything")
	assert.Equal(t, NeutralSentiment(), result)
}

func TestAnalyzeSentimentWithoutAPIKey(t *testing.T) {
	client := NewOpenAIClient(&config.Config{OpenAIBaseURL: "https://api.openai.com/v1"})

	result := client.AnalyzeSentiment(context.Background(), "anything")
	assert.Equal(t, NeutralSentiment(), result)
}

func TestGenerateSummarySuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-summary-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Contains(t, req.Messages[1].Content, "first entry")
		assert.Contains(t, req.Messages[1].Content, "---")
		chatReply(t, w, "A month of steady growth.")
	})

	summary := client.GenerateSummary(context.Background(), []string{"first entry", "second entry"}, "last30days")
	assert.Equal(t, "A month of steady growth.", summary)
}

func TestGenerateSummaryFallsBack(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	})

	summary := client.GenerateSummary(context.Background(), []string{"entry"}, "last7days")
	assert.Equal(t, FallbackSummary, summary)
}

func TestGenerateReflectionPromptSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		chatReply(t, w, "  What surprised you today?\n")
	})

	prompt := client.GenerateReflectionPrompt(context.Background())
	assert.Equal(t, "What surprised you today?", prompt)
}

func TestGenerateReflectionPromptFallsBack(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		chatReply(t, w, "")
	})

	prompt := client.GenerateReflectionPrompt(context.Background())
	assert.Equal(t, FallbackPrompt, prompt)
}
