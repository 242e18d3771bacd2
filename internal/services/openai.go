package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lifestory-app/lifestory-backend/internal/config"
	"github.com/lifestory-app/lifestory-backend/internal/models"
)

// Fallback values used whenever the completion API is unreachable or
// returns garbage. Entry creation and the prompt/summary flows must never
// hard-fail because the AI collaborator is down.
const (
	FallbackSummary = "Unable to generate summary at this time."
	FallbackPrompt  = "What made you feel most alive today?"
)

// SentimentResult is the classifier's verdict for one piece of text.
type SentimentResult struct {
	Score      float64 `json:"score"`      // [-1, 1]
	Label      string  `json:"label"`      // positive / negative / neutral
	Confidence float64 `json:"confidence"` // [0, 1]
}

// NeutralSentiment is the degraded classifier result.
func NeutralSentiment() SentimentResult {
	return SentimentResult{Score: 0, Label: models.SentimentNeutral, Confidence: 0.5}
}

// SentimentClassifier scores the sentiment of a single text.
type SentimentClassifier interface {
	AnalyzeSentiment(ctx context.Context, text string) SentimentResult
}

// Summarizer writes a prose summary of a period's entries.
type Summarizer interface {
	GenerateSummary(ctx context.Context, texts []string, period string) string
}

// PromptGenerator produces a daily reflection prompt.
type PromptGenerator interface {
	GenerateReflectionPrompt(ctx context.Context) string
}

// OpenAIClient talks to an OpenAI-compatible chat completions API.
// All three capabilities degrade to fixed fallbacks on any failure.
type OpenAIClient struct {
	baseURL        string
	apiKey         string
	sentimentModel string
	summaryModel   string
	httpClient     *http.Client
}

var _ SentimentClassifier = (*OpenAIClient)(nil)
var _ Summarizer = (*OpenAIClient)(nil)
var _ PromptGenerator = (*OpenAIClient)(nil)

// NewOpenAIClient builds a client from configuration.
func NewOpenAIClient(cfg *config.Config) *OpenAIClient {
	return &OpenAIClient{
		baseURL:        cfg.OpenAIBaseURL,
		apiKey:         cfg.OpenAIAPIKey,
		sentimentModel: cfg.SentimentModel,
		summaryModel:   cfg.SummaryModel,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// complete posts one chat completion request and returns the first choice's content.
func (c *OpenAIClient) complete(ctx context.Context, req chatRequest) (string, error) {
	if c == nil || c.apiKey == "" || c.baseURL == "" {
		return "", fmt.Errorf("openai client not configured")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal chat payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("openai error %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("no choices in chat response")
	}
	return parsed.Choices[0].Message.Content, nil
}

// AnalyzeSentiment classifies text and never fails: any upstream error
// yields the neutral zero-score result.
func (c *OpenAIClient) AnalyzeSentiment(ctx context.Context, text string) SentimentResult {
	content, err := c.complete(ctx, chatRequest{
		Model: c.sentimentModel,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a sentiment analysis expert. Analyze the sentiment of the given text and respond with a JSON object containing: score (number between -1 and 1), label (positive/negative/neutral), and confidence (0-1)."},
			{Role: "user", Content: text},
		},
		MaxTokens:   100,
		Temperature: 0.1,
	})
	if err != nil {
		return NeutralSentiment()
	}

	var result SentimentResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return NeutralSentiment()
	}
	return normalizeSentiment(result)
}

// normalizeSentiment clamps the score into [-1,1], the confidence into [0,1]
// and rejects unknown labels so stored entries always satisfy the label contract.
func normalizeSentiment(r SentimentResult) SentimentResult {
	switch r.Label {
	case models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral:
	default:
		r.Label = models.SentimentNeutral
	}
	if r.Score > 1 {
		r.Score = 1
	} else if r.Score < -1 {
		r.Score = -1
	}
	if r.Confidence < 0 {
		r.Confidence = 0
	} else if r.Confidence > 1 {
		r.Confidence = 1
	} else if r.Confidence == 0 {
		r.Confidence = 0.5
	}
	return r
}

// GenerateSummary writes a reflective summary of the given entries,
// returning a fixed fallback string when the API is unavailable.
func (c *OpenAIClient) GenerateSummary(ctx context.Context, texts []string, period string) string {
	content, err := c.complete(ctx, chatRequest{
		Model: c.summaryModel,
		Messages: []chatMessage{
			{Role: "system", Content: fmt.Sprintf("You are a thoughtful life story writer. Create a beautiful, reflective summary of the user's journal entries for %s. Focus on growth, insights, patterns, and meaningful moments. Write in a warm, encouraging tone as if you're helping them see their life story unfold.", period)},
			{Role: "user", Content: strings.Join(texts, "\n\n---\n\n")},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil || strings.TrimSpace(content) == "" {
		return FallbackSummary
	}
	return content
}

// GenerateReflectionPrompt asks the model for a journal prompt,
// returning a fixed fallback prompt on failure.
func (c *OpenAIClient) GenerateReflectionPrompt(ctx context.Context) string {
	content, err := c.complete(ctx, chatRequest{
		Model: c.sentimentModel,
		Messages: []chatMessage{
			{Role: "system", Content: "Generate a thoughtful, inspiring journal prompt that encourages deep reflection. Make it personal and engaging. Return only the prompt text."},
			{Role: "user", Content: "Generate a reflection prompt for today."},
		},
		MaxTokens:   100,
		Temperature: 0.8,
	})
	if err != nil || strings.TrimSpace(content) == "" {
		return FallbackPrompt
	}
	return strings.TrimSpace(content)
}
