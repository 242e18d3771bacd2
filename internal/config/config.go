package config

import (
	"os"
	"strings"
)

type Config struct {
	PostgresURI          string
	RedisURI             string
	Port                 string
	FrontendURL          string
	AllowedOrigins       []string // CORS: from ALLOWED_ORIGINS or FRONTEND_URL(s)
	OpenAIAPIKey         string
	OpenAIBaseURL        string // OpenAI-compatible endpoint base (no trailing slash)
	SentimentModel       string
	SummaryModel         string
	Environment          string // ENV: production, development, etc.
	MonthlySentimentMode string // "running" (legacy pairwise average) or "mean"
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))

	// CORS: allow multiple origins so the production frontend works alongside localhost
	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		for _, u := range []string{getEnv("FRONTEND_URL", "http://localhost:3000"), getEnv("FRONTEND_URL_2", "")} {
			u = strings.TrimSpace(u)
			if u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	mode := strings.ToLower(strings.TrimSpace(getEnv("MONTHLY_SENTIMENT_MODE", "running")))
	if mode != "mean" {
		mode = "running"
	}

	return &Config{
		PostgresURI:          getEnv("POSTGRES_URI", "postgres://localhost:5432/lifestory?sslmode=disable"),
		RedisURI:             getEnv("REDIS_URI", "redis://localhost:6379/0"),
		Port:                 getEnv("PORT", "8080"),
		FrontendURL:          getEnv("FRONTEND_URL", "http://localhost:3000"),
		AllowedOrigins:       allowedOrigins,
		OpenAIAPIKey:         getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:        strings.TrimRight(getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"), "/"),
		SentimentModel:       getEnv("SENTIMENT_MODEL", "gpt-3.5-turbo"),
		SummaryModel:         getEnv("SUMMARY_MODEL", "gpt-4"),
		Environment:          env,
		MonthlySentimentMode: mode,
	}
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return strings.ToLower(strings.TrimSpace(c.Environment)) == "production"
}

// UseTrueMonthlyMean reports whether monthly sentiment should use a true
// arithmetic mean instead of the legacy pairwise running average.
func (c *Config) UseTrueMonthlyMean() bool {
	return c.MonthlySentimentMode == "mean"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
