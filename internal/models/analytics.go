package models

// SentimentDistribution counts entries per sentiment label.
// For any computed bundle Positive+Negative+Neutral equals TotalEntries.
type SentimentDistribution struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// MonthlyPoint is one calendar month's aggregate ("Mar 2024" style key).
type MonthlyPoint struct {
	Month        string  `json:"month"`
	Entries      int     `json:"entries"`
	Words        int     `json:"words"`
	AvgSentiment float64 `json:"avgSentiment"`
}

// WeeklyPoint is one of the last 7 calendar days (oldest first, today last).
type WeeklyPoint struct {
	Day       string  `json:"day"`
	Entries   int     `json:"entries"`
	Sentiment float64 `json:"sentiment"`
}

// WordFrequency is one ranked word from the top-words computation.
type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// AnalyticsBundle is the derived per-request analytics view. It has no
// identity and is recomputed from the fetched entries every time.
type AnalyticsBundle struct {
	TotalEntries          int                   `json:"totalEntries"`
	TotalWords            int                   `json:"totalWords"`
	AverageWordsPerEntry  int                   `json:"averageWordsPerEntry"`
	SentimentDistribution SentimentDistribution `json:"sentimentDistribution"`
	MonthlyData           []MonthlyPoint        `json:"monthlyData"`
	WeeklyData            []WeeklyPoint         `json:"weeklyData"`
	TopWords              []WordFrequency       `json:"topWords"`
	Summary               string                `json:"summary"`
}

// SearchResult is an entry plus its highlighted excerpt.
type SearchResult struct {
	Entry
	Highlight string `json:"highlight"`
}
