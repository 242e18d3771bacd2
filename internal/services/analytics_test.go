package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifestory-app/lifestory-backend/internal/models"
)

func testEntry(createdAt time.Time, score float64, label string, wordCount int, content string) models.Entry {
	return models.Entry{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		Title:          "entry",
		Content:        content,
		WordCount:      wordCount,
		SentimentScore: score,
		SentimentLabel: label,
		CreatedAt:      createdAt,
	}
}

func TestBuildAnalyticsEmptyInput(t *testing.T) {
	bundle, err := BuildAnalytics(nil, time.Now(), false)
	require.NoError(t, err)

	assert.Equal(t, 0, bundle.TotalEntries)
	assert.Equal(t, 0, bundle.TotalWords)
	assert.Equal(t, 0, bundle.AverageWordsPerEntry)
	assert.Equal(t, models.SentimentDistribution{}, bundle.SentimentDistribution)
	assert.NotNil(t, bundle.MonthlyData)
	assert.Empty(t, bundle.MonthlyData)
	assert.NotNil(t, bundle.WeeklyData)
	assert.Empty(t, bundle.WeeklyData)
	assert.NotNil(t, bundle.TopWords)
	assert.Empty(t, bundle.TopWords)
	assert.Equal(t, "", bundle.Summary)
}

func TestSentimentDistributionSumsToTotal(t *testing.T) {
	now := time.Now()
	entries := []models.Entry{
		testEntry(now, 0.8, models.SentimentPositive, 10, "good day"),
		testEntry(now.Add(-time.Hour), -0.5, models.SentimentNegative, 12, "bad day"),
		testEntry(now.Add(-2*time.Hour), 0.0, models.SentimentNeutral, 8, "a day"),
		testEntry(now.Add(-3*time.Hour), 0.6, models.SentimentPositive, 20, "another good day"),
	}

	bundle, err := BuildAnalytics(entries, now, false)
	require.NoError(t, err)

	dist := bundle.SentimentDistribution
	assert.Equal(t, bundle.TotalEntries, dist.Positive+dist.Negative+dist.Neutral)
	assert.Equal(t, 2, dist.Positive)
	assert.Equal(t, 1, dist.Negative)
	assert.Equal(t, 1, dist.Neutral)
}

func TestBuildAnalyticsUnknownLabelFailsFast(t *testing.T) {
	now := time.Now()
	entries := []models.Entry{
		testEntry(now, 0.2, "ecstatic", 5, "words"),
	}

	_, err := BuildAnalytics(entries, now, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ecstatic")
}

func TestAverageWordsPerEntryRounds(t *testing.T) {
	now := time.Now()
	entries := []models.Entry{
		testEntry(now, 0, models.SentimentNeutral, 10, "a"),
		testEntry(now, 0, models.SentimentNeutral, 11, "b"),
	}

	bundle, err := BuildAnalytics(entries, now, false)
	require.NoError(t, err)

	assert.Equal(t, 21, bundle.TotalWords)
	// round(21/2) = round(10.5) = 11
	assert.Equal(t, 11, bundle.AverageWordsPerEntry)
}

func TestMonthlyRunningAverageQuirk(t *testing.T) {
	// Three entries in the same month, scores 1.0, 0.0, 1.0 in iteration
	// order. The accumulator seeds at the first score, then each further
	// entry is averaged pairwise: (((1.0+0.0)/2)+1.0)/2 = 0.75, not the
	// true mean 0.667.
	base := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	entries := []models.Entry{
		testEntry(base, 1.0, models.SentimentPositive, 5, "x"),
		testEntry(base.Add(-24*time.Hour), 0.0, models.SentimentNeutral, 5, "y"),
		testEntry(base.Add(-48*time.Hour), 1.0, models.SentimentPositive, 5, "z"),
	}

	bundle, err := BuildAnalytics(entries, base, false)
	require.NoError(t, err)

	require.Len(t, bundle.MonthlyData, 1)
	month := bundle.MonthlyData[0]
	assert.Equal(t, "Mar 2024", month.Month)
	assert.Equal(t, 3, month.Entries)
	assert.Equal(t, 15, month.Words)
	assert.InDelta(t, 0.75, month.AvgSentiment, 1e-9)
}

func TestMonthlyTrueMeanMode(t *testing.T) {
	base := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	entries := []models.Entry{
		testEntry(base, 1.0, models.SentimentPositive, 5, "x"),
		testEntry(base.Add(-24*time.Hour), 0.0, models.SentimentNeutral, 5, "y"),
		testEntry(base.Add(-48*time.Hour), 1.0, models.SentimentPositive, 5, "z"),
	}

	bundle, err := BuildAnalytics(entries, base, true)
	require.NoError(t, err)

	require.Len(t, bundle.MonthlyData, 1)
	assert.InDelta(t, 2.0/3.0, bundle.MonthlyData[0].AvgSentiment, 1e-9)
}

func TestMonthlyDataKeepsEncounterOrder(t *testing.T) {
	// Entries arrive most-recent-first, so the most recent month is
	// encountered (and emitted) first.
	now := time.Date(2024, time.April, 10, 9, 0, 0, 0, time.UTC)
	entries := []models.Entry{
		testEntry(now, 0.1, models.SentimentNeutral, 3, "april"),
		testEntry(now.AddDate(0, 0, -25), 0.2, models.SentimentNeutral, 4, "march"),
		testEntry(now.AddDate(0, 0, -26), 0.3, models.SentimentNeutral, 5, "march again"),
	}

	bundle, err := BuildAnalytics(entries, now, false)
	require.NoError(t, err)

	require.Len(t, bundle.MonthlyData, 2)
	assert.Equal(t, "Apr 2024", bundle.MonthlyData[0].Month)
	assert.Equal(t, "Mar 2024", bundle.MonthlyData[1].Month)
	assert.Equal(t, 2, bundle.MonthlyData[1].Entries)
	assert.Equal(t, 9, bundle.MonthlyData[1].Words)
}

func TestWeeklyDataCoversLastSevenDays(t *testing.T) {
	now := time.Date(2024, time.June, 14, 18, 0, 0, 0, time.UTC) // a Friday
	entries := []models.Entry{
		testEntry(now.Add(-2*time.Hour), 0.5, models.SentimentPositive, 5, "today one"),
		testEntry(now.Add(-3*time.Hour), 0.1, models.SentimentNeutral, 5, "today two"),
		testEntry(now.AddDate(0, 0, -3), -0.4, models.SentimentNegative, 5, "three days ago"),
	}

	bundle, err := BuildAnalytics(entries, now, false)
	require.NoError(t, err)

	require.Len(t, bundle.WeeklyData, 7)

	// Oldest day first, today last
	assert.Equal(t, "Sat", bundle.WeeklyData[0].Day)
	assert.Equal(t, "Fri", bundle.WeeklyData[6].Day)

	// Today: two entries, mean sentiment
	today := bundle.WeeklyData[6]
	assert.Equal(t, 2, today.Entries)
	assert.InDelta(t, 0.3, today.Sentiment, 1e-9)

	// Tuesday (3 days back): one entry
	tuesday := bundle.WeeklyData[3]
	assert.Equal(t, 1, tuesday.Entries)
	assert.InDelta(t, -0.4, tuesday.Sentiment, 1e-9)

	// Days with no entries report zero sentiment
	assert.Equal(t, 0, bundle.WeeklyData[0].Entries)
	assert.Equal(t, 0.0, bundle.WeeklyData[0].Sentiment)
}

func TestTopWordsFiltersShortAndStopWords(t *testing.T) {
	now := time.Now()
	content := "the quick brown fox jumps over the lazy dog"
	entries := []models.Entry{
		testEntry(now, 0, models.SentimentNeutral, 9, content),
		testEntry(now.Add(-time.Hour), 0, models.SentimentNeutral, 9, content),
		testEntry(now.Add(-2*time.Hour), 0, models.SentimentNeutral, 9, content),
	}

	bundle, err := BuildAnalytics(entries, now, false)
	require.NoError(t, err)

	counts := make(map[string]int)
	for _, wf := range bundle.TopWords {
		counts[wf.Word] = wf.Count
	}

	assert.Equal(t, 3, counts["quick"])
	assert.Equal(t, 3, counts["brown"])
	assert.Equal(t, 3, counts["jumps"])
	assert.Equal(t, 3, counts["lazy"])
	// "over" is four letters and not a stop word, so it stays
	assert.Equal(t, 3, counts["over"])

	// Short words and stop words never appear
	for _, excluded := range []string{"the", "fox", "dog", "that", "this", "with"} {
		_, found := counts[excluded]
		assert.False(t, found, "word %q should be excluded", excluded)
	}
}

func TestTopWordsStripsPunctuationAndCaps(t *testing.T) {
	now := time.Now()
	entries := []models.Entry{
		testEntry(now, 0, models.SentimentNeutral, 4, "Amazing!! Amazing, amazing... evening"),
	}

	bundle, err := BuildAnalytics(entries, now, false)
	require.NoError(t, err)

	require.NotEmpty(t, bundle.TopWords)
	assert.Equal(t, "amazing", bundle.TopWords[0].Word)
	assert.Equal(t, 3, bundle.TopWords[0].Count)
}

func TestTopWordsCappedAtTwenty(t *testing.T) {
	now := time.Now()
	var content string
	words := []string{
		"alpha", "bravo", "charlie", "delta", "echoes", "foxtrot", "golfing",
		"hotel", "india", "juliet", "kilogram", "lima", "mikes", "november",
		"oscar", "papas", "quebec", "romeo", "sierra", "tango", "uniform",
		"victor", "whiskey",
	}
	for _, w := range words {
		content += w + " "
	}
	entries := []models.Entry{testEntry(now, 0, models.SentimentNeutral, len(words), content)}

	bundle, err := BuildAnalytics(entries, now, false)
	require.NoError(t, err)

	assert.Len(t, bundle.TopWords, 20)
}

func TestNormalizePeriodDefaults(t *testing.T) {
	assert.Equal(t, "last30days", NormalizePeriod(""))
	assert.Equal(t, "last30days", NormalizePeriod("bogus"))
	assert.Equal(t, "last7days", NormalizePeriod("last7days"))
	assert.Equal(t, "lastyear", NormalizePeriod("lastyear"))
}

func TestPeriodStartWindows(t *testing.T) {
	now := time.Date(2024, time.June, 14, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, now.AddDate(0, 0, -7), PeriodStart("last7days", now))
	assert.Equal(t, now.AddDate(0, 0, -30), PeriodStart("last30days", now))
	assert.Equal(t, now.AddDate(0, 0, -90), PeriodStart("last3months", now))
	assert.Equal(t, now.AddDate(0, 0, -180), PeriodStart("last6months", now))
	assert.Equal(t, now.AddDate(0, 0, -365), PeriodStart("lastyear", now))
	// Unknown periods fall back to the default window
	assert.Equal(t, now.AddDate(0, 0, -30), PeriodStart("whenever", now))
}
