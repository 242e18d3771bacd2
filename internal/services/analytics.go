package services

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/lifestory-app/lifestory-backend/internal/models"
)

// Named periods selecting the analytics date window, in days back from now.
var periodDays = map[string]int{
	"last7days":   7,
	"last30days":  30,
	"last3months": 90,
	"last6months": 180,
	"lastyear":    365,
}

// DefaultPeriod is used when the caller omits or mistypes the period.
const DefaultPeriod = "last30days"

// NormalizePeriod maps an arbitrary period string onto a known one.
func NormalizePeriod(period string) string {
	if _, ok := periodDays[period]; !ok {
		return DefaultPeriod
	}
	return period
}

// PeriodStart returns the inclusive lower bound of the window for period,
// counted back from now. Unknown periods fall back to last30days.
func PeriodStart(period string, now time.Time) time.Time {
	days, ok := periodDays[period]
	if !ok {
		days = periodDays[DefaultPeriod]
	}
	return now.AddDate(0, 0, -days)
}

// topWordsLimit caps the word-frequency ranking.
const topWordsLimit = 20

// stopWords are excluded from the top-words ranking regardless of frequency.
var stopWords = map[string]bool{
	"that": true, "this": true, "with": true, "have": true,
	"will": true, "been": true, "were": true, "said": true,
	"each": true, "which": true, "their": true, "time": true,
	"would": true, "there": true, "could": true, "other": true,
}

var nonWordChars = regexp.MustCompile(`[^\w\s]`)

// EmptyAnalytics is the defined all-zero bundle for an empty entry list.
func EmptyAnalytics() models.AnalyticsBundle {
	return models.AnalyticsBundle{
		SentimentDistribution: models.SentimentDistribution{},
		MonthlyData:           []models.MonthlyPoint{},
		WeeklyData:            []models.WeeklyPoint{},
		TopWords:              []models.WordFrequency{},
		Summary:               "",
	}
}

// BuildAnalytics reduces a list of entries (ordered most-recent-first, as
// fetched) into the analytics bundle, minus the AI summary which the caller
// attaches separately. now anchors the 7-day trend.
//
// useTrueMean switches the monthly sentiment aggregation from the legacy
// pairwise running average ((prev+next)/2 per entry) to a true arithmetic
// mean. The running average is order-dependent and kept as the default for
// compatibility with historical dashboards.
func BuildAnalytics(entries []models.Entry, now time.Time, useTrueMean bool) (models.AnalyticsBundle, error) {
	if len(entries) == 0 {
		return EmptyAnalytics(), nil
	}

	bundle := EmptyAnalytics()
	bundle.TotalEntries = len(entries)
	for _, e := range entries {
		bundle.TotalWords += e.WordCount
	}
	bundle.AverageWordsPerEntry = int(math.Round(float64(bundle.TotalWords) / float64(bundle.TotalEntries)))

	dist, err := sentimentDistribution(entries)
	if err != nil {
		return models.AnalyticsBundle{}, err
	}
	bundle.SentimentDistribution = dist

	bundle.MonthlyData = monthlyData(entries, useTrueMean)
	bundle.WeeklyData = weeklyData(entries, now)
	bundle.TopWords = topWords(entries)
	return bundle, nil
}

// sentimentDistribution buckets entries by label. Every entry lands in
// exactly one bucket; an unrecognized label is a contract violation and
// fails fast rather than being silently dropped.
func sentimentDistribution(entries []models.Entry) (models.SentimentDistribution, error) {
	var dist models.SentimentDistribution
	for _, e := range entries {
		switch e.SentimentLabel {
		case models.SentimentPositive:
			dist.Positive++
		case models.SentimentNegative:
			dist.Negative++
		case models.SentimentNeutral:
			dist.Neutral++
		default:
			return models.SentimentDistribution{}, fmt.Errorf("entry %s has unknown sentiment label %q", e.ID, e.SentimentLabel)
		}
	}
	return dist, nil
}

// monthlyData groups entries by calendar month of creation, preserving the
// iteration order of the input for both month ordering and the running
// sentiment recurrence.
func monthlyData(entries []models.Entry, useTrueMean bool) []models.MonthlyPoint {
	type monthAcc struct {
		point models.MonthlyPoint
		sum   float64
	}
	order := make([]string, 0)
	byMonth := make(map[string]*monthAcc)

	for _, e := range entries {
		month := e.CreatedAt.Format("Jan 2006")
		acc, ok := byMonth[month]
		if !ok {
			byMonth[month] = &monthAcc{
				point: models.MonthlyPoint{
					Month:        month,
					Entries:      1,
					Words:        e.WordCount,
					AvgSentiment: e.SentimentScore,
				},
				sum: e.SentimentScore,
			}
			order = append(order, month)
			continue
		}
		acc.point.Entries++
		acc.point.Words += e.WordCount
		acc.sum += e.SentimentScore
		// Legacy recurrence: each entry is averaged against the running
		// value, which weights recent iterations more heavily.
		acc.point.AvgSentiment = (acc.point.AvgSentiment + e.SentimentScore) / 2
	}

	out := make([]models.MonthlyPoint, 0, len(order))
	for _, month := range order {
		acc := byMonth[month]
		if useTrueMean {
			acc.point.AvgSentiment = acc.sum / float64(acc.point.Entries)
		}
		out = append(out, acc.point)
	}
	return out
}

// weeklyData emits one point per calendar day for the last 7 days,
// oldest first and today last. Days without entries carry sentiment 0.
func weeklyData(entries []models.Entry, now time.Time) []models.WeeklyPoint {
	out := make([]models.WeeklyPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dayKey := day.Format("2006-01-02")

		count := 0
		sum := 0.0
		for _, e := range entries {
			if e.CreatedAt.Format("2006-01-02") == dayKey {
				count++
				sum += e.SentimentScore
			}
		}

		sentiment := 0.0
		if count > 0 {
			sentiment = sum / float64(count)
		}
		out = append(out, models.WeeklyPoint{
			Day:       day.Format("Mon"),
			Entries:   count,
			Sentiment: sentiment,
		})
	}
	return out
}

// topWords ranks word frequency across all entry content: lowercase, strip
// punctuation, drop short words and stop words, top 20 by count. Ties keep
// first-encounter order.
func topWords(entries []models.Entry) []models.WordFrequency {
	contents := make([]string, 0, len(entries))
	for _, e := range entries {
		contents = append(contents, e.Content)
	}
	allText := strings.ToLower(strings.Join(contents, " "))
	allText = nonWordChars.ReplaceAllString(allText, "")

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, word := range strings.Fields(allText) {
		if len(word) <= 3 || stopWords[word] {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	ranked := make([]models.WordFrequency, 0, len(order))
	for _, word := range order {
		ranked = append(ranked, models.WordFrequency{Word: word, Count: counts[word]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > topWordsLimit {
		ranked = ranked[:topWordsLimit]
	}
	return ranked
}
