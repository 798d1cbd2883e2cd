package cricbuzz

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"cricket-score-service/internal/domain"
	"cricket-score-service/internal/timeutil"
)

// extractScore reads the scoreboard fields out of a match page. It never
// fails: fields whose selectors match nothing keep the placeholder text,
// so an unrelated or reshuffled page degrades instead of erroring.
func extractScore(doc *goquery.Document) domain.Score {
	score := domain.PlaceholderScore()

	if title := extractTitle(doc); title != "" {
		score.Title = title
	}
	if update := extractUpdate(doc); update != "" {
		score.Update = update
	}
	if date := extractStartDate(doc); date != "" {
		score.MatchDate = date
	}
	if live := firstText(doc, liveScoreSelector); live != "" {
		score.LiveScore = live
	}
	if rate := firstText(doc, runRateSelector); rate != "" {
		score.RunRate = rate
	}

	return score
}

// extractUpdate walks the status selectors in priority order and returns
// the first non-empty banner text.
func extractUpdate(doc *goquery.Document) string {
	for _, selector := range statusSelectors {
		if text := firstText(doc, selector); text != "" {
			return text
		}
	}
	return ""
}

func extractTitle(doc *goquery.Document) string {
	raw := firstText(doc, titleSelector)
	if raw == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimSuffix(raw, titleSuffix))
}

func extractStartDate(doc *goquery.Document) string {
	raw, ok := doc.Find(startDateSelector).First().Attr("content")
	if !ok {
		return ""
	}
	start, err := timeutil.ParseStartDate(raw)
	if err != nil {
		return ""
	}
	return "Date: " + timeutil.FormatMatchStart(start)
}

func firstText(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().Text())
}
