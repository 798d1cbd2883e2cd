package domain

// StatsPlaceholder is the fallback text used for any scorecard field whose
// source data cannot be extracted from the upstream page.
const StatsPlaceholder = "Match Stats will Update Soon"

// Score is the canonical match scorecard exposed by the service.
type Score struct {
	Title     string `json:"title"`
	Update    string `json:"update"`
	MatchDate string `json:"matchDate"`
	LiveScore string `json:"livescore"`
	RunRate   string `json:"runrate"`
}

// PlaceholderScore returns a Score with every field set to the fallback text.
func PlaceholderScore() Score {
	return Score{
		Title:     StatsPlaceholder,
		Update:    StatsPlaceholder,
		MatchDate: StatsPlaceholder,
		LiveScore: StatsPlaceholder,
		RunRate:   StatsPlaceholder,
	}
}
