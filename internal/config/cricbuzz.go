package config

const (
	envCricbuzzBaseURL   = "CRICBUZZ_BASE_URL"
	envCricbuzzUserAgent = "CRICBUZZ_USER_AGENT"

	defaultCricbuzzBaseURL   = "https://www.cricbuzz.com"
	defaultCricbuzzUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
)

// CricbuzzConfig controls how we reach the Cricbuzz site.
type CricbuzzConfig struct {
	BaseURL   string
	UserAgent string
}

func loadCricbuzz() CricbuzzConfig {
	return CricbuzzConfig{
		BaseURL:   envOrDefault(envCricbuzzBaseURL, defaultCricbuzzBaseURL),
		UserAgent: envOrDefault(envCricbuzzUserAgent, defaultCricbuzzUserAgent),
	}
}
