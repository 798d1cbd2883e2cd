package cricbuzz

const (
	providerName = "cricbuzz"

	defaultBaseURL = "https://www.cricbuzz.com"
	scorePath      = "/live-cricket-scores/"

	// Cricbuzz serves trimmed or blocked pages to non-browser clients,
	// so requests impersonate a desktop browser.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
)
