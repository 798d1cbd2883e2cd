// Package cricbuzz fetches live match pages from cricbuzz.com and scrapes
// the scoreboard fields out of their markup.
package cricbuzz

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"cricket-score-service/internal/domain"
	"cricket-score-service/internal/logging"
	"cricket-score-service/internal/providers"
)

// Config carries the upstream settings. Zero values fall back to the
// production site and a desktop browser user agent.
type Config struct {
	BaseURL   string
	UserAgent string
}

// Client scrapes live scores from Cricbuzz match pages.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

// NewClient builds a Cricbuzz client. logger may be nil.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	if logger != nil {
		logger = logger.With(logging.FieldProvider, providerName)
	}

	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("User-Agent", userAgent),
		logger: logger,
	}
}

func (c *Client) Name() string {
	return providerName
}

// FetchScore retrieves the match page and extracts the scoreboard from it.
// Transport failures and non-200 responses surface as ErrUpstreamFetch;
// the underlying cause is logged here and not exposed to callers.
func (c *Client) FetchScore(ctx context.Context, matchID string) (domain.Score, error) {
	resp, err := c.http.R().SetContext(ctx).Get(scorePath + matchID)
	if err != nil {
		logging.Warn(c.logger, "match page request failed",
			logging.FieldMatchID, matchID,
			"error", err,
		)
		return domain.Score{}, providers.ErrUpstreamFetch
	}
	if resp.StatusCode() != http.StatusOK {
		logging.Warn(c.logger, "match page returned unexpected status",
			logging.FieldMatchID, matchID,
			logging.FieldStatusCode, resp.StatusCode(),
		)
		return domain.Score{}, providers.ErrUpstreamFetch
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		// Extraction is fail-soft: an unparseable page degrades to the
		// placeholder scoreboard, same as a page with no matching markup.
		logging.Warn(c.logger, "match page parse failed",
			logging.FieldMatchID, matchID,
			"error", err,
		)
		return domain.PlaceholderScore(), nil
	}

	return extractScore(doc), nil
}
