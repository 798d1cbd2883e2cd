package server

import (
	"log/slog"

	"cricket-score-service/internal/config"
	"cricket-score-service/internal/providers"
	"cricket-score-service/internal/providers/cricbuzz"
	"cricket-score-service/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.ScoreProvider {
	switch cfg.Provider {
	case "fixture":
		return fixture.New()
	case "cricbuzz", "":
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to cricbuzz", slog.String("provider", cfg.Provider))
		}
	}
	return cricbuzz.NewClient(cricbuzz.Config{
		BaseURL:   cfg.Cricbuzz.BaseURL,
		UserAgent: cfg.Cricbuzz.UserAgent,
	}, logger)
}
