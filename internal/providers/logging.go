package providers

import (
	"log/slog"

	"cricket-score-service/internal/logging"
)

// logWithProvider tags a logger with the provider name, tolerating nil.
func logWithProvider(logger *slog.Logger, name string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(logging.FieldProvider, name)
}
