package logging

import "log/slog"

// Nil-safe wrappers so callers holding an optional logger don't need to
// guard every call site.

func Info(logger *slog.Logger, msg string, args ...any) {
	if logger == nil {
		return
	}
	logger.Info(msg, args...)
}

func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger == nil {
		return
	}
	logger.Warn(msg, args...)
}

func Error(logger *slog.Logger, msg string, args ...any) {
	if logger == nil {
		return
	}
	logger.Error(msg, args...)
}
