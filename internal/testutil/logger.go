package testutil

import (
	"bytes"
	"log/slog"
)

// NewBufferLogger returns a JSON logger writing into a buffer so tests can
// assert on emitted fields.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), buf
}
