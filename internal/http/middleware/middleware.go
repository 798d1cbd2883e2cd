// Package middleware carries the request-scoped plumbing: correlation IDs,
// request logs, metrics, and the panic boundary.
package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"cricket-score-service/internal/http/requestutil"
	"cricket-score-service/internal/logging"
	"cricket-score-service/internal/metrics"
)

// responseWriter captures the status code written by the handler.
type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// Logging assigns each request an ID, attaches a request-scoped logger to
// the context, and emits one log line and one metrics sample per request.
func Logging(logger *slog.Logger, recorder *metrics.Recorder, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := requestutil.Ensure(r)
		w.Header().Set(requestutil.Header, requestID)

		var reqLogger *slog.Logger
		if logger != nil {
			reqLogger = logger.With(
				logging.FieldRequestID, requestID,
				logging.FieldMethod, r.Method,
				logging.FieldPath, r.URL.Path,
				logging.FieldQuery, r.URL.RawQuery,
				logging.FieldClientIP, requestutil.ClientIP(r),
			)
			r = r.WithContext(logging.WithLogger(r.Context(), reqLogger))
		}

		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)

		elapsed := time.Since(start)
		logging.Info(reqLogger, "request handled",
			logging.FieldStatusCode, rw.status,
			logging.FieldDurationMS, elapsed.Milliseconds(),
		)
		recorder.RecordHTTPRequest(r.Context(), r.Method, normalizePath(r.URL.Path), rw.status, elapsed)
	})
}

// Recover turns handler panics into a JSON 500 so one bad request can
// never take the process down. Panics log through the context logger and
// carry the request's fields.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				logging.FromContext(r.Context()).Error("handler panicked", "panic", v)
				writeErrorJSON(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// normalizePath collapses unknown paths so metric label cardinality stays
// bounded no matter what callers probe.
func normalizePath(path string) string {
	switch path {
	case "/", "/score", "/health":
		return path
	default:
		return "other"
	}
}

func writeErrorJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
