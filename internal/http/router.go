// Package http assembles the service's route table.
package http

import (
	"net/http"

	"cricket-score-service/internal/http/handlers"
)

// NewRouter maps the public routes onto the handler. The root pattern
// doubles as the catch-all; the handler serves the landing page at "/"
// and the JSON 404 everywhere else.
func NewRouter(h *handlers.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/score", h.Score)
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/", h.Home)
	return mux
}
