// Package handlers implements the service's HTTP endpoints.
package handlers

import (
	"errors"
	"net/http"

	"cricket-score-service/internal/logging"
	"cricket-score-service/internal/providers"
)

// Handler serves the score API backed by one upstream provider.
type Handler struct {
	provider providers.ScoreProvider
}

func New(provider providers.ScoreProvider) *Handler {
	return &Handler{provider: provider}
}

// Score handles GET /score?id=<match id>.
func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	matchID := r.URL.Query().Get("id")
	if matchID == "" {
		writeError(w, http.StatusBadRequest, "Match ID is required")
		return
	}

	score, err := h.provider.FetchScore(r.Context(), matchID)
	if err != nil {
		logger := logging.FromContext(r.Context())
		if errors.Is(err, providers.ErrUpstreamFetch) {
			logger.Warn("score fetch failed", logging.FieldMatchID, matchID)
			writeError(w, http.StatusBadGateway, "Failed to fetch match data")
			return
		}
		logger.Error("score lookup failed", logging.FieldMatchID, matchID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, score)
}

type healthResponse struct {
	Status string `json:"status"`
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// NotFound is the catch-all for unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Resource not found")
}
