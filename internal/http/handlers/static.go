package handlers

import (
	_ "embed"
	"net/http"
)

//go:embed static/index.html
var landingPage []byte

// Home serves the landing page at exactly "/". Anything else that falls
// through the route table gets the JSON 404.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(landingPage)
}
