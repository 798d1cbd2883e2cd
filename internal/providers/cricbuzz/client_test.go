package cricbuzz

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"cricket-score-service/internal/domain"
	"cricket-score-service/internal/providers"
)

func TestFetchScore(t *testing.T) {
	page, err := os.ReadFile("testdata/match_page.html")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	var requests atomic.Int64
	var gotPath, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		w.Write(page)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, UserAgent: "test-agent"}, nil)
	score, err := client.FetchScore(context.Background(), "112462")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if requests.Load() != 1 {
		t.Errorf("expected exactly one upstream request, got %d", requests.Load())
	}
	if gotPath != "/live-cricket-scores/112462" {
		t.Errorf("unexpected upstream path: %q", gotPath)
	}
	if gotAgent != "test-agent" {
		t.Errorf("unexpected user agent: %q", gotAgent)
	}
	if score.Title != "India vs Australia, 3rd T20I" {
		t.Errorf("unexpected title: %q", score.Title)
	}
	if score.LiveScore != "IND 156/4 (16.2)" {
		t.Errorf("unexpected live score: %q", score.LiveScore)
	}
}

func TestFetchScoreDefaultUserAgent(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL}, nil)
	if _, err := client.FetchScore(context.Background(), "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(gotAgent, "Mozilla/5.0") {
		t.Errorf("expected a browser user agent, got %q", gotAgent)
	}
}

func TestFetchScoreUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL}, nil)
	score, err := client.FetchScore(context.Background(), "112462")
	if !errors.Is(err, providers.ErrUpstreamFetch) {
		t.Fatalf("expected ErrUpstreamFetch, got %v", err)
	}
	if score != (domain.Score{}) {
		t.Errorf("expected zero score on failure, got %+v", score)
	}
}

func TestFetchScoreNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(Config{BaseURL: srv.URL}, nil)
	if _, err := client.FetchScore(context.Background(), "112462"); !errors.Is(err, providers.ErrUpstreamFetch) {
		t.Fatalf("expected ErrUpstreamFetch, got %v", err)
	}
}

func TestFetchScoreDegradesOnUnrelatedPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>maintenance</p></body></html>"))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL}, nil)
	score, err := client.FetchScore(context.Background(), "112462")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != domain.PlaceholderScore() {
		t.Errorf("expected full fallback score, got %+v", score)
	}
}

func TestClientName(t *testing.T) {
	if got := NewClient(Config{}, nil).Name(); got != "cricbuzz" {
		t.Errorf("unexpected provider name: %q", got)
	}
}
