package server

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"cricket-score-service/internal/config"
	"cricket-score-service/internal/domain"
	"cricket-score-service/internal/metrics"
	"cricket-score-service/internal/providers/cricbuzz"
	"cricket-score-service/internal/providers/fixture"
	"cricket-score-service/internal/testutil"
)

type stubHTTPServer struct {
	addr          string
	handler       http.Handler
	listenErr     error
	shutdownErr   error
	started       chan struct{}
	shutdownCalls int
}

func (s *stubHTTPServer) ListenAndServe() error {
	if s.started != nil {
		close(s.started)
	}
	return s.listenErr
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	s.shutdownCalls++
	return s.shutdownErr
}

func (s *stubHTTPServer) Addr() string {
	return s.addr
}

func (s *stubHTTPServer) Handler() http.Handler {
	return s.handler
}

func testConfig(provider string) config.Config {
	return config.Config{
		Port:     "0",
		Provider: provider,
		Cricbuzz: config.CricbuzzConfig{BaseURL: "http://cricbuzz.test"},
		Metrics:  config.MetricsConfig{Enabled: false, Port: "0"},
	}
}

func TestSelectProvider(t *testing.T) {
	cases := []struct {
		name        string
		provider    string
		wantFixture bool
	}{
		{"fixture", "fixture", true},
		{"cricbuzz", "cricbuzz", false},
		{"empty defaults to cricbuzz", "", false},
		{"unknown falls back to cricbuzz", "espn", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := selectProvider(testConfig(tc.provider), nil)
			if _, ok := p.(*fixture.Provider); ok != tc.wantFixture {
				t.Fatalf("fixture = %v, want %v (got %T)", ok, tc.wantFixture, p)
			}
			if !tc.wantFixture {
				if _, ok := p.(*cricbuzz.Client); !ok {
					t.Fatalf("expected cricbuzz client, got %T", p)
				}
			}
		})
	}
}

func TestRunShutsDownOnCancel(t *testing.T) {
	httpStub := &stubHTTPServer{addr: ":0", started: make(chan struct{})}
	metricsStub := &stubHTTPServer{addr: ":0"}
	s := newServerWithDeps(testConfig("fixture"), nil, httpStub, metricsStub)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx, cancel)
		close(done)
	}()

	select {
	case <-httpStub.started:
	case <-time.After(2 * time.Second):
		t.Fatal("http server never started")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	if httpStub.shutdownCalls != 1 {
		t.Errorf("expected 1 http shutdown, got %d", httpStub.shutdownCalls)
	}
	if metricsStub.shutdownCalls != 1 {
		t.Errorf("expected 1 metrics shutdown, got %d", metricsStub.shutdownCalls)
	}
}

func TestRunStopsWhenServerFails(t *testing.T) {
	httpStub := &stubHTTPServer{addr: ":0", listenErr: errors.New("port in use")}
	s := newServerWithDeps(testConfig("fixture"), nil, httpStub, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		s.Run(ctx, cancel)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after server failure")
	}
	if httpStub.shutdownCalls != 1 {
		t.Errorf("expected shutdown after failure, got %d", httpStub.shutdownCalls)
	}
}

func TestGracefulShutdownFlushesTelemetry(t *testing.T) {
	httpStub := &stubHTTPServer{addr: ":0"}
	metricsStub := &stubHTTPServer{addr: ":0"}
	stopCalls := 0
	s := &Server{
		httpServer:    httpStub,
		metricsServer: metricsStub,
		metricsStop: func(ctx context.Context) error {
			stopCalls++
			return nil
		},
	}

	s.gracefulShutdown()

	if stopCalls != 1 {
		t.Errorf("expected telemetry stop, got %d calls", stopCalls)
	}
	if metricsStub.shutdownCalls != 1 || httpStub.shutdownCalls != 1 {
		t.Errorf("expected both servers shut down, got metrics=%d http=%d",
			metricsStub.shutdownCalls, httpStub.shutdownCalls)
	}
}

func TestNewServesRoutes(t *testing.T) {
	s := New(testConfig("fixture"), nil)
	handler := s.Handler()
	if handler == nil {
		t.Fatal("expected a wired handler")
	}

	rec := testutil.Serve(t, handler, "GET", "/health")
	testutil.AssertStatus(t, rec, http.StatusOK)

	rec = testutil.Serve(t, handler, "GET", "/score?id=7")
	testutil.AssertStatus(t, rec, http.StatusOK)
	var score domain.Score
	testutil.DecodeJSON(t, rec, &score)
	if score.Title != "India vs Australia, 3rd T20I" {
		t.Errorf("unexpected fixture title: %q", score.Title)
	}

	rec = testutil.Serve(t, handler, "GET", "/nope")
	testutil.AssertStatus(t, rec, http.StatusNotFound)
}

func TestBuildMetricsDisabled(t *testing.T) {
	rec, srv, stop := buildMetrics(testConfig("fixture"), nil)
	if rec == nil {
		t.Fatal("expected a recorder")
	}
	if srv != nil {
		t.Error("expected no metrics server when disabled")
	}
	if stop != nil {
		if err := stop(context.Background()); err != nil {
			t.Errorf("stop: %v", err)
		}
	}
}

func TestBuildMetricsEnabled(t *testing.T) {
	cfg := testConfig("fixture")
	cfg.Metrics = config.MetricsConfig{Enabled: true, Port: "9090", ServiceName: "test"}

	rec, srv, stop := buildMetrics(cfg, nil)
	if rec == nil {
		t.Fatal("expected a recorder")
	}
	if srv == nil {
		t.Fatal("expected a metrics server")
	}
	if srv.Addr() != ":9090" {
		t.Errorf("unexpected metrics addr: %q", srv.Addr())
	}
	if stop != nil {
		if err := stop(context.Background()); err != nil {
			t.Errorf("stop: %v", err)
		}
	}
}

func TestBuildMetricsSetupFailure(t *testing.T) {
	original := metricsSetup
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Telemetry, error) {
		return nil, errors.New("exporter exploded")
	}
	defer func() { metricsSetup = original }()

	rec, srv, stop := buildMetrics(testConfig("fixture"), nil)
	if rec == nil {
		t.Fatal("expected a fallback recorder")
	}
	if srv != nil {
		t.Error("expected no metrics server on setup failure")
	}
	if stop != nil {
		t.Error("expected no stop hook on setup failure")
	}
}
