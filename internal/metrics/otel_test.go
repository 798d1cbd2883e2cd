package metrics

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSetupDisabled(t *testing.T) {
	tel, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tel.Recorder == nil {
		t.Fatal("expected a recorder even with telemetry disabled")
	}
	if tel.Handler != nil {
		t.Error("expected no scrape handler when disabled")
	}
	if err := tel.Shutdown(context.Background()); err != nil {
		t.Errorf("shutdown on disabled telemetry: %v", err)
	}
}

func TestSetupEnabled(t *testing.T) {
	ctx := context.Background()
	tel, err := Setup(ctx, TelemetryConfig{Enabled: true, ServiceName: "cricket-score-service"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() {
		if err := tel.Shutdown(ctx); err != nil {
			t.Errorf("shutdown: %v", err)
		}
	}()

	if tel.Handler == nil {
		t.Fatal("expected a prometheus handler")
	}

	tel.Recorder.RecordHTTPRequest(ctx, "GET", "/score", 200, 12*time.Millisecond)
	tel.Recorder.RecordProviderAttempt(ctx, "cricbuzz", 34*time.Millisecond, nil)

	rec := httptest.NewRecorder()
	tel.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 200 {
		t.Fatalf("expected 200 from scrape handler, got %d", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected scrape output")
	}
}

func TestShutdownNilTelemetry(t *testing.T) {
	var tel *Telemetry
	if err := tel.Shutdown(context.Background()); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}
