package metrics

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ProviderStats is the in-memory view of a single provider's activity,
// kept alongside the exported instruments for quick inspection in tests.
type ProviderStats struct {
	Calls           int64
	Errors          int64
	LastCallLatency time.Duration
}

// Recorder aggregates request and provider metrics. The zero value is not
// usable; construct one with NewRecorder or through Setup. A nil Recorder
// is safe to call, every method no-ops.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]ProviderStats

	instruments *otelInstruments
}

// NewRecorder returns a Recorder without exported instruments, enough for
// tests and for running with metrics disabled.
func NewRecorder() *Recorder {
	return &Recorder{stats: make(map[string]ProviderStats)}
}

func newRecorderWithInstruments(inst *otelInstruments) *Recorder {
	r := NewRecorder()
	r.instruments = inst
	return r
}

// RecordProviderAttempt records one upstream fetch attempt and its outcome.
func (r *Recorder) RecordProviderAttempt(ctx context.Context, provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	s := r.stats[provider]
	s.Calls++
	if err != nil {
		s.Errors++
	}
	s.LastCallLatency = duration
	r.stats[provider] = s
	r.mu.Unlock()

	if r.instruments == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(AttrProvider, provider))
	r.instruments.providerAttempts.Add(ctx, 1, attrs)
	if err != nil {
		r.instruments.providerErrors.Add(ctx, 1, attrs)
	}
	r.instruments.providerDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
}

// RecordHTTPRequest records one served request.
func (r *Recorder) RecordHTTPRequest(ctx context.Context, method, path string, status int, duration time.Duration) {
	if r == nil || r.instruments == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.String(AttrStatus, strconv.Itoa(status)),
	)
	r.instruments.httpRequests.Add(ctx, 1, attrs)
	r.instruments.httpDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
}

// Snapshot copies the per-provider stats collected so far.
func (r *Recorder) Snapshot() map[string]ProviderStats {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]ProviderStats, len(r.stats))
	for name, s := range r.stats {
		out[name] = s
	}
	return out
}
