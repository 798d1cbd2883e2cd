package providers

import (
	"context"
	"log/slog"
	"time"

	"cricket-score-service/internal/domain"
	"cricket-score-service/internal/logging"
	"cricket-score-service/internal/metrics"
)

// InstrumentedProvider wraps a ScoreProvider with metrics and failure logs.
type InstrumentedProvider struct {
	inner    ScoreProvider
	recorder *metrics.Recorder
	logger   *slog.Logger
}

// NewInstrumentedProvider decorates inner. recorder and logger may be nil.
func NewInstrumentedProvider(inner ScoreProvider, recorder *metrics.Recorder, logger *slog.Logger) *InstrumentedProvider {
	return &InstrumentedProvider{
		inner:    inner,
		recorder: recorder,
		logger:   logWithProvider(logger, inner.Name()),
	}
}

func (p *InstrumentedProvider) Name() string {
	return p.inner.Name()
}

// FetchScore delegates one call to the wrapped provider and records its
// outcome. Failures pass through unchanged.
func (p *InstrumentedProvider) FetchScore(ctx context.Context, matchID string) (domain.Score, error) {
	start := time.Now()
	score, err := p.inner.FetchScore(ctx, matchID)
	elapsed := time.Since(start)

	p.recorder.RecordProviderAttempt(ctx, p.inner.Name(), elapsed, err)
	if err != nil {
		logging.Warn(p.logger, "provider fetch failed",
			logging.FieldMatchID, matchID,
			logging.FieldDurationMS, elapsed.Milliseconds(),
			"error", err,
		)
	}
	return score, err
}
