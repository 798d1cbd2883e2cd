// Package providers defines the upstream score source contract and the
// decorators shared by its implementations.
package providers

import (
	"context"

	"cricket-score-service/internal/domain"
)

// ScoreProvider fetches the live scoreboard for one match.
type ScoreProvider interface {
	FetchScore(ctx context.Context, matchID string) (domain.Score, error)
	Name() string
}
