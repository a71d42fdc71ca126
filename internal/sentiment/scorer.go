// Package sentiment scores post text with an external polarity model.
package sentiment

import "context"

// Scorer rates a text's polarity in [-1, 1]. Implementations wrap an
// external model; the pipeline treats a scoring failure on one record as
// neutral rather than aborting the run.
type Scorer interface {
	Score(ctx context.Context, text string) (float64, error)
}

// NeutralScorer is the degraded mode used when no model is reachable:
// every text scores 0 (Neutral). It carries no sentiment logic of its own.
type NeutralScorer struct{}

func (NeutralScorer) Score(ctx context.Context, text string) (float64, error) {
	return 0, nil
}
