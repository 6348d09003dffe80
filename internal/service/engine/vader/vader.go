// Package vader scores sentiment in process using the VADER lexicon.
package vader

import (
	"context"

	"github.com/jonreiter/govader"
)

// Scorer implements engine.SentimentScorer. The underlying analyzer is a
// read-only lexicon, so one Scorer is safe for concurrent use.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// New builds the VADER analyzer. Loading the lexicon happens once here, at
// process start.
func New() *Scorer {
	return &Scorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Compound returns the VADER compound polarity in [-1, 1]. It is
// deterministic for identical input and never unavailable.
func (s *Scorer) Compound(_ context.Context, text string) (float64, error) {
	return s.analyzer.PolarityScores(text).Compound, nil
}
