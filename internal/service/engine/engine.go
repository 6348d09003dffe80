// Package engine defines the interfaces for the external NLP engines the
// rubric depends on (grammar checking, sentiment, sentence embeddings).
package engine

import (
	"context"
	"errors"
	"math"
)

// ErrUnavailable reports that an engine could not be reached, timed out, or
// returned an unusable response. Callers substitute a neutral default score
// instead of failing the analysis.
var ErrUnavailable = errors.New("engine unavailable")

// GrammarChecker counts grammatical issues in a text.
type GrammarChecker interface {
	// Check returns the number of detected grammar issues.
	Check(ctx context.Context, text string) (int, error)
}

// SentimentScorer produces a compound polarity score for a text.
type SentimentScorer interface {
	// Compound returns a polarity value in [-1, 1].
	Compound(ctx context.Context, text string) (float64, error)
}

// Embedder produces sentence embeddings for fuzzy semantic matching.
type Embedder interface {
	// Embed returns one vector per input text, all of the same dimension.
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

// CosineSimilarity returns the cosine of the angle between a and b, or 0
// when either vector is empty or zero-length.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
