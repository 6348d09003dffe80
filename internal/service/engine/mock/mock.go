// Package mock provides deterministic fake engines for testing the rubric
// pipeline without a live grammar, sentiment, or embedding backend.
package mock

import (
	"context"
	"hash/fnv"

	"ai-intro-scoring-service/internal/service/engine"
	"ai-intro-scoring-service/internal/service/textmetrics"
)

// Grammar is a GrammarChecker returning a fixed error count, or a fixed
// error to simulate an unavailable engine.
type Grammar struct {
	Errors int
	Err    error
}

func (g *Grammar) Check(_ context.Context, _ string) (int, error) {
	if g.Err != nil {
		return 0, g.Err
	}
	return g.Errors, nil
}

// Sentiment is a SentimentScorer returning a fixed compound score.
type Sentiment struct {
	Score float64
	Err   error
}

func (s *Sentiment) Compound(_ context.Context, _ string) (float64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Score, nil
}

const embedDim = 64

// Embedder is an Embedder producing deterministic bag-of-words vectors.
// Texts sharing vocabulary get high cosine similarity, disjoint texts get
// low similarity, which is enough to exercise semantic-matching paths.
type Embedder struct {
	Err error
}

func (e *Embedder) Embed(_ context.Context, texts []string) ([][]float64, error) {
	if e.Err != nil {
		return nil, e.Err
	}
	out := make([][]float64, len(texts))
	for i, t := range texts {
		v := make([]float64, embedDim)
		for _, tok := range textmetrics.Tokenize(t) {
			h := fnv.New32a()
			_, _ = h.Write([]byte(tok))
			v[h.Sum32()%embedDim]++
		}
		out[i] = v
	}
	return out, nil
}

// Unavailable returns a full set of engines that all fail with
// engine.ErrUnavailable, for degradation tests.
func Unavailable() (*Grammar, *Sentiment, *Embedder) {
	return &Grammar{Err: engine.ErrUnavailable},
		&Sentiment{Err: engine.ErrUnavailable},
		&Embedder{Err: engine.ErrUnavailable}
}
