// Package rubric scores a self-introduction transcript against the
// 8-criterion rubric and produces the final analysis result.
package rubric

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"ai-intro-scoring-service/internal/models"
	"ai-intro-scoring-service/internal/observability/logging"
	"ai-intro-scoring-service/internal/observability/metrics"
	"ai-intro-scoring-service/internal/service/engine"
	"ai-intro-scoring-service/internal/service/textmetrics"
)

// Analyzer orchestrates the text metrics, the NLP engines, and the criterion
// scorers. It holds no per-request state: the same Analyzer serves any
// number of concurrent analyses.
type Analyzer struct {
	cfg       Config
	grammar   engine.GrammarChecker
	sentiment engine.SentimentScorer
	embedder  engine.Embedder
	scorers   []Scorer
	metrics   *metrics.Metrics
	log       zerolog.Logger
}

// NewAnalyzer wires the engines into an Analyzer. Engines are shared
// references with process lifetime; the Analyzer never closes them.
func NewAnalyzer(cfg Config, grammar engine.GrammarChecker, sentiment engine.SentimentScorer, embedder engine.Embedder) *Analyzer {
	return &Analyzer{
		cfg:       cfg,
		grammar:   grammar,
		sentiment: sentiment,
		embedder:  embedder,
		scorers:   Scorers(),
		metrics:   metrics.DefaultMetrics,
		log:       logging.WithComponent("rubric"),
	}
}

// Analyze scores one transcript. durationSec is the known speaking duration;
// zero or negative means "not supplied" and the configured default applies.
// Engine failures degrade the affected criteria to their documented
// defaults; Analyze itself never fails.
func (a *Analyzer) Analyze(ctx context.Context, transcript string, durationSec float64) *models.AnalysisResult {
	start := time.Now()

	if durationSec <= 0 {
		durationSec = a.cfg.DefaultDurationSec
	}

	tm := textmetrics.Compute(transcript, a.cfg.FillerWords)
	rctx := Context{
		Tokens:          textmetrics.Tokenize(transcript),
		WordCount:       tm.WordCount,
		SentenceCount:   tm.SentenceCount,
		UniqueWordCount: tm.UniqueWordCount,
		FillerCount:     tm.FillerCount,
		TypeTokenRatio:  tm.TypeTokenRatio,
		DurationSec:     durationSec,
	}

	a.checkGrammar(ctx, transcript, &rctx)
	a.checkSentiment(ctx, transcript, &rctx)
	a.matchSemantics(ctx, transcript, &rctx)

	total := 0
	scores := make(map[string]int, len(a.scorers))
	feedback := make(map[string]string, len(a.scorers))
	for _, s := range a.scorers {
		res := s.Score(rctx, a.cfg)
		total += res.Score
		scores[res.ID] = res.Score
		feedback[res.ID] = res.Feedback
	}
	// Maxima sum to 100 already; the clamp is defensive only.
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}

	a.metrics.RecordAnalysis(total, tm.WordCount, time.Since(start).Seconds())
	a.log.Debug().
		Int("overallScore", total).
		Int("wordCount", tm.WordCount).
		Int("sentenceCount", tm.SentenceCount).
		Dur("duration", time.Since(start)).
		Msg("Transcript analyzed")

	return &models.AnalysisResult{
		OverallScore:     total,
		CriterionScores:  scores,
		DetailedFeedback: feedback,
		WordCount:        tm.WordCount,
		SentenceCount:    tm.SentenceCount,
	}
}

func (a *Analyzer) checkGrammar(ctx context.Context, transcript string, rctx *Context) {
	start := time.Now()
	count, err := a.grammar.Check(ctx, transcript)
	a.metrics.RecordEngineCall("grammar", err, time.Since(start).Seconds())
	if err != nil {
		rctx.GrammarUnknown = true
		a.log.Warn().Err(err).Msg("Grammar engine unavailable, using default score")
		return
	}
	rctx.GrammarErrors = count
}

func (a *Analyzer) checkSentiment(ctx context.Context, transcript string, rctx *Context) {
	start := time.Now()
	compound, err := a.sentiment.Compound(ctx, transcript)
	a.metrics.RecordEngineCall("sentiment", err, time.Since(start).Seconds())
	if err != nil {
		rctx.SentimentUnknown = true
		a.log.Warn().Err(err).Msg("Sentiment engine unavailable, using default score")
		return
	}
	rctx.SentimentCompound = compound
}

func (a *Analyzer) matchSemantics(ctx context.Context, transcript string, rctx *Context) {
	prompts := a.cfg.semanticPrompts()

	start := time.Now()
	vectors, err := a.embedder.Embed(ctx, append([]string{transcript}, prompts...))
	a.metrics.RecordEngineCall("embed", err, time.Since(start).Seconds())
	if err != nil {
		rctx.SemanticUnknown = true
		a.log.Warn().Err(err).Msg("Embedding engine unavailable, falling back to keyword matching")
		return
	}

	sims := make(map[string]float64, len(prompts))
	for i, p := range prompts {
		sim := engine.CosineSimilarity(vectors[0], vectors[i+1])
		if sim < 0 {
			sim = 0
		}
		sims[p] = sim
	}
	rctx.Similarity = sims
}
