package rubric

import (
	"fmt"
	"strings"

	"ai-intro-scoring-service/internal/models"
	"ai-intro-scoring-service/internal/service/textmetrics"
)

// Criterion identifiers, fixed keys of the result maps.
const (
	CriterionSalutation = "salutation"
	CriterionKeywords   = "keyword_presence"
	CriterionFlow       = "flow"
	CriterionSpeechRate = "speech_rate"
	CriterionGrammar    = "grammar"
	CriterionVocabulary = "vocabulary"
	CriterionClarity    = "clarity"
	CriterionEngagement = "engagement"
)

// Per-criterion maxima. They sum to 100 by construction; the overall score
// is the plain sum of sub-scores with no renormalization.
const (
	MaxSalutation = 5
	MaxKeywords   = 30
	MaxFlow       = 5
	MaxSpeechRate = 10
	MaxGrammar    = 10
	MaxVocabulary = 10
	MaxClarity    = 15
	MaxEngagement = 15
)

// Scorer scores one rubric criterion from the shared analysis context.
type Scorer interface {
	ID() string
	Max() int
	Score(ctx Context, cfg Config) models.CriterionResult
}

// Scorers returns the fixed, ordered set of criterion scorers.
func Scorers() []Scorer {
	return []Scorer{
		salutationScorer{},
		keywordScorer{},
		flowScorer{},
		speechRateScorer{},
		grammarScorer{},
		vocabularyScorer{},
		clarityScorer{},
		engagementScorer{},
	}
}

func result(id string, score, max int, desc string) models.CriterionResult {
	if score < 0 {
		score = 0
	}
	if score > max {
		score = max
	}
	return models.CriterionResult{
		ID:       id,
		Score:    score,
		Max:      max,
		Feedback: fmt.Sprintf("Score: %d/%d - %s", score, max, desc),
	}
}

type salutationScorer struct{}

func (salutationScorer) ID() string { return CriterionSalutation }
func (salutationScorer) Max() int   { return MaxSalutation }

func (s salutationScorer) Score(ctx Context, cfg Config) models.CriterionResult {
	for _, tier := range cfg.SalutationTiers {
		if textmetrics.HasAnyPhrase(ctx.Tokens, tier.Phrases) {
			return result(s.ID(), tier.Score, MaxSalutation,
				fmt.Sprintf("Used %s level salutation", tier.Name))
		}
	}
	if ctx.SimilarTo(cfg.GreetingPrompt, cfg.SimilarityThreshold) {
		return result(s.ID(), cfg.SalutationSemanticScore, MaxSalutation,
			"Greeting detected by semantic match")
	}
	return result(s.ID(), 0, MaxSalutation, "No appropriate salutation found")
}

type keywordScorer struct{}

func (keywordScorer) ID() string { return CriterionKeywords }
func (keywordScorer) Max() int   { return MaxKeywords }

func (s keywordScorer) Score(ctx Context, cfg Config) models.CriterionResult {
	total := 0
	var matched, missing []string
	for _, cat := range cfg.KeywordCategories {
		hit := textmetrics.HasAnyPhrase(ctx.Tokens, cat.Keywords) ||
			ctx.SimilarTo(cat.Prompt, cfg.SimilarityThreshold)
		if hit {
			total += cat.Points
			matched = append(matched, cat.Name)
		} else {
			missing = append(missing, cat.Name)
		}
	}

	var desc string
	switch {
	case len(missing) == 0:
		desc = "Includes all essential personal details"
	case len(matched) == 0:
		desc = "No personal details detected"
	default:
		desc = fmt.Sprintf("Mentions %s; missing %s",
			strings.Join(matched, ", "), strings.Join(missing, ", "))
	}
	return result(s.ID(), total, MaxKeywords, desc)
}

type flowScorer struct{}

func (flowScorer) ID() string { return CriterionFlow }
func (flowScorer) Max() int   { return MaxFlow }

func (s flowScorer) Score(ctx Context, cfg Config) models.CriterionResult {
	if ctx.SentenceCount < 2 {
		return result(s.ID(), 0, MaxFlow, "Too short to establish an introduction flow")
	}

	score := MaxFlow
	inversions := 0
	prev := -1
	var missing []string
	for _, topic := range cfg.FlowTopics {
		idx := textmetrics.FirstIndexAny(ctx.Tokens, topic.Phrases)
		if idx < 0 {
			// Present only semantically: counts as covered, but carries no
			// position for the ordering check.
			if ctx.SimilarTo(topic.Prompt, cfg.SimilarityThreshold) {
				continue
			}
			missing = append(missing, topic.Name)
			score -= cfg.FlowMissingPenalty
			continue
		}
		if prev >= 0 && idx < prev {
			inversions++
			score -= cfg.FlowInversionPenalty
		}
		prev = idx
	}

	var desc string
	switch {
	case len(missing) == 0 && inversions == 0:
		desc = "Proper introduction structure"
	case len(missing) > 0 && inversions == 0:
		desc = fmt.Sprintf("Missing %s", strings.Join(missing, ", "))
	case len(missing) == 0:
		desc = "Topics appear out of the expected order"
	default:
		desc = fmt.Sprintf("Missing %s; topics out of the expected order",
			strings.Join(missing, ", "))
	}
	return result(s.ID(), score, MaxFlow, desc)
}

type speechRateScorer struct{}

func (speechRateScorer) ID() string { return CriterionSpeechRate }
func (speechRateScorer) Max() int   { return MaxSpeechRate }

func (s speechRateScorer) Score(ctx Context, cfg Config) models.CriterionResult {
	wpm := 0.0
	if ctx.DurationSec > 0 {
		wpm = float64(ctx.WordCount) / (ctx.DurationSec / 60)
	}
	for _, band := range cfg.SpeechRateBands {
		if wpm >= band.MinWPM {
			return result(s.ID(), band.Score, MaxSpeechRate,
				fmt.Sprintf("%s pacing (%.0f WPM)", band.Label, wpm))
		}
	}
	return result(s.ID(), 0, MaxSpeechRate, fmt.Sprintf("Unscored pacing (%.0f WPM)", wpm))
}

type grammarScorer struct{}

func (grammarScorer) ID() string { return CriterionGrammar }
func (grammarScorer) Max() int   { return MaxGrammar }

func (s grammarScorer) Score(ctx Context, cfg Config) models.CriterionResult {
	if ctx.GrammarUnknown {
		return result(s.ID(), cfg.GrammarDefaultScore, MaxGrammar,
			"Grammar check unavailable - default score applied")
	}

	errorsPer100 := 0.0
	if ctx.WordCount > 0 {
		errorsPer100 = float64(ctx.GrammarErrors) * 100 / float64(ctx.WordCount)
	}

	var score int
	switch {
	case errorsPer100 <= 1:
		score = 10
	case errorsPer100 <= 3:
		score = 8
	case errorsPer100 <= 5:
		score = 6
	case errorsPer100 <= 7:
		score = 4
	default:
		score = 2
	}
	return result(s.ID(), score, MaxGrammar,
		fmt.Sprintf("Language accuracy (%d issues found)", ctx.GrammarErrors))
}

type vocabularyScorer struct{}

func (vocabularyScorer) ID() string { return CriterionVocabulary }
func (vocabularyScorer) Max() int   { return MaxVocabulary }

func (s vocabularyScorer) Score(ctx Context, _ Config) models.CriterionResult {
	if ctx.WordCount == 0 {
		return result(s.ID(), 2, MaxVocabulary, "Not enough speech to judge word variety")
	}

	var score int
	switch ttr := ctx.TypeTokenRatio; {
	case ttr >= 0.9:
		score = 10
	case ttr >= 0.7:
		score = 8
	case ttr >= 0.5:
		score = 6
	case ttr >= 0.3:
		score = 4
	default:
		score = 2
	}
	return result(s.ID(), score, MaxVocabulary,
		fmt.Sprintf("Word variety (TTR %.2f)", ctx.TypeTokenRatio))
}

type clarityScorer struct{}

func (clarityScorer) ID() string { return CriterionClarity }
func (clarityScorer) Max() int   { return MaxClarity }

func (s clarityScorer) Score(ctx Context, _ Config) models.CriterionResult {
	if ctx.WordCount == 0 {
		return result(s.ID(), 3, MaxClarity, "Not enough speech to judge clarity")
	}

	fillerRate := float64(ctx.FillerCount) * 100 / float64(ctx.WordCount)

	var score int
	switch {
	case fillerRate <= 3:
		score = 15
	case fillerRate <= 6:
		score = 12
	case fillerRate <= 9:
		score = 9
	case fillerRate <= 12:
		score = 6
	default:
		score = 3
	}

	desc := "Clear expression with no filler words"
	if ctx.FillerCount > 0 {
		desc = fmt.Sprintf("%d filler words detected", ctx.FillerCount)
	}
	return result(s.ID(), score, MaxClarity, desc)
}

type engagementScorer struct{}

func (engagementScorer) ID() string { return CriterionEngagement }
func (engagementScorer) Max() int   { return MaxEngagement }

func (s engagementScorer) Score(ctx Context, cfg Config) models.CriterionResult {
	if ctx.SentimentUnknown {
		return result(s.ID(), cfg.SentimentDefaultScore, MaxEngagement,
			"Sentiment check unavailable - default score applied")
	}

	var score int
	var desc string
	switch c := ctx.SentimentCompound; {
	case c >= 0.5:
		score, desc = 15, "Very positive tone"
	case c >= 0.2:
		score, desc = 12, "Positive tone"
	case c >= 0:
		score, desc = 9, "Neutral tone"
	case c >= -0.3:
		score, desc = 6, "Slightly negative tone"
	default:
		score, desc = 3, "Negative tone"
	}
	return result(s.ID(), score, MaxEngagement, desc)
}
