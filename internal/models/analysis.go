// Package models defines the data structures for analysis results.
package models

// CriterionResult is the outcome of scoring a single rubric criterion.
type CriterionResult struct {
	ID       string `json:"id"`
	Score    int    `json:"score"`
	Max      int    `json:"max"`
	Feedback string `json:"feedback"`
}

// AnalysisResult is the full rubric outcome for one transcript.
type AnalysisResult struct {
	OverallScore     int               `json:"overall_score"`
	CriterionScores  map[string]int    `json:"criterion_scores"`
	DetailedFeedback map[string]string `json:"detailed_feedback"`
	WordCount        int               `json:"word_count"`
	SentenceCount    int               `json:"sentence_count"`
}

// AnalyzeRequest is the payload accepted by POST /analyze.
type AnalyzeRequest struct {
	Transcript string `json:"transcript"`
	// DurationSeconds is the known speaking duration. Zero means
	// "not supplied" and the configured default applies.
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
}
