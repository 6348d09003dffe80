package rubric

// Context is the read-only bundle of derived signals one analysis works
// from. It is built once per transcript by the Analyzer, shared by every
// criterion scorer, and discarded when the result is returned.
type Context struct {
	Tokens []string

	WordCount       int
	SentenceCount   int
	UniqueWordCount int
	FillerCount     int
	TypeTokenRatio  float64

	DurationSec float64

	GrammarErrors  int
	GrammarUnknown bool

	SentimentCompound float64
	SentimentUnknown  bool

	// Similarity maps each reference prompt to a semantic similarity in
	// [0, 1]. Empty when the embedding engine was unavailable.
	Similarity      map[string]float64
	SemanticUnknown bool
}

// SimilarTo reports whether the transcript is semantically close to the
// given prompt. Always false when the embedding engine was unavailable, so
// callers fall back to keyword matching alone.
func (c Context) SimilarTo(prompt string, threshold float64) bool {
	if c.SemanticUnknown {
		return false
	}
	return c.Similarity[prompt] >= threshold
}
