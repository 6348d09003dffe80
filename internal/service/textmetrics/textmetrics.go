// Package textmetrics computes pure lexical measurements over a transcript.
// All functions are deterministic and allocate-only; nothing here talks to
// an external engine.
package textmetrics

import (
	"strings"
	"unicode"
)

// Metrics holds the lexical measurements for one transcript.
type Metrics struct {
	WordCount       int
	SentenceCount   int
	UniqueWordCount int
	FillerCount     int
	TypeTokenRatio  float64
}

// Compute measures the transcript. An empty or whitespace-only transcript
// yields the zero Metrics value.
func Compute(text string, fillerWords []string) Metrics {
	tokens := Tokenize(text)

	m := Metrics{
		WordCount:     len(tokens),
		SentenceCount: len(Sentences(text)),
	}
	if len(tokens) == 0 {
		return m
	}

	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		seen[t] = struct{}{}
	}
	m.UniqueWordCount = len(seen)
	m.TypeTokenRatio = float64(m.UniqueWordCount) / float64(m.WordCount)

	for _, f := range fillerWords {
		m.FillerCount += CountPhrase(tokens, f)
	}
	return m
}

// Tokenize splits text into lowercase word tokens. A token is a run of
// letters, digits, and apostrophes; everything else separates tokens. The
// same token stream feeds word count, WPM, TTR, and phrase matching so the
// measurements stay consistent with each other.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

// Sentences splits text on sentence-terminal punctuation, discarding empty
// fragments.
func Sentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// CountPhrase counts non-overlapping whole-word occurrences of phrase in the
// token stream. Multi-word phrases ("you know") match consecutive tokens.
func CountPhrase(tokens []string, phrase string) int {
	p := Tokenize(phrase)
	if len(p) == 0 {
		return 0
	}
	n := 0
	for i := 0; i+len(p) <= len(tokens); {
		if matchAt(tokens, i, p) {
			n++
			i += len(p)
		} else {
			i++
		}
	}
	return n
}

// PhraseIndex returns the token index of the first whole-word occurrence of
// phrase, or -1 when absent.
func PhraseIndex(tokens []string, phrase string) int {
	p := Tokenize(phrase)
	if len(p) == 0 {
		return -1
	}
	for i := 0; i+len(p) <= len(tokens); i++ {
		if matchAt(tokens, i, p) {
			return i
		}
	}
	return -1
}

// FirstIndexAny returns the smallest PhraseIndex across phrases, or -1 when
// none occur.
func FirstIndexAny(tokens []string, phrases []string) int {
	best := -1
	for _, ph := range phrases {
		if idx := PhraseIndex(tokens, ph); idx >= 0 && (best < 0 || idx < best) {
			best = idx
		}
	}
	return best
}

// HasAnyPhrase reports whether any of the phrases occurs in the token stream.
func HasAnyPhrase(tokens []string, phrases []string) bool {
	return FirstIndexAny(tokens, phrases) >= 0
}

func matchAt(tokens []string, i int, phrase []string) bool {
	for j, w := range phrase {
		if tokens[i+j] != w {
			return false
		}
	}
	return true
}
