package textmetrics

import (
	"reflect"
	"testing"
)

var testFillers = []string{"um", "uh", "like", "you know", "so", "i mean"}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"simple", "Hello, world!", []string{"hello", "world"}},
		{"apostrophe kept", "I'm fine", []string{"i'm", "fine"}},
		{"digits kept", "I am 12 years old.", []string{"i", "am", "12", "years", "old"}},
		{"empty", "", nil},
		{"whitespace only", "   \n\t ", nil},
		{"punctuation only", "... !!! ???", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"three sentences", "Hello world. How are you? Fine!", 3},
		{"trailing punctuation run", "Hi... there.", 2},
		{"no terminal punctuation", "hello everyone", 1},
		{"empty", "", 0},
		{"punctuation only", "...", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(Sentences(tt.text)); got != tt.want {
				t.Errorf("Sentences(%q) count = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestCompute_EmptyTranscript(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t", "?!."} {
		m := Compute(text, testFillers)
		if m != (Metrics{}) {
			t.Errorf("Compute(%q) = %+v, want zero metrics", text, m)
		}
	}
}

func TestCompute_SingleWord(t *testing.T) {
	m := Compute("Hi.", testFillers)
	if m.WordCount != 1 {
		t.Errorf("expected word count 1, got %d", m.WordCount)
	}
	if m.SentenceCount != 1 {
		t.Errorf("expected sentence count 1, got %d", m.SentenceCount)
	}
	if m.TypeTokenRatio != 1 {
		t.Errorf("expected TTR 1, got %f", m.TypeTokenRatio)
	}
}

func TestCompute_Fillers(t *testing.T) {
	// "um" once, "like" once, "you know" once as a phrase.
	m := Compute("Um, I like it, you know, a lot.", testFillers)
	if m.FillerCount != 3 {
		t.Errorf("expected 3 fillers, got %d", m.FillerCount)
	}
}

func TestCompute_TypeTokenRatio(t *testing.T) {
	m := Compute("the cat and the dog", nil)
	if m.WordCount != 5 {
		t.Errorf("expected word count 5, got %d", m.WordCount)
	}
	if m.UniqueWordCount != 4 {
		t.Errorf("expected 4 unique words, got %d", m.UniqueWordCount)
	}
	if m.TypeTokenRatio != 0.8 {
		t.Errorf("expected TTR 0.8, got %f", m.TypeTokenRatio)
	}
}

func TestCountPhrase(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		phrase string
		want   int
	}{
		{"repeated single word", "so so so", "so", 3},
		{"multiword phrase", "you know what you know", "you know", 2},
		{"no overlap across words", "snow is cold", "no", 0},
		{"case insensitive", "SO what", "so", 1},
		{"absent", "hello world", "um", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountPhrase(Tokenize(tt.text), tt.phrase)
			if got != tt.want {
				t.Errorf("CountPhrase(%q, %q) = %d, want %d", tt.text, tt.phrase, got, tt.want)
			}
		})
	}
}

func TestPhraseIndex(t *testing.T) {
	tokens := Tokenize("Well hello there, you know, goodbye.")

	if idx := PhraseIndex(tokens, "hello"); idx != 1 {
		t.Errorf("expected index 1 for 'hello', got %d", idx)
	}
	if idx := PhraseIndex(tokens, "you know"); idx != 3 {
		t.Errorf("expected index 3 for 'you know', got %d", idx)
	}
	if idx := PhraseIndex(tokens, "missing"); idx != -1 {
		t.Errorf("expected -1 for absent phrase, got %d", idx)
	}
}

func TestFirstIndexAny(t *testing.T) {
	tokens := Tokenize("my name is Asha, hello everyone")

	if idx := FirstIndexAny(tokens, []string{"hello", "name"}); idx != 1 {
		t.Errorf("expected earliest match at 1, got %d", idx)
	}
	if idx := FirstIndexAny(tokens, []string{"missing", "absent"}); idx != -1 {
		t.Errorf("expected -1 when nothing matches, got %d", idx)
	}
	if !HasAnyPhrase(tokens, []string{"hello"}) {
		t.Error("expected HasAnyPhrase to find 'hello'")
	}
	if HasAnyPhrase(tokens, []string{"goodbye"}) {
		t.Error("expected HasAnyPhrase to miss 'goodbye'")
	}
}
