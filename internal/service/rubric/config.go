package rubric

// SalutationTier is one level of greeting quality. Tiers are evaluated in
// order, best first.
type SalutationTier struct {
	Name    string
	Score   int
	Phrases []string
}

// KeywordCategory is one personal-detail topic the introduction should
// cover. A category is satisfied by any of its keywords or by semantic
// similarity to its prompt.
type KeywordCategory struct {
	Name     string
	Points   int
	Keywords []string
	Prompt   string
}

// FlowTopic is one stage of the expected introduction structure, in order.
type FlowTopic struct {
	Name    string
	Phrases []string
	Prompt  string
}

// RateBand maps a words-per-minute floor to a score. Bands are evaluated in
// order, highest floor first; the first band whose floor the WPM reaches
// wins.
type RateBand struct {
	MinWPM float64
	Score  int
	Label  string
}

// Config enumerates every rubric tunable. Zero hidden globals: the Analyzer
// receives one of these at construction and never mutates it.
type Config struct {
	DefaultDurationSec float64

	FillerWords []string

	SalutationTiers         []SalutationTier
	GreetingPrompt          string
	SalutationSemanticScore int

	KeywordCategories []KeywordCategory

	FlowTopics           []FlowTopic
	FlowMissingPenalty   int
	FlowInversionPenalty int

	SpeechRateBands []RateBand

	GrammarDefaultScore   int
	SentimentDefaultScore int

	SimilarityThreshold float64
}

// DefaultConfig returns the documented rubric defaults.
func DefaultConfig() Config {
	return Config{
		DefaultDurationSec: 52,

		FillerWords: []string{
			"um", "uh", "like", "you know", "so", "actually", "basically",
			"right", "i mean", "well", "kinda", "sort of", "okay", "hmm", "ah",
		},

		SalutationTiers: []SalutationTier{
			{
				Name:  "excellent",
				Score: 5,
				Phrases: []string{
					"excited to introduce", "feeling great", "thrilled to share", "honored to be",
				},
			},
			{
				Name:  "good",
				Score: 4,
				Phrases: []string{
					"good morning", "good afternoon", "good evening", "good day", "hello everyone",
				},
			},
			{
				Name:    "normal",
				Score:   2,
				Phrases: []string{"hi", "hello", "hey"},
			},
		},
		GreetingPrompt:          "hello everyone, it is great to meet you",
		SalutationSemanticScore: 4,

		KeywordCategories: []KeywordCategory{
			{
				Name:     "name",
				Points:   5,
				Keywords: []string{"name", "myself", "i am", "i'm", "called"},
				Prompt:   "my name is",
			},
			{
				Name:     "age",
				Points:   5,
				Keywords: []string{"age", "years old", "year old"},
				Prompt:   "i am this many years old",
			},
			{
				Name:     "school",
				Points:   5,
				Keywords: []string{"school", "class", "grade", "study", "studying"},
				Prompt:   "i study at a school in this class",
			},
			{
				Name:     "family",
				Points:   5,
				Keywords: []string{"family", "mother", "father", "parents", "brother", "sister"},
				Prompt:   "my family and my parents",
			},
			{
				Name:     "hobby",
				Points:   5,
				Keywords: []string{"hobby", "hobbies", "enjoy", "free time", "passion", "playing"},
				Prompt:   "my hobbies and what i enjoy doing",
			},
			{
				Name:     "subject",
				Points:   5,
				Keywords: []string{"subject", "favorite subject", "favourite subject", "science", "math", "mathematics", "english", "history"},
				Prompt:   "my favorite subject at school",
			},
		},

		FlowTopics: []FlowTopic{
			{
				Name:    "greeting",
				Phrases: []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening"},
				Prompt:  "a greeting to open the introduction",
			},
			{
				Name:    "personal details",
				Phrases: []string{"name", "myself", "i am", "i'm", "years old", "school", "class", "family"},
				Prompt:  "personal details like name, age and school",
			},
			{
				Name:    "closing",
				Phrases: []string{"thank", "thanks", "thank you", "appreciate"},
				Prompt:  "a closing phrase thanking the audience",
			},
		},
		FlowMissingPenalty:   2,
		FlowInversionPenalty: 2,

		SpeechRateBands: []RateBand{
			{MinWPM: 161, Score: 2, Label: "Too fast"},
			{MinWPM: 141, Score: 6, Label: "Fast"},
			{MinWPM: 111, Score: 10, Label: "Ideal"},
			{MinWPM: 81, Score: 6, Label: "Slow"},
			{MinWPM: 0, Score: 2, Label: "Too slow"},
		},

		GrammarDefaultScore:   7,
		SentimentDefaultScore: 9,

		SimilarityThreshold: 0.6,
	}
}

// semanticPrompts lists every reference phrase the semantic matcher scores a
// transcript against, in a stable order.
func (c Config) semanticPrompts() []string {
	prompts := make([]string, 0, 1+len(c.KeywordCategories)+len(c.FlowTopics))
	prompts = append(prompts, c.GreetingPrompt)
	for _, cat := range c.KeywordCategories {
		prompts = append(prompts, cat.Prompt)
	}
	for _, t := range c.FlowTopics {
		prompts = append(prompts, t.Prompt)
	}
	return prompts
}
