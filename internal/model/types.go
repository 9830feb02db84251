package model

import (
	"encoding/json"
	"slices"
)

// Category names one entry of the service's lexical analysis.
type Category string

const (
	Adjectives     Category = "adjectives"
	Nouns          Category = "nouns"
	Verbs          Category = "verbs"
	SentencesCount Category = "sentences count"
	WordsCount     Category = "words count"
	Words          Category = "words"
)

// Categories lists every category in display order.
var Categories = []Category{Adjectives, Nouns, Verbs, SentencesCount, WordsCount, Words}

// IsCount reports whether the category carries a number instead of a word list.
func (c Category) IsCount() bool { return c == SentencesCount || c == WordsCount }

// WordFrequency is one (word, frequency) pair of the top-words list.
type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// AnalysisResult is the parsed text_analysis payload.
// It is immutable: every accessor hands out a copy.
type AnalysisResult struct {
	original string
	lists    map[Category][]string
	counts   map[Category]int
	topWords []WordFrequency
}

// NewAnalysisResult copies its inputs into a new AnalysisResult.
// topWords keeps the order supplied by the service (descending frequency).
func NewAnalysisResult(original string, lists map[Category][]string, counts map[Category]int, topWords []WordFrequency) *AnalysisResult {
	r := &AnalysisResult{
		original: original,
		lists:    make(map[Category][]string, len(lists)),
		counts:   make(map[Category]int, len(counts)),
		topWords: slices.Clone(topWords),
	}
	for k, v := range lists {
		r.lists[k] = slices.Clone(v)
	}
	for k, v := range counts {
		r.counts[k] = v
	}
	if r.topWords == nil {
		r.topWords = []WordFrequency{}
	}
	return r
}

// OriginalText is the text the service echoed back ("" if absent).
func (r *AnalysisResult) OriginalText() string { return r.original }

// List returns the words of a list category (never nil).
func (r *AnalysisResult) List(c Category) []string {
	out := slices.Clone(r.lists[c])
	if out == nil {
		out = []string{}
	}
	return out
}

// Count returns the value of a count category.
func (r *AnalysisResult) Count(c Category) int { return r.counts[c] }

// TopWords returns the most frequent words in service order (never nil).
func (r *AnalysisResult) TopWords() []WordFrequency { return slices.Clone(r.topWords) }

// MarshalJSON renders the result with the service's own key names.
func (r *AnalysisResult) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(Categories)+2)
	for _, c := range Categories {
		if c.IsCount() {
			out[string(c)] = r.Count(c)
		} else {
			out[string(c)] = r.List(c)
		}
	}
	out["top_words"] = r.TopWords()
	if r.original != "" {
		out["original_text"] = r.original
	}
	return json.Marshal(out)
}

// SpellCheckResult maps a lowercased word to its suggestions.
// The first suggestion is canonical and may equal the word itself.
type SpellCheckResult struct {
	OriginalText string              `json:"original_text,omitempty"`
	Suggestions  map[string][]string `json:"spell_check"`
}

// CorrectionPair is one word whose top suggestion differs from the original.
type CorrectionPair struct {
	Original     string   `json:"original"`
	Suggested    string   `json:"suggested"`
	Alternatives []string `json:"alternatives,omitempty"` // remaining suggestions
	Distance     int      `json:"distance"`               // Levenshtein(original, suggested)
}

// Classifier names one sentiment model of the ensemble.
type Classifier string

const (
	NaiveBagOfWords Classifier = "naive_bag_of_words"
	NaiveBestWords  Classifier = "naive_best_words"
	SVM             Classifier = "svm"
)

// Classifiers is the fixed presentation order.
var Classifiers = []Classifier{NaiveBagOfWords, NaiveBestWords, SVM}

var classifierNames = map[Classifier]string{
	NaiveBagOfWords: "Naive Bayes (bag of words)",
	NaiveBestWords:  "Naive Bayes (best words)",
	SVM:             "SVM (Support vector machine)",
}

// DisplayName is the human-readable classifier name.
func (c Classifier) DisplayName() string {
	if n, ok := classifierNames[c]; ok {
		return n
	}
	return string(c)
}

// SentimentResponse holds per-classifier probability scores for "pos".
type SentimentResponse struct {
	OriginalText string                   `json:"original_text,omitempty"`
	Scores       map[Classifier][]float64 `json:"classifiers"`
}

// Label is the winning sentiment class.
type Label string

const (
	Positive Label = "pos"
	Negative Label = "neg"
)

// Verdict is the aggregated outcome of one classifier.
type Verdict struct {
	Classifier Classifier `json:"classifier"`
	Label      Label      `json:"label"`
	Confidence float64    `json:"confidence"` // always in [0.5, 1]
}

// ChartPoint is one slice of the word-frequency chart.
type ChartPoint struct {
	Value        int     `json:"y"`
	Label        string  `json:"legendText"`
	TooltipLabel string  `json:"indexLabel"`
	Percent      float64 `json:"percent"`
}

// File is a single file handed to the upload endpoints.
type File struct {
	Name string
	Data []byte
}
