// Package parse validates raw service payloads and turns them into model types.
//
// Payloads are inspected with gjson before anything is decoded, so a missing
// wrapper key or a value of the wrong JSON type is reported with its path.
package parse

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/Alfex4936/nlpdash/internal/model"
)

// ErrMalformedResponse signals a payload missing expected keys or shape.
var ErrMalformedResponse = errors.New("parse: malformed response")

// Shape tags the endpoint a payload came from.
type Shape string

const (
	ShapeAnalysis   Shape = "analysis"
	ShapeSpellCheck Shape = "spellcheck"
	ShapeSentiment  Shape = "sentiment"
	ShapeMessage    Shape = "message"
	ShapeTranscript Shape = "transcript"
)

const (
	keyOriginal   = "original_text"
	keyAnalysis   = "text_analysis"
	keySpellCheck = "spell_check"
	keySentiment  = "classifiers"
	keyTopWords   = "most_common_10"
)

// Parse dispatches raw to the decoder for shape.
// The concrete result types are *model.AnalysisResult, *model.SpellCheckResult,
// *model.SentimentResponse and string (message, transcript).
func Parse(raw []byte, shape Shape) (any, error) {
	switch shape {
	case ShapeAnalysis:
		return Analysis(raw)
	case ShapeSpellCheck:
		return SpellCheck(raw)
	case ShapeSentiment:
		return Sentiment(raw)
	case ShapeMessage:
		return Message(raw), nil
	case ShapeTranscript:
		return Transcript(raw)
	default:
		return nil, fmt.Errorf("parse: unknown shape %q", shape)
	}
}

// Analysis decodes {"text_analysis": {...}}.
// Absent categories and an absent most_common_10 become empty values.
func Analysis(raw []byte) (*model.AnalysisResult, error) {
	root, err := object(raw)
	if err != nil {
		return nil, err
	}
	ta := root.Get(keyAnalysis)
	if !ta.IsObject() {
		return nil, malformed(keyAnalysis, "object", ta)
	}

	lists := make(map[model.Category][]string)
	counts := make(map[model.Category]int)
	for _, c := range model.Categories {
		v := ta.Get(escape(string(c)))
		if !v.Exists() || v.Type == gjson.Null {
			continue
		}
		path := keyAnalysis + "." + string(c)
		if c.IsCount() {
			n, err := integer(path, v)
			if err != nil {
				return nil, err
			}
			counts[c] = n
			continue
		}
		words, err := stringList(path, v)
		if err != nil {
			return nil, err
		}
		lists[c] = words
	}

	top, err := topWords(ta.Get(keyTopWords))
	if err != nil {
		return nil, err
	}

	original, err := optionalString(root, keyOriginal)
	if err != nil {
		return nil, err
	}
	return model.NewAnalysisResult(original, lists, counts, top), nil
}

// SpellCheck decodes {"spell_check": {"word": ["suggestion", ...]}}.
// Keys are lowercased.
func SpellCheck(raw []byte) (*model.SpellCheckResult, error) {
	root, err := object(raw)
	if err != nil {
		return nil, err
	}
	sc := root.Get(keySpellCheck)
	if !sc.IsObject() {
		return nil, malformed(keySpellCheck, "object", sc)
	}

	out := &model.SpellCheckResult{Suggestions: make(map[string][]string)}
	sc.ForEach(func(k, v gjson.Result) bool {
		var words []string
		words, err = stringList(keySpellCheck+"."+k.String(), v)
		if err != nil {
			return false
		}
		out.Suggestions[strings.ToLower(k.String())] = words
		return true
	})
	if err != nil {
		return nil, err
	}

	if out.OriginalText, err = optionalString(root, keyOriginal); err != nil {
		return nil, err
	}
	return out, nil
}

// Sentiment decodes {"classifiers": {"svm": [0.1, ...], ...}}.
// Which classifiers must be present is left to the aggregator.
func Sentiment(raw []byte) (*model.SentimentResponse, error) {
	root, err := object(raw)
	if err != nil {
		return nil, err
	}
	cl := root.Get(keySentiment)
	if !cl.IsObject() {
		return nil, malformed(keySentiment, "object", cl)
	}

	out := &model.SentimentResponse{Scores: make(map[model.Classifier][]float64)}
	cl.ForEach(func(k, v gjson.Result) bool {
		path := keySentiment + "." + k.String()
		if !v.IsArray() {
			err = malformed(path, "array", v)
			return false
		}
		scores := make([]float64, 0, len(v.Array()))
		for i, s := range v.Array() {
			if s.Type != gjson.Number {
				err = malformed(fmt.Sprintf("%s.%d", path, i), "number", s)
				return false
			}
			scores = append(scores, s.Float())
		}
		out.Scores[model.Classifier(k.String())] = scores
		return true
	})
	if err != nil {
		return nil, err
	}

	if out.OriginalText, err = optionalString(root, keyOriginal); err != nil {
		return nil, err
	}
	return out, nil
}

/***----- private -----***/

func object(raw []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, fmt.Errorf("%w: invalid JSON", ErrMalformedResponse)
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return gjson.Result{}, malformed("$", "object", root)
	}
	return root, nil
}

func topWords(v gjson.Result) ([]model.WordFrequency, error) {
	if !v.Exists() || v.Type == gjson.Null {
		return []model.WordFrequency{}, nil
	}
	path := keyAnalysis + "." + keyTopWords
	if !v.IsArray() {
		return nil, malformed(path, "array", v)
	}
	items := v.Array()
	out := make([]model.WordFrequency, 0, len(items))
	for i, pair := range items {
		p := pair.Array()
		if !pair.IsArray() || len(p) != 2 || p[0].Type != gjson.String {
			return nil, malformed(fmt.Sprintf("%s.%d", path, i), "[word, count]", pair)
		}
		n, err := integer(fmt.Sprintf("%s.%d.1", path, i), p[1])
		if err != nil {
			return nil, err
		}
		out = append(out, model.WordFrequency{Word: p[0].String(), Count: n})
	}
	return out, nil
}

func integer(path string, v gjson.Result) (int, error) {
	if v.Type != gjson.Number {
		return 0, malformed(path, "number", v)
	}
	f := v.Float()
	if f != math.Trunc(f) || f < 0 {
		return 0, malformed(path, "non-negative integer", v)
	}
	return int(v.Int()), nil
}

// stringList decodes an array of JSON strings.
func stringList(path string, v gjson.Result) ([]string, error) {
	if !v.IsArray() {
		return nil, malformed(path, "array", v)
	}
	items := v.Array()
	out := make([]string, 0, len(items))
	for i, s := range items {
		if s.Type != gjson.String {
			return nil, malformed(fmt.Sprintf("%s.%d", path, i), "string", s)
		}
		out = append(out, s.String())
	}
	return out, nil
}

func optionalString(root gjson.Result, key string) (string, error) {
	v := root.Get(key)
	if !v.Exists() || v.Type == gjson.Null {
		return "", nil
	}
	if v.Type != gjson.String {
		return "", malformed(key, "string", v)
	}
	return v.String(), nil
}

func malformed(path, want string, got gjson.Result) error {
	if !got.Exists() {
		return fmt.Errorf("%w: %s is missing", ErrMalformedResponse, path)
	}
	return fmt.Errorf("%w: %s: want %s, got %s", ErrMalformedResponse, path, want, got.Type)
}

// escape quotes gjson path metacharacters in a literal key.
func escape(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '!', '=', '<', '>', '%', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
