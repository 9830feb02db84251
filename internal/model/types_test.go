package model

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisResult_Immutable(t *testing.T) {
	nouns := []string{"cat"}
	top := []WordFrequency{{Word: "cat", Count: 2}}
	r := NewAnalysisResult("a cat", map[Category][]string{Nouns: nouns}, map[Category]int{WordsCount: 2}, top)

	nouns[0] = "dog"
	top[0].Word = "dog"
	got := r.List(Nouns)
	got[0] = "bird"
	r.TopWords()[0].Count = 99

	if diff := cmp.Diff([]string{"cat"}, r.List(Nouns)); diff != "" {
		t.Errorf("nouns changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]WordFrequency{{Word: "cat", Count: 2}}, r.TopWords()); diff != "" {
		t.Errorf("top words changed (-want +got):\n%s", diff)
	}
}

func TestAnalysisResult_Missing(t *testing.T) {
	r := NewAnalysisResult("", nil, nil, nil)
	assert.NotNil(t, r.List(Adjectives))
	assert.Empty(t, r.List(Adjectives))
	assert.NotNil(t, r.TopWords())
	assert.Zero(t, r.Count(SentencesCount))
}

func TestAnalysisResult_MarshalJSON(t *testing.T) {
	r := NewAnalysisResult("Hi there", map[Category][]string{Words: {"hi", "there"}}, map[Category]int{WordsCount: 2}, nil)
	raw, err := json.Marshal(r)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	want := map[string]any{
		"adjectives":      []any{},
		"nouns":           []any{},
		"verbs":           []any{},
		"sentences count": float64(0),
		"words count":     float64(2),
		"words":           []any{"hi", "there"},
		"top_words":       []any{},
		"original_text":   "Hi there",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("json (-want +got):\n%s", diff)
	}
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []Category{Adjectives, Nouns, Verbs, SentencesCount, WordsCount, Words}, Categories)
	assert.True(t, WordsCount.IsCount())
	assert.False(t, Words.IsCount())
}

func TestClassifierDisplayName(t *testing.T) {
	assert.Equal(t, "Naive Bayes (bag of words)", NaiveBagOfWords.DisplayName())
	assert.Equal(t, "Naive Bayes (best words)", NaiveBestWords.DisplayName())
	assert.Equal(t, "SVM (Support vector machine)", SVM.DisplayName())
	assert.Equal(t, "other", Classifier("other").DisplayName())
}
