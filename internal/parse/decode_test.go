package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alfex4936/nlpdash/internal/model"
)

const analysisBody = `{
	"original_text": "The cat sat. The cat ran.",
	"text_analysis": {
		"adjectives": [],
		"nouns": ["cat"],
		"verbs": ["sat", "ran"],
		"sentences count": 2,
		"words count": 4,
		"words": ["the", "cat", "sat", "cat", "ran"],
		"most_common_10": [["the", 2], ["cat", 2], ["sat", 1], ["ran", 1]]
	}
}`

func TestAnalysis(t *testing.T) {
	res, err := Analysis([]byte(analysisBody))
	require.NoError(t, err)

	assert.Equal(t, "The cat sat. The cat ran.", res.OriginalText())
	assert.Equal(t, []string{"cat"}, res.List(model.Nouns))
	assert.Equal(t, []string{"sat", "ran"}, res.List(model.Verbs))
	assert.Equal(t, []string{}, res.List(model.Adjectives))
	assert.Equal(t, 2, res.Count(model.SentencesCount))
	assert.Equal(t, 4, res.Count(model.WordsCount))
	assert.Equal(t, []model.WordFrequency{
		{Word: "the", Count: 2},
		{Word: "cat", Count: 2},
		{Word: "sat", Count: 1},
		{Word: "ran", Count: 1},
	}, res.TopWords())
}

func TestAnalysis_MissingOptionalFields(t *testing.T) {
	res, err := Analysis([]byte(`{"text_analysis": {"words count": 0}}`))
	require.NoError(t, err)

	assert.NotNil(t, res.TopWords())
	assert.Empty(t, res.TopWords())
	assert.Empty(t, res.List(model.Words))
	assert.Equal(t, "", res.OriginalText())
}

func TestAnalysis_ResultIsImmutable(t *testing.T) {
	res, err := Analysis([]byte(analysisBody))
	require.NoError(t, err)

	nouns := res.List(model.Nouns)
	nouns[0] = "dog"
	top := res.TopWords()
	top[0].Word = "a"

	assert.Equal(t, []string{"cat"}, res.List(model.Nouns))
	assert.Equal(t, "the", res.TopWords()[0].Word)
}

func TestAnalysis_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"text_analysis":`},
		{"not an object", `["text_analysis"]`},
		{"missing wrapper", `{"original_text": "x"}`},
		{"wrapper not object", `{"text_analysis": "oops"}`},
		{"list of numbers", `{"text_analysis": {"nouns": [1, 2]}}`},
		{"count is string", `{"text_analysis": {"words count": "4"}}`},
		{"count is fraction", `{"text_analysis": {"sentences count": 1.5}}`},
		{"top words not array", `{"text_analysis": {"most_common_10": {"the": 2}}}`},
		{"top word pair too short", `{"text_analysis": {"most_common_10": [["the"]]}}`},
		{"top word count not number", `{"text_analysis": {"most_common_10": [["the", "2"]]}}`},
		{"original text not string", `{"original_text": 3, "text_analysis": {}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Analysis([]byte(tt.body))
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestSpellCheck(t *testing.T) {
	res, err := SpellCheck([]byte(`{
		"original_text": "Thiss is",
		"spell_check": {"Thiss": ["this", "thus"], "is": ["is"]}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Thiss is", res.OriginalText)
	assert.Equal(t, map[string][]string{
		"thiss": {"this", "thus"},
		"is":    {"is"},
	}, res.Suggestions)
}

func TestSpellCheck_Malformed(t *testing.T) {
	for _, body := range []string{
		`{}`,
		`{"spell_check": []}`,
		`{"spell_check": {"tst": "test"}}`,
		`{"spell_check": {"tst": [1]}}`,
	} {
		_, err := SpellCheck([]byte(body))
		assert.ErrorIs(t, err, ErrMalformedResponse, body)
	}
}

func TestSentiment(t *testing.T) {
	res, err := Sentiment([]byte(`{
		"classifiers": {
			"naive_bag_of_words": [0.3, 0.7],
			"naive_best_words": [1],
			"svm": []
		}
	}`))
	require.NoError(t, err)

	assert.Equal(t, []float64{0.3, 0.7}, res.Scores[model.NaiveBagOfWords])
	assert.Equal(t, []float64{1}, res.Scores[model.NaiveBestWords])
	assert.Equal(t, []float64{}, res.Scores[model.SVM])
}

func TestSentiment_Malformed(t *testing.T) {
	for _, body := range []string{
		`{"sentiment": {}}`,
		`{"classifiers": [0.5]}`,
		`{"classifiers": {"svm": 0.5}}`,
		`{"classifiers": {"svm": ["pos"]}}`,
	} {
		_, err := Sentiment([]byte(body))
		assert.ErrorIs(t, err, ErrMalformedResponse, body)
	}
}

func TestParse_DispatchesOnShape(t *testing.T) {
	v, err := Parse([]byte(analysisBody), ShapeAnalysis)
	require.NoError(t, err)
	assert.IsType(t, &model.AnalysisResult{}, v)

	v, err = Parse([]byte(`{"spell_check": {}}`), ShapeSpellCheck)
	require.NoError(t, err)
	assert.IsType(t, &model.SpellCheckResult{}, v)

	v, err = Parse([]byte(`{"classifiers": {}}`), ShapeSentiment)
	require.NoError(t, err)
	assert.IsType(t, &model.SentimentResponse{}, v)

	v, err = Parse([]byte(`{"message": "ok"}`), ShapeMessage)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	_, err = Parse([]byte(`{}`), Shape("bogus"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformedResponse)
}
