package spelldiff

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alfex4936/nlpdash/internal/model"
)

func result(m map[string][]string) *model.SpellCheckResult {
	return &model.SpellCheckResult{Suggestions: m}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Thiss is a tst", []string{"thiss", "is", "a", "tst"}},
		{"Hello, world!", []string{"hello", "world"}},
		{"  leading and trailing  ", []string{"leading", "and", "trailing"}},
		{"snake_case stays", []string{"snake_case", "stays"}},
		{"Çox gözəl", []string{"çox", "gözəl"}},
		{"don't", []string{"don", "t"}},
		{"a...b", []string{"a", "b"}},
		{"!!! ... ?", nil},
		{"", nil},
		{"   \n\t", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Tokenize(tt.in), "Tokenize(%q)", tt.in)
	}
}

func TestDiff_Example(t *testing.T) {
	rep := Diff("Thiss is a tst", result(map[string][]string{
		"thiss": {"this"},
		"is":    {"is"},
		"a":     {"a"},
		"tst":   {"test"},
	}))

	require.True(t, rep.Checked())
	require.False(t, rep.Clean())
	assert.Equal(t, []model.CorrectionPair{
		{Original: "thiss", Suggested: "this", Distance: 1},
		{Original: "tst", Suggested: "test", Distance: 1},
	}, rep.Pairs)
}

func TestDiff_AllCorrectIsClean(t *testing.T) {
	text := "The quick brown fox, jumps!"
	m := map[string][]string{}
	for _, tok := range Tokenize(text) {
		m[tok] = []string{tok, tok + "s"}
	}

	rep := Diff(text, result(m))
	assert.True(t, rep.Clean())
	assert.Empty(t, rep.Pairs)
}

func TestDiff_ZeroReportIsNotChecked(t *testing.T) {
	var rep Report
	assert.False(t, rep.Checked())
	assert.False(t, rep.Clean())
}

func TestDiff_SkipsUnknownAndEmptySuggestions(t *testing.T) {
	rep := Diff("foo bar baz", result(map[string][]string{
		"bar": {},
		"baz": {"bat", "bad"},
	}))
	assert.Equal(t, []model.CorrectionPair{
		{Original: "baz", Suggested: "bat", Alternatives: []string{"bad"}, Distance: 1},
	}, rep.Pairs)
}

func TestDiff_RepeatedTokenReportedOnce(t *testing.T) {
	rep := Diff("tst one tst two TST", result(map[string][]string{
		"tst": {"test"},
	}))
	require.Len(t, rep.Pairs, 1)
	assert.Equal(t, "tst", rep.Pairs[0].Original)
}

func TestDiff_PairsNeverExceedDistinctTokens(t *testing.T) {
	texts := []string{
		"a a a b b c",
		"Hello, hello? HELLO!",
		"one two three four five six seven",
		"",
	}
	for _, text := range texts {
		m := map[string][]string{}
		distinct := map[string]struct{}{}
		for _, tok := range Tokenize(text) {
			m[tok] = []string{strings.ToUpper(tok) + "x"}
			distinct[tok] = struct{}{}
		}
		rep := Diff(text, result(m))
		assert.LessOrEqual(t, len(rep.Pairs), len(distinct), text)
	}
}

func TestDiff_PunctuationNeverLookedUp(t *testing.T) {
	rep := Diff("!!!", result(map[string][]string{"!!!": {"x"}}))
	assert.True(t, rep.Clean())

	rep = Diff("Hello, world!", result(map[string][]string{
		",":     {";"},
		"!":     {"?"},
		"hello": {"hello"},
	}))
	assert.True(t, rep.Clean())
	assert.Empty(t, rep.Pairs)
}

func TestDiff_NilResult(t *testing.T) {
	rep := Diff("tst", nil)
	assert.True(t, rep.Clean())
}

func TestDiffer_IgnoresDictWords(t *testing.T) {
	d := Differ{Ignore: NewDict("Kafka")}
	rep := d.Diff("kafka tst", result(map[string][]string{
		"kafka": {"kafkas"},
		"tst":   {"test"},
	}))
	require.Len(t, rep.Pairs, 1)
	assert.Equal(t, "tst", rep.Pairs[0].Original)
}

func TestLoadDict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"words": ["Kafka", " gRPC "]}`), 0o600))

	d, err := LoadDict(path)
	require.NoError(t, err)
	assert.True(t, d.Contains("kafka"))
	assert.True(t, d.Contains("grpc"))
	assert.False(t, d.Contains("redis"))

	_, err = LoadDict(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestDict_LiteralWithoutIndex(t *testing.T) {
	d := &Dict{Words: []string{"Kafka"}}
	assert.True(t, d.Contains("kafka"))

	var nilDict *Dict
	assert.False(t, nilDict.Contains("kafka"))
}
