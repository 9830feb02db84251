package bench

import (
	"testing"

	"github.com/Alfex4936/nlpdash/internal/model"
	"github.com/Alfex4936/nlpdash/internal/spelldiff"
)

var suggestions = &model.SpellCheckResult{Suggestions: map[string][]string{
	"thiss":   {"this", "thighs"},
	"tst":     {"test", "tat"},
	"spel":    {"spell", "spelt"},
	"checker": {"checker"},
}}

func BenchmarkDiffLong(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = spelldiff.Diff(long, suggestions)
	}
}
