// Package spelldiff reconciles the user's original text with a spell-check
// result and reports the words that need correcting.
package spelldiff

import (
	"strings"
	"unicode"

	"github.com/Alfex4936/nlpdash/internal/model"
	"github.com/Alfex4936/nlpdash/internal/util"
)

// Report is the outcome of one reconciliation.
// The zero Report means "not checked"; see Clean.
type Report struct {
	checked bool
	Pairs   []model.CorrectionPair
}

// Checked reports whether the Report came out of Diff.
func (r Report) Checked() bool { return r.checked }

// Clean is the "no corrections needed" sentinel: the text was checked and
// every token was either unknown to the service or already correct.
func (r Report) Clean() bool { return r.checked && len(r.Pairs) == 0 }

// Differ compares text against spell-check results.
// Words in Ignore are never reported.
type Differ struct {
	Ignore *Dict
}

// Diff reports every token whose top suggestion differs from the token,
// in text order. A token is reported once even if it repeats.
func Diff(text string, res *model.SpellCheckResult) Report {
	return Differ{}.Diff(text, res)
}

// Diff is the package-level Diff with the user dictionary applied.
func (d Differ) Diff(text string, res *model.SpellCheckResult) Report {
	rep := Report{checked: true}
	if res == nil {
		return rep
	}

	seen := make(map[string]struct{})
	for _, tok := range Tokenize(text) {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}

		if d.Ignore.Contains(tok) {
			continue
		}
		suggest := res.Suggestions[tok]
		if len(suggest) == 0 || suggest[0] == tok {
			continue
		}
		pair := model.CorrectionPair{
			Original:  tok,
			Suggested: suggest[0],
			Distance:  util.Levenshtein(tok, suggest[0]),
		}
		if len(suggest) > 1 {
			pair.Alternatives = append([]string(nil), suggest[1:]...)
		}
		rep.Pairs = append(rep.Pairs, pair)
	}
	return rep
}

// Tokenize returns the lowercased runs of word characters in text, in order.
// Whitespace and punctuation between them are dropped before any lookup.
func Tokenize(text string) []string {
	var (
		out   []string
		start int
		word  bool
	)
	flush := func(end int) {
		if piece := text[start:end]; strings.IndexFunc(piece, isWordChar) >= 0 {
			out = append(out, strings.ToLower(piece))
		}
		start = end
	}
	for i, r := range text {
		w := isWordChar(r)
		if i > 0 && w != word {
			flush(i)
		}
		word = w
	}
	flush(len(text))
	return out
}

// isWordChar mirrors \w for Unicode text: letters, digits, marks and '_'.
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || r == '_'
}
