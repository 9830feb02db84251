package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Alfex4936/nlpdash/internal/model"
)

// BarWidth is the width of the longest chart bar.
const BarWidth = 30

// Analysis renders every category in display order as "key: value" lines.
func Analysis(res *model.AnalysisResult, styles Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Text analysis results:"))
	sb.WriteString("\n")
	for _, c := range model.Categories {
		var val string
		if c.IsCount() {
			val = fmt.Sprint(res.Count(c))
		} else {
			val = strings.Join(res.List(c), ", ")
		}
		sb.WriteString(styles.Key.Render(string(c)) + ": " + styles.Body.Render(val) + "\n")
	}
	return sb.String()
}

// Chart renders points as horizontal bars scaled to the largest value.
// No points render as "".
func Chart(title string, points []model.ChartPoint, styles Styles) string {
	if len(points) == 0 {
		return ""
	}
	top, label := 0, 0
	for _, p := range points {
		top = max(top, p.Value)
		label = max(label, lipgloss.Width(p.Label))
	}

	var sb strings.Builder
	sb.WriteString(styles.Title.Render(title))
	sb.WriteString("\n")
	for i, p := range points {
		n := 0
		if top > 0 {
			n = p.Value * BarWidth / top
		}
		bar := lipgloss.NewStyle().Foreground(ChartColors[i%len(ChartColors)]).Render(strings.Repeat("█", n))
		name := styles.Body.Width(label).Render(p.Label)
		sb.WriteString(fmt.Sprintf("%s %s %s\n", name, bar, styles.Muted.Render(fmt.Sprintf("%d - %.1f%%", p.Value, p.Percent))))
	}
	return sb.String()
}

// Corrections renders one "original → suggested" line per pair.
func Corrections(pairs []model.CorrectionPair, styles Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Spelling corrections:"))
	sb.WriteString("\n")
	for _, p := range pairs {
		line := styles.Original.Render(p.Original) + " → " + styles.Corrected.Render(p.Suggested)
		if len(p.Alternatives) > 0 {
			line += styles.Muted.Render(" (" + strings.Join(p.Alternatives, ", ") + ")")
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

// Verdicts renders the classifier table.
func Verdicts(verdicts []model.Verdict, styles Styles) string {
	t := NewSimpleTable("Sentiment analysis", []string{"Classifier", "Result", "Probability"})
	for _, v := range verdicts {
		t.AddRow(v.Classifier.DisplayName(), string(v.Label), fmt.Sprintf("%.4f", v.Confidence))
	}
	return t.View(styles)
}

// UploadState renders the drop-zone status line.
func UploadState(state model.UploadState, styles Styles) string {
	zone := styles.DropZone
	if state == model.DragOver {
		zone = styles.DropZoneActive
	}
	return zone.Render("drop zone: " + state.String())
}
