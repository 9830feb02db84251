package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/Alfex4936/nlpdash/internal/model"
)

// TerminalView prints each result as it arrives. Clear is a no-op because
// printed output cannot be taken back.
type TerminalView struct {
	w      io.Writer
	styles Styles

	mu     sync.Mutex
	failed bool
}

func NewTerminalView(w io.Writer, styles Styles) *TerminalView {
	return &TerminalView{w: w, styles: styles}
}

// Failed reports whether an error banner was shown.
func (v *TerminalView) Failed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.failed
}

func (v *TerminalView) Clear() {}

func (v *TerminalView) ShowAnalysis(res *model.AnalysisResult) {
	v.print(Analysis(res, v.styles))
}

func (v *TerminalView) ShowChart(title string, points []model.ChartPoint) {
	if out := Chart(title, points, v.styles); out != "" {
		v.print(out)
	}
}

func (v *TerminalView) ShowCorrections(pairs []model.CorrectionPair) {
	v.print(Corrections(pairs, v.styles))
}

func (v *TerminalView) ShowVerdicts(verdicts []model.Verdict) {
	v.print(Verdicts(verdicts, v.styles))
}

func (v *TerminalView) ShowTranscript(text string) {
	v.print(v.styles.Title.Render("Transcript:") + "\n" + v.styles.Body.Render(text) + "\n")
}

func (v *TerminalView) ShowSuccess(msg string) {
	v.print(v.styles.Success.Render("✓ "+msg) + "\n")
}

func (v *TerminalView) ShowError(msg string) {
	v.mu.Lock()
	v.failed = true
	v.mu.Unlock()
	v.print(v.styles.Error.Render("✗ "+msg) + "\n")
}

func (v *TerminalView) HideBanners() {}

func (v *TerminalView) ShowUploadState(state model.UploadState) {
	v.print(v.styles.Muted.Render("upload: "+state.String()) + "\n")
}

func (v *TerminalView) print(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprint(v.w, s)
}
