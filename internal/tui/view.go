package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Alfex4936/nlpdash/internal/model"
)

// Messages carrying dashboard output onto the event loop.
type (
	clearMsg    struct{}
	analysisMsg struct{ res *model.AnalysisResult }
	chartMsg    struct {
		title  string
		points []model.ChartPoint
	}
	correctionsMsg struct{ pairs []model.CorrectionPair }
	verdictsMsg    struct{ verdicts []model.Verdict }
	transcriptMsg  struct{ text string }
	bannerMsg      struct {
		text string
		err  bool
	}
	hideBannersMsg struct{}
	uploadMsg      struct{ state model.UploadState }
)

// ProgramView forwards every View call to a running tea.Program, so all
// rendering state is owned by the event loop. Calls made before Attach are
// dropped.
type ProgramView struct {
	mu sync.Mutex
	p  *tea.Program
}

// Attach connects the view to p.
func (v *ProgramView) Attach(p *tea.Program) {
	v.mu.Lock()
	v.p = p
	v.mu.Unlock()
}

func (v *ProgramView) send(msg tea.Msg) {
	v.mu.Lock()
	p := v.p
	v.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

func (v *ProgramView) Clear()                                 { v.send(clearMsg{}) }
func (v *ProgramView) ShowAnalysis(res *model.AnalysisResult) { v.send(analysisMsg{res}) }
func (v *ProgramView) ShowChart(title string, points []model.ChartPoint) {
	v.send(chartMsg{title, points})
}
func (v *ProgramView) ShowCorrections(pairs []model.CorrectionPair) { v.send(correctionsMsg{pairs}) }
func (v *ProgramView) ShowVerdicts(verdicts []model.Verdict)        { v.send(verdictsMsg{verdicts}) }
func (v *ProgramView) ShowTranscript(text string)                   { v.send(transcriptMsg{text}) }
func (v *ProgramView) ShowSuccess(msg string)                       { v.send(bannerMsg{text: msg}) }
func (v *ProgramView) ShowError(msg string)                         { v.send(bannerMsg{text: msg, err: true}) }
func (v *ProgramView) HideBanners()                                 { v.send(hideBannersMsg{}) }
func (v *ProgramView) ShowUploadState(state model.UploadState)      { v.send(uploadMsg{state}) }
