package ui

import (
	"io"
	"sync"

	"github.com/Alfex4936/nlpdash/internal/model"
	"github.com/Alfex4936/nlpdash/internal/util"
)

// Result is the machine-readable form of everything a View was shown.
type Result struct {
	Analysis    *model.AnalysisResult  `json:"analysis,omitempty"`
	ChartTitle  string                 `json:"chart_title,omitempty"`
	Chart       []model.ChartPoint     `json:"chart,omitempty"`
	Corrections []model.CorrectionPair `json:"corrections,omitempty"`
	Verdicts    []model.Verdict        `json:"verdicts,omitempty"`
	Transcript  string                 `json:"transcript,omitempty"`
	Success     string                 `json:"success,omitempty"`
	Error       string                 `json:"error,omitempty"`
	Uploads     []string               `json:"upload_states,omitempty"`
}

// JSONView collects results and writes them as one JSON document on Flush.
type JSONView struct {
	mu  sync.Mutex
	res Result
}

func NewJSONView() *JSONView { return &JSONView{} }

// Failed reports whether the collected result holds an error banner.
func (v *JSONView) Failed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.res.Error != ""
}

// Flush writes the collected result as indented JSON.
func (v *JSONView) Flush(w io.Writer) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return util.WriteJSON(w, v.res)
}

func (v *JSONView) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	uploads := v.res.Uploads
	v.res = Result{Uploads: uploads}
}

func (v *JSONView) ShowAnalysis(res *model.AnalysisResult) {
	v.update(func(r *Result) { r.Analysis = res })
}

func (v *JSONView) ShowChart(title string, points []model.ChartPoint) {
	v.update(func(r *Result) { r.ChartTitle, r.Chart = title, points })
}

func (v *JSONView) ShowCorrections(pairs []model.CorrectionPair) {
	v.update(func(r *Result) { r.Corrections = pairs })
}

func (v *JSONView) ShowVerdicts(verdicts []model.Verdict) {
	v.update(func(r *Result) { r.Verdicts = verdicts })
}

func (v *JSONView) ShowTranscript(text string) {
	v.update(func(r *Result) { r.Transcript = text })
}

func (v *JSONView) ShowSuccess(msg string) {
	v.update(func(r *Result) { r.Success, r.Error = msg, "" })
}

func (v *JSONView) ShowError(msg string) {
	v.update(func(r *Result) { r.Error, r.Success = msg, "" })
}

func (v *JSONView) HideBanners() {
	v.update(func(r *Result) { r.Success, r.Error = "", "" })
}

func (v *JSONView) ShowUploadState(state model.UploadState) {
	v.update(func(r *Result) { r.Uploads = append(r.Uploads, state.String()) })
}

func (v *JSONView) update(fn func(*Result)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fn(&v.res)
}
