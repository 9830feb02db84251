package nlpdash

import "github.com/Alfex4936/nlpdash/internal/model"

// View is the rendering layer. The Dashboard calls it from whichever
// goroutine finished a request, but never concurrently.
type View interface {
	// Clear empties every output region: result text, chart, corrections,
	// verdicts, transcript and both banners.
	Clear()

	ShowAnalysis(res *model.AnalysisResult)
	// ShowChart receives an empty points slice when there is nothing to draw.
	ShowChart(title string, points []model.ChartPoint)
	ShowCorrections(pairs []model.CorrectionPair)
	ShowVerdicts(verdicts []model.Verdict)
	ShowTranscript(text string)

	// ShowSuccess and ShowError each hide the other banner.
	ShowSuccess(msg string)
	ShowError(msg string)
	HideBanners()

	ShowUploadState(state model.UploadState)
}
