// Package nlpdash drives the NLP dashboard: it sends the user's text or
// files to the NLP service and hands the processed results to a View.
package nlpdash

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Alfex4936/nlpdash/internal/chart"
	"github.com/Alfex4936/nlpdash/internal/config"
	"github.com/Alfex4936/nlpdash/internal/limit"
	"github.com/Alfex4936/nlpdash/internal/model"
	"github.com/Alfex4936/nlpdash/internal/net"
	"github.com/Alfex4936/nlpdash/internal/parse"
	"github.com/Alfex4936/nlpdash/internal/sentiment"
	"github.com/Alfex4936/nlpdash/internal/spelldiff"
	"github.com/Alfex4936/nlpdash/internal/upload"
)

// Service endpoints, relative to the configured base URL.
const (
	EndpointAnalysis   = "text_analysis"
	EndpointSpellCheck = "spell_check"
	EndpointSentiment  = "sentiment_analysis"
	EndpointUpload     = "upload"
	EndpointTranscribe = "speech_to_text"

	uploadField = "file"
)

// SpellingOKMessage is the success banner of a clean spell-check.
const SpellingOKMessage = "Spelling is OK"

// AudioFormats lists the extensions speech_to_text accepts.
var AudioFormats = []string{"flac", "wav"}

// API is the NLP service as seen by the Dashboard.
// *net.Client satisfies it.
type API interface {
	PostJSON(ctx context.Context, endpoint string, payload any) ([]byte, error)
	PostFile(ctx context.Context, endpoint, field string, f model.File) ([]byte, error)
}

// Dashboard orchestrates user actions. It is safe for concurrent use: each
// analysis takes a request token and a response whose token is no longer the
// latest is dropped, so the View always shows the most recent action.
type Dashboard struct {
	cfg     *config.Config
	api     API
	view    View
	log     *zap.Logger
	differ  spelldiff.Differ
	uploads *upload.Controller

	seq atomic.Uint64
	mu  sync.Mutex // serializes View calls with token checks
}

// Option customizes a Dashboard.
type Option func(*Dashboard)

// WithAPI replaces the HTTP client built from the configuration.
func WithAPI(api API) Option {
	return func(d *Dashboard) { d.api = api }
}

// WithDict makes spell-check skip every word in dict.
func WithDict(dict *spelldiff.Dict) Option {
	return func(d *Dashboard) { d.differ.Ignore = dict }
}

// New creates a Dashboard rendering into view. log may be nil.
func New(cfg *config.Config, view View, log *zap.Logger, opts ...Option) (*Dashboard, error) {
	if cfg == nil {
		return nil, errors.New("nlpdash: nil config")
	}
	if view == nil {
		return nil, errors.New("nlpdash: nil view")
	}
	if log == nil {
		log = zap.NewNop()
	}

	d := &Dashboard{cfg: cfg, view: view, log: log.With(zap.String("component", "dashboard"))}
	for _, opt := range opts {
		opt(d)
	}

	if d.api == nil {
		tr, err := net.NewTransport(cfg.API.Transport, cfg.API.Timeout)
		if err != nil {
			return nil, fmt.Errorf("nlpdash: %w", err)
		}
		c, err := net.New(cfg.API.BaseURL, tr, log)
		if err != nil {
			return nil, fmt.Errorf("nlpdash: %w", err)
		}
		d.api = c
	}

	d.uploads = upload.New(upload.UploaderFunc(d.uploadFile), d.uploadChanged, log)
	return d, nil
}

// AnalyzeText runs lexical analysis and renders the categories and the
// most-common-words chart.
func (d *Dashboard) AnalyzeText(ctx context.Context, text string) {
	tok, ok := d.begin(text)
	if !ok {
		return
	}
	raw, err := d.post(ctx, EndpointAnalysis, text)
	if err != nil {
		d.fail(tok, EndpointAnalysis, err)
		return
	}
	res, err := parse.Analysis(raw)
	if err != nil {
		d.fail(tok, EndpointAnalysis, err)
		return
	}
	points := chart.Build(res.TopWords())

	d.render(tok, func(v View) {
		v.ShowAnalysis(res)
		v.ShowChart(chart.Title, points)
	})
}

// CheckSpelling renders the words whose top suggestion differs from what
// was typed, or the "Spelling is OK" banner.
func (d *Dashboard) CheckSpelling(ctx context.Context, text string) {
	tok, ok := d.begin(text)
	if !ok {
		return
	}
	raw, err := d.post(ctx, EndpointSpellCheck, text)
	if err != nil {
		d.fail(tok, EndpointSpellCheck, err)
		return
	}
	res, err := parse.SpellCheck(raw)
	if err != nil {
		d.fail(tok, EndpointSpellCheck, err)
		return
	}
	rep := d.differ.Diff(text, res)

	d.render(tok, func(v View) {
		if rep.Clean() {
			v.ShowSuccess(SpellingOKMessage)
			return
		}
		v.ShowCorrections(rep.Pairs)
	})
}

// AnalyzeSentiment renders one verdict per classifier.
func (d *Dashboard) AnalyzeSentiment(ctx context.Context, text string) {
	tok, ok := d.begin(text)
	if !ok {
		return
	}
	raw, err := d.post(ctx, EndpointSentiment, text)
	if err != nil {
		d.fail(tok, EndpointSentiment, err)
		return
	}
	resp, err := parse.Sentiment(raw)
	if err != nil {
		d.fail(tok, EndpointSentiment, err)
		return
	}
	verdicts, err := sentiment.Aggregate(resp)
	if err != nil {
		d.fail(tok, EndpointSentiment, err)
		return
	}

	d.render(tok, func(v View) { v.ShowVerdicts(verdicts) })
}

// Transcribe sends a flac or wav recording to speech_to_text and renders
// the transcript. It returns the transcript so callers can put it in the
// text input; ok is false when nothing was rendered.
func (d *Dashboard) Transcribe(ctx context.Context, f model.File) (text string, ok bool) {
	tok := d.clear()

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(f.Name), "."))
	if !slices.Contains(AudioFormats, ext) {
		d.render(tok, func(v View) {
			v.ShowError("File format is not supported. Please use " + strings.Join(AudioFormats, ", "))
		})
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, d.cfg.API.Timeout)
	defer cancel()
	raw, err := d.api.PostFile(ctx, EndpointTranscribe, uploadField, f)
	if err != nil {
		d.fail(tok, EndpointTranscribe, err)
		return "", false
	}
	text, err = parse.Transcript(raw)
	if err != nil {
		d.fail(tok, EndpointTranscribe, err)
		return "", false
	}

	return text, d.render(tok, func(v View) { v.ShowTranscript(text) })
}

// DragEnter highlights the drop zone.
func (d *Dashboard) DragEnter() { d.uploads.DragEnter() }

// DragLeave removes the drop-zone highlight.
func (d *Dashboard) DragLeave() { d.uploads.DragLeave() }

// Drop uploads the first of the dropped files.
func (d *Dashboard) Drop(ctx context.Context, files []model.File) (upload.Outcome, bool) {
	return d.uploads.Drop(ctx, files)
}

// Select uploads every picked file, one after another.
func (d *Dashboard) Select(ctx context.Context, files []model.File) []upload.Outcome {
	return d.uploads.Select(ctx, files)
}

// UploadState is the drop zone's current state.
func (d *Dashboard) UploadState() model.UploadState { return d.uploads.State() }

// MaxChars is the configured input limit.
func (d *Dashboard) MaxChars() int { return d.cfg.Limits.MaxChars }

/***----- private -----***/

type request struct {
	Data string `json:"data"`
}

// clear invalidates every in-flight request and empties the View.
func (d *Dashboard) clear() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	tok := d.seq.Add(1)
	d.view.Clear()
	return tok
}

// begin clears the View and decides whether text may be sent at all.
// Blank text is ignored silently; text over the limit gets an error banner.
func (d *Dashboard) begin(text string) (uint64, bool) {
	tok := d.clear()
	if strings.TrimSpace(text) == "" {
		return tok, false
	}
	if n := d.cfg.Limits.MaxChars; limit.Exceeds(text, n) {
		d.log.Debug("text over limit", zap.Int("max_chars", n), zap.Int("over", -limit.Remaining(text, n)))
		d.render(tok, func(v View) {
			v.ShowError(fmt.Sprintf("Text is limited to %d characters", n))
		})
		return tok, false
	}
	return tok, true
}

func (d *Dashboard) post(ctx context.Context, endpoint, text string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.API.Timeout)
	defer cancel()
	return d.api.PostJSON(ctx, endpoint, request{Data: text})
}

// render runs fn against the View unless a newer action superseded tok.
func (d *Dashboard) render(tok uint64, fn func(View)) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if latest := d.seq.Load(); latest != tok {
		d.log.Debug("stale response discarded", zap.Uint64("token", tok), zap.Uint64("latest", latest))
		return false
	}
	fn(d.view)
	return true
}

func (d *Dashboard) fail(tok uint64, endpoint string, err error) {
	d.log.Warn("request failed",
		zap.String("endpoint", endpoint),
		zap.String("kind", ErrorKind(err)),
		zap.Error(err),
	)
	msg := errorMessage(err, DefaultErrorMessage)
	d.render(tok, func(v View) { v.ShowError(msg) })
}

func (d *Dashboard) uploadFile(ctx context.Context, f model.File) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.API.Timeout)
	defer cancel()
	raw, err := d.api.PostFile(ctx, EndpointUpload, uploadField, f)
	if err != nil {
		d.log.Debug("upload rejected", zap.String("kind", ErrorKind(err)))
		return serverMessage(err), err
	}
	return parse.Message(raw), nil
}

func (d *Dashboard) uploadChanged(state model.UploadState, msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.view.ShowUploadState(state)
	switch state {
	case model.Uploading:
		d.view.HideBanners()
	case model.Success:
		d.view.ShowSuccess(msg)
	case model.Failed:
		d.view.ShowError(msg)
	}
}
