// Package upload implements the drop-zone state machine.
//
//	Idle ──drag-enter──▶ DragOver ──drag-leave / empty drop──▶ Idle
//	Idle ──drop / select──▶ Uploading ──▶ Success | Failed
//	Success | Failed ──next interaction──▶ (as from Idle)
//
// A drop uploads only the first file. A picker selection uploads every file,
// one full cycle at a time. Nothing is retried.
package upload

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Alfex4936/nlpdash/internal/model"
)

const (
	DefaultSuccessMessage = "File saved successfully"
	DefaultFailureMessage = "Failed to save file"
)

// Uploader sends one file. On failure the returned message may still carry
// the server's explanation.
type Uploader interface {
	Upload(ctx context.Context, f model.File) (message string, err error)
}

// UploaderFunc adapts a function to Uploader.
type UploaderFunc func(ctx context.Context, f model.File) (string, error)

func (fn UploaderFunc) Upload(ctx context.Context, f model.File) (string, error) {
	return fn(ctx, f)
}

// Observer is told about every state change, with the message to surface
// for Success and Failed ("" otherwise).
type Observer func(state model.UploadState, message string)

// Outcome is the settled result of one upload cycle.
type Outcome struct {
	File    string
	State   model.UploadState
	Message string
	Err     error
}

// Controller is safe for concurrent use; upload cycles never overlap.
type Controller struct {
	up     Uploader
	notify Observer
	log    *zap.Logger

	cycle sync.Mutex // held for a whole upload cycle

	mu    sync.Mutex
	state model.UploadState
}

// New creates an idle Controller. notify and log may be nil.
func New(up Uploader, notify Observer, log *zap.Logger) *Controller {
	if notify == nil {
		notify = func(model.UploadState, string) {}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{up: up, notify: notify, log: log.With(zap.String("component", "upload"))}
}

// State returns the current state.
func (c *Controller) State() model.UploadState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// DragEnter highlights the drop zone. Ignored while uploading.
func (c *Controller) DragEnter() {
	c.transition(func(s model.UploadState) bool { return s != model.Uploading && s != model.DragOver }, model.DragOver)
}

// DragLeave clears the highlight.
func (c *Controller) DragLeave() {
	c.transition(func(s model.UploadState) bool { return s == model.DragOver }, model.Idle)
}

// Drop uploads files[0]; the rest are ignored. A drop without files only
// returns the zone to Idle and reports ok=false.
func (c *Controller) Drop(ctx context.Context, files []model.File) (out Outcome, ok bool) {
	c.cycle.Lock()
	defer c.cycle.Unlock()

	if len(files) == 0 {
		c.transition(func(s model.UploadState) bool { return s != model.Idle }, model.Idle)
		return Outcome{}, false
	}
	if len(files) > 1 {
		c.log.Debug("ignoring extra dropped files", zap.Int("ignored", len(files)-1))
	}
	return c.run(ctx, files[0]), true
}

// Select uploads every picked file sequentially, one cycle each.
// It stops early only when ctx is done.
func (c *Controller) Select(ctx context.Context, files []model.File) []Outcome {
	c.cycle.Lock()
	defer c.cycle.Unlock()

	out := make([]Outcome, 0, len(files))
	for _, f := range files {
		if ctx.Err() != nil {
			break
		}
		out = append(out, c.run(ctx, f))
	}
	return out
}

// run performs one Uploading → Success|Failed cycle. Caller holds c.cycle.
func (c *Controller) run(ctx context.Context, f model.File) Outcome {
	c.set(model.Uploading, "")
	log := c.log.With(zap.String("file", f.Name), zap.Int("bytes", len(f.Data)))
	log.Debug("upload started")

	msg, err := c.up.Upload(ctx, f)
	if err != nil {
		if msg == "" {
			msg = DefaultFailureMessage
		}
		log.Warn("upload failed", zap.Error(err))
		c.set(model.Failed, msg)
		return Outcome{File: f.Name, State: model.Failed, Message: msg, Err: err}
	}

	if msg == "" {
		msg = DefaultSuccessMessage
	}
	log.Info("upload finished")
	c.set(model.Success, msg)
	return Outcome{File: f.Name, State: model.Success, Message: msg}
}

func (c *Controller) set(s model.UploadState, msg string) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
	c.notify(s, msg)
}

// transition moves to next when allowed(current) holds.
func (c *Controller) transition(allowed func(model.UploadState) bool, next model.UploadState) {
	c.mu.Lock()
	if !allowed(c.state) {
		c.mu.Unlock()
		return
	}
	c.state = next
	c.mu.Unlock()
	c.notify(next, "")
}
