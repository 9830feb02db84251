package model

import "fmt"

// UploadState is the lifecycle of one drop-zone interaction.
type UploadState int

const (
	Idle UploadState = iota
	DragOver
	Uploading
	Success
	Failed
)

var uploadStateNames = [...]string{
	Idle:      "idle",
	DragOver:  "drag-over",
	Uploading: "uploading",
	Success:   "success",
	Failed:    "failed",
}

func (s UploadState) String() string {
	if s >= 0 && int(s) < len(uploadStateNames) {
		return uploadStateNames[s]
	}
	return fmt.Sprintf("UploadState(%d)", int(s))
}

// Settled reports whether the state is a finished upload cycle.
func (s UploadState) Settled() bool { return s == Success || s == Failed }
