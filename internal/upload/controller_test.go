package upload

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/Alfex4936/nlpdash/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type change struct {
	state model.UploadState
	msg   string
}

// recorder collects observer calls and uploaded file names.
type recorder struct {
	mu       sync.Mutex
	changes  []change
	uploaded []string
}

func (r *recorder) observe(s model.UploadState, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, change{s, msg})
}

func (r *recorder) states() []model.UploadState {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.UploadState, 0, len(r.changes))
	for _, c := range r.changes {
		out = append(out, c.state)
	}
	return out
}

func (r *recorder) uploader(msg string, err error) Uploader {
	return UploaderFunc(func(ctx context.Context, f model.File) (string, error) {
		r.mu.Lock()
		r.uploaded = append(r.uploaded, f.Name)
		r.mu.Unlock()
		return msg, err
	})
}

func files(names ...string) []model.File {
	out := make([]model.File, 0, len(names))
	for _, n := range names {
		out = append(out, model.File{Name: n, Data: []byte(n)})
	}
	return out
}

func TestDrop_OnlyFirstFileUploaded(t *testing.T) {
	rec := &recorder{}
	c := New(rec.uploader("", nil), rec.observe, nil)

	out, ok := c.Drop(context.Background(), files("a.txt", "b.txt", "c.txt"))
	require.True(t, ok)

	assert.Equal(t, []string{"a.txt"}, rec.uploaded)
	assert.Equal(t, Outcome{File: "a.txt", State: model.Success, Message: DefaultSuccessMessage}, out)
	assert.Equal(t, model.Success, c.State())
	assert.Equal(t, []model.UploadState{model.Uploading, model.Success}, rec.states())
}

func TestDrop_WithoutFilesReturnsToIdle(t *testing.T) {
	rec := &recorder{}
	c := New(rec.uploader("", nil), rec.observe, nil)

	c.DragEnter()
	require.Equal(t, model.DragOver, c.State())

	_, ok := c.Drop(context.Background(), nil)
	assert.False(t, ok)
	assert.Equal(t, model.Idle, c.State())
	assert.Empty(t, rec.uploaded)
	assert.Equal(t, []model.UploadState{model.DragOver, model.Idle}, rec.states())
}

func TestDrag_EnterLeave(t *testing.T) {
	rec := &recorder{}
	c := New(rec.uploader("", nil), rec.observe, nil)

	c.DragLeave() // not highlighted: no-op
	c.DragEnter()
	c.DragEnter() // already highlighted: no-op
	c.DragLeave()

	assert.Equal(t, model.Idle, c.State())
	assert.Equal(t, []model.UploadState{model.DragOver, model.Idle}, rec.states())
}

func TestSettledStateRearmedByNextInteraction(t *testing.T) {
	rec := &recorder{}
	c := New(rec.uploader("", errors.New("boom")), rec.observe, nil)

	_, _ = c.Drop(context.Background(), files("a.txt"))
	require.Equal(t, model.Failed, c.State())

	c.DragEnter()
	assert.Equal(t, model.DragOver, c.State())
}

func TestUpload_FailureMessages(t *testing.T) {
	tests := []struct {
		name    string
		msg     string
		wantMsg string
	}{
		{"server message", "File format is not supported. Please use txt", "File format is not supported. Please use txt"},
		{"default message", "", DefaultFailureMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			boom := errors.New("status 400")
			c := New(rec.uploader(tt.msg, boom), rec.observe, nil)

			out, ok := c.Drop(context.Background(), files("a.pdf"))
			require.True(t, ok)
			assert.Equal(t, model.Failed, out.State)
			assert.Equal(t, tt.wantMsg, out.Message)
			assert.ErrorIs(t, out.Err, boom)

			rec.mu.Lock()
			last := rec.changes[len(rec.changes)-1]
			rec.mu.Unlock()
			assert.Equal(t, change{model.Failed, tt.wantMsg}, last)
		})
	}
}

func TestUpload_ServerSuccessMessage(t *testing.T) {
	rec := &recorder{}
	c := New(rec.uploader("File uploaded successfully", nil), rec.observe, nil)

	out, _ := c.Drop(context.Background(), files("a.txt"))
	assert.Equal(t, "File uploaded successfully", out.Message)
}

func TestSelect_EachFileIsOneSequentialCycle(t *testing.T) {
	rec := &recorder{}
	c := New(rec.uploader("", nil), rec.observe, nil)

	outs := c.Select(context.Background(), files("a.txt", "b.txt", "c.txt"))

	require.Len(t, outs, 3)
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, rec.uploaded)
	assert.Equal(t, []model.UploadState{
		model.Uploading, model.Success,
		model.Uploading, model.Success,
		model.Uploading, model.Success,
	}, rec.states())
}

func TestSelect_MixedOutcomes(t *testing.T) {
	rec := &recorder{}
	up := UploaderFunc(func(ctx context.Context, f model.File) (string, error) {
		if f.Name == "bad.pdf" {
			return "", errors.New("unsupported")
		}
		return "", nil
	})
	c := New(up, rec.observe, nil)

	outs := c.Select(context.Background(), files("ok.txt", "bad.pdf", "fine.txt"))

	require.Len(t, outs, 3)
	assert.Equal(t, model.Success, outs[0].State)
	assert.Equal(t, model.Failed, outs[1].State)
	assert.Equal(t, model.Success, outs[2].State)
	assert.Equal(t, model.Success, c.State())
}

func TestSelect_StopsWhenContextDone(t *testing.T) {
	rec := &recorder{}
	ctx, cancel := context.WithCancel(context.Background())
	up := UploaderFunc(func(context.Context, model.File) (string, error) {
		cancel()
		return "", nil
	})
	c := New(up, rec.observe, nil)

	outs := c.Select(ctx, files("a.txt", "b.txt"))
	assert.Len(t, outs, 1)
}

func TestCyclesNeverOverlap(t *testing.T) {
	var (
		mu       sync.Mutex
		inFlight int
		maxSeen  int
	)
	up := UploaderFunc(func(context.Context, model.File) (string, error) {
		mu.Lock()
		inFlight++
		maxSeen = max(maxSeen, inFlight)
		mu.Unlock()

		mu.Lock()
		inFlight--
		mu.Unlock()
		return "", nil
	})
	c := New(up, nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Select(context.Background(), files("a.txt", "b.txt"))
			c.Drop(context.Background(), files("c.txt"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	assert.Equal(t, model.Success, c.State())
}

func TestUploadStateString(t *testing.T) {
	assert.Equal(t, "drag-over", model.DragOver.String())
	assert.Equal(t, "UploadState(42)", model.UploadState(42).String())
	assert.True(t, model.Failed.Settled())
	assert.False(t, model.Uploading.Settled())
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(a, []byte("alpha"), 0o644))

	files, err := ReadFiles(a)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "a.txt", files[0].Name)
	assert.Equal(t, "alpha", string(files[0].Data))

	_, err = ReadFiles(a, filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
