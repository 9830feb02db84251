// Package tui is the interactive terminal dashboard.
//
// Key bindings:
//
//	F1 analyze   F2 spell-check   F3 sentiment
//	F4 drop the file paths typed in the input (first one is uploaded)
//	F5 transcribe the audio file path typed in the input
//	F6 upload every file path typed in the input
//	Esc / Ctrl+C quit
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Alfex4936/nlpdash/internal/limit"
	"github.com/Alfex4936/nlpdash/internal/model"
	"github.com/Alfex4936/nlpdash/internal/ui"
	"github.com/Alfex4936/nlpdash/internal/upload"
	"github.com/Alfex4936/nlpdash/nlpdash"
)

// Dashboard is the subset of *nlpdash.Dashboard the TUI drives.
type Dashboard interface {
	AnalyzeText(ctx context.Context, text string)
	CheckSpelling(ctx context.Context, text string)
	AnalyzeSentiment(ctx context.Context, text string)
	Transcribe(ctx context.Context, f model.File) (string, bool)
	DragEnter()
	Drop(ctx context.Context, files []model.File) (upload.Outcome, bool)
	Select(ctx context.Context, files []model.File) []upload.Outcome
	MaxChars() int
}

var _ Dashboard = (*nlpdash.Dashboard)(nil)

// doneMsg ends one background action. err is shown as an error banner.
type doneMsg struct{ err string }

// Model is the bubbletea model.
type Model struct {
	ctx    context.Context
	dash   Dashboard
	styles ui.Styles

	textarea textarea.Model
	spinner  spinner.Model
	pending  int

	// output regions
	analysis    string
	chart       string
	corrections string
	verdicts    string
	transcript  string
	banner      string
	uploadState model.UploadState
}

// New builds a Model around dash. ctx bounds every action.
func New(ctx context.Context, dash Dashboard, styles ui.Styles) Model {
	ta := textarea.New()
	ta.Placeholder = "Type text here, or file paths for F4-F6..."
	ta.CharLimit = dash.MaxChars()
	ta.SetWidth(80)
	ta.SetHeight(5)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return Model{ctx: ctx, dash: dash, styles: styles, textarea: ta, spinner: sp}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case doneMsg:
		m.pending = max(m.pending-1, 0)
		if msg.err != "" {
			m.banner = m.styles.Error.Render("✗ " + msg.err)
		}
		return m, nil

	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearMsg:
		m.analysis, m.chart, m.corrections, m.verdicts, m.transcript, m.banner = "", "", "", "", "", ""
	case analysisMsg:
		m.analysis = ui.Analysis(msg.res, m.styles)
	case chartMsg:
		m.chart = ui.Chart(msg.title, msg.points, m.styles)
	case correctionsMsg:
		m.corrections = ui.Corrections(msg.pairs, m.styles)
	case verdictsMsg:
		m.verdicts = ui.Verdicts(msg.verdicts, m.styles)
	case transcriptMsg:
		m.transcript = m.styles.Title.Render("Transcript:") + "\n" + msg.text
		m.textarea.SetValue(limit.Clip(msg.text, m.dash.MaxChars()))
	case bannerMsg:
		if msg.err {
			m.banner = m.styles.Error.Render("✗ " + msg.text)
		} else {
			m.banner = m.styles.Success.Render("✓ " + msg.text)
		}
	case hideBannersMsg:
		m.banner = ""
	case uploadMsg:
		m.uploadState = msg.state
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	text := m.textarea.Value()
	var action func() string

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyF1:
		action = func() string { m.dash.AnalyzeText(m.ctx, text); return "" }
	case tea.KeyF2:
		action = func() string { m.dash.CheckSpelling(m.ctx, text); return "" }
	case tea.KeyF3:
		action = func() string { m.dash.AnalyzeSentiment(m.ctx, text); return "" }
	case tea.KeyF4:
		action = withFiles(text, func(files []model.File) {
			m.dash.DragEnter()
			m.dash.Drop(m.ctx, files)
		})
	case tea.KeyF5:
		action = withFiles(text, func(files []model.File) {
			if len(files) > 0 {
				m.dash.Transcribe(m.ctx, files[0])
			}
		})
	case tea.KeyF6:
		action = withFiles(text, func(files []model.File) { m.dash.Select(m.ctx, files) })
	default:
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}

	run := func() tea.Msg { return doneMsg{err: action()} }
	m.pending++
	if m.pending > 1 {
		return m, run
	}
	return m, tea.Batch(run, m.spinner.Tick)
}

// withFiles reads the whitespace-separated paths in text before calling fn.
// A read failure is returned instead.
func withFiles(text string, fn func([]model.File)) func() string {
	return func() string {
		files, err := upload.ReadFiles(strings.Fields(text)...)
		if err != nil {
			return err.Error()
		}
		fn(files)
		return ""
	}
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("NLP dashboard"))
	sb.WriteString("\n\n")
	sb.WriteString(m.textarea.View())
	sb.WriteString("\n")

	status := fmt.Sprintf("%d remaining", limit.Remaining(m.textarea.Value(), m.dash.MaxChars()))
	if m.pending > 0 {
		status = m.spinner.View() + " " + status
	}
	sb.WriteString(m.styles.Muted.Render(status))
	sb.WriteString("\n")
	sb.WriteString(ui.UploadState(m.uploadState, m.styles))
	sb.WriteString("\n")

	if m.banner != "" {
		sb.WriteString(m.banner + "\n")
	}
	for _, region := range []string{m.analysis, m.chart, m.corrections, m.verdicts, m.transcript} {
		if region != "" {
			sb.WriteString("\n" + region)
		}
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("F1 analyze · F2 spell · F3 sentiment · F4 drop · F5 transcribe · F6 upload · esc quit"))
	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}

// Run starts the interactive dashboard. view must be the View dash renders
// into; it is attached to the program before the first action can run.
func Run(ctx context.Context, dash Dashboard, view *ProgramView, styles ui.Styles) error {
	p := tea.NewProgram(New(ctx, dash, styles), tea.WithAltScreen(), tea.WithContext(ctx))
	view.Attach(p)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
