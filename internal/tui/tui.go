package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sokinpui/askcode/askcode"
	"github.com/sokinpui/askcode/model"
)

// --- Styles ---
var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("197"))
	pathStyle    = lipgloss.NewStyle()
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// --- Messages ---
type summaryMsg struct {
	model.Summary
}

type errorMsg struct{ err error }

func (e errorMsg) Error() string { return e.err.Error() }

// --- Model ---
type Model struct {
	app     *askcode.App
	ctx     context.Context
	spinner spinner.Model
	state   state
	summary summaryMsg
	err     error
}

type state int

const (
	stateWaiting state = iota
	stateSummary
	stateError
)

func New(ctx context.Context, app *askcode.App) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return Model{
		app:     app,
		ctx:     ctx,
		spinner: s,
		state:   stateWaiting,
	}
}

// Summary returns the run result once the program has finished.
func (m Model) Summary() (model.Summary, error) {
	return m.summary.Summary, m.err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runApp)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case summaryMsg:
		m.state = stateSummary
		m.summary = msg
		return m, tea.Quit

	case errorMsg:
		m.state = stateError
		m.err = msg.err
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		if m.state == stateWaiting {
			m.spinner, cmd = m.spinner.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	switch m.state {
	case stateWaiting:
		return fmt.Sprintf("%s Waiting for the model...", m.spinner.View())
	case stateError:
		return errorStyle.Render("Error: ", m.err.Error())
	case stateSummary:
		return m.renderSummary()
	default:
		return ""
	}
}

func (m *Model) renderSummary() string {
	var b strings.Builder

	if m.summary.Message != "" {
		b.WriteString(errorStyle.Render(m.summary.Message))
		b.WriteString("\n")
	}

	if m.summary.Reply != "" {
		b.WriteString(headerStyle.Render("LLM Response:"))
		b.WriteString("\n")
		b.WriteString(m.summary.Reply)
		b.WriteString("\n")
	}

	if len(m.summary.DiffFiles) > 0 {
		b.WriteString(successStyle.Render(fmt.Sprintf("Diff files saved to %s.", m.summary.OutputDir)))
		b.WriteString("\n")
		for _, f := range m.summary.DiffFiles {
			b.WriteString(fmt.Sprintf("  %s\n", pathStyle.Render(f)))
		}
	}

	if m.summary.Reply == "" && m.summary.Message == "" {
		b.WriteString(faintStyle.Render("Nothing to report."))
	}

	return b.String()
}

func (m *Model) runApp() tea.Msg {
	summary, err := m.app.Execute(m.ctx)
	if err != nil {
		// The TUI is about to exit, so the stack trace can go to stderr.
		if e, ok := err.(*askcode.DetailedError); ok {
			fmt.Fprintf(os.Stderr, "\n--- Stack Trace ---\n%s\n", e.Stack)
		}
		return errorMsg{err}
	}
	return summaryMsg{
		Summary: summary,
	}
}
