// Package tui provides the interactive league console.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"github.com/guilhermegouw/leaguebook/internal/bridge"
	"github.com/guilhermegouw/leaguebook/internal/command"
	"github.com/guilhermegouw/leaguebook/internal/debug"
	"github.com/guilhermegouw/leaguebook/internal/pubsub"
	"github.com/guilhermegouw/leaguebook/internal/tui/styles"
)

const (
	welcomeText = "Type help to see every command. Ctrl+Y copies the last reply."
	maxHistory  = 100
	// header, two separators, input and status bar
	chromeHeight = 5
)

// Executor runs one command line. *logic.Controller satisfies it.
type Executor interface {
	Execute(ctx context.Context, line string) (command.Result, error)
}

// resultMsg carries the outcome of one executed line.
type resultMsg struct { //nolint:govet // fieldalignment: preserving logical field order
	line   string
	result command.Result
	err    error
}

// Model is the console model.
type Model struct { //nolint:govet // fieldalignment: preserving logical field order
	ctx      context.Context
	exec     Executor
	input    textinput.Model
	status   *StatusBar
	markdown *MarkdownRenderer

	transcript   []string
	history      []string
	historyPos   int
	lastFeedback string

	width  int
	height int
	ready  bool
}

// New creates a console model running commands through exec.
func New(ctx context.Context, exec Executor) *Model {
	ti := textinput.New()
	ti.Placeholder = "Type a command, or help"
	ti.Prompt = "> "
	ti.CharLimit = 1000
	ti.Focus()

	return &Model{
		ctx:        ctx,
		exec:       exec,
		input:      ti,
		status:     NewStatusBar(),
		markdown:   NewMarkdownRenderer(),
		transcript: []string{styles.CurrentTheme().S().Muted.Render(welcomeText)},
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.input.SetWidth(max(m.width-4, 10))
		m.status.SetWidth(m.width)
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case resultMsg:
		return m, m.handleResult(msg)

	case bridge.RecordEventMsg:
		m.status.HandleRecord(msg.Event.Payload)
		return m, nil

	case bridge.StoreEventMsg:
		m.status.HandleStore(msg.Event.Payload)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		line := strings.TrimSpace(m.input.Value())
		if line == "" {
			return m, nil
		}
		m.pushHistory(line)
		m.input.Reset()
		m.status.SetStatus(StatusRunning)
		return m, m.execute(line)

	case "up":
		if m.historyPos > 0 {
			m.historyPos--
			m.input.SetValue(m.history[m.historyPos])
			m.input.CursorEnd()
		}
		return m, nil

	case "down":
		if m.historyPos < len(m.history)-1 {
			m.historyPos++
			m.input.SetValue(m.history[m.historyPos])
			m.input.CursorEnd()
		} else {
			m.historyPos = len(m.history)
			m.input.Reset()
		}
		return m, nil

	case "ctrl+y":
		if m.lastFeedback == "" {
			return m, nil
		}
		if err := clipboard.WriteAll(m.lastFeedback); err != nil {
			debug.Error("tui", err, "copying feedback")
			m.status.SetError("clipboard unavailable")
			return m, nil
		}
		m.status.SetNotice("Copied last reply")
		return m, nil

	case "ctrl+l":
		m.transcript = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) pushHistory(line string) {
	if n := len(m.history); n == 0 || m.history[n-1] != line {
		m.history = append(m.history, line)
	}
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
	m.historyPos = len(m.history)
}

func (m *Model) execute(line string) tea.Cmd {
	return func() tea.Msg {
		r, err := m.exec.Execute(m.ctx, line)
		return resultMsg{line: line, result: r, err: err}
	}
}

func (m *Model) handleResult(msg resultMsg) tea.Cmd {
	t := styles.CurrentTheme()

	m.transcript = append(m.transcript, t.S().Prompt.Render("> ")+msg.line)
	m.transcript = append(m.transcript, m.renderResult(msg.result))
	m.lastFeedback = RenderResult(msg.result, 0)

	if msg.err != nil {
		m.transcript = append(m.transcript, t.S().Error.Render(msg.err.Error()))
		m.status.SetError(msg.err.Error())
	} else {
		m.status.SetStatus(StatusReady)
	}

	if msg.result.Exit {
		return tea.Quit
	}
	return nil
}

func (m *Model) renderResult(r command.Result) string {
	t := styles.CurrentTheme()
	width := m.contentWidth()

	var feedback string
	if r.Markdown {
		rendered, err := m.markdown.Render(r.Feedback, width)
		if err != nil {
			debug.Error("tui", err, "rendering markdown")
		}
		feedback = strings.Trim(rendered, "\n")
	} else {
		feedback = t.S().Base.Render(ansi.Wordwrap(r.Feedback, width, ""))
	}

	table := ResultTable(r, width)
	if table.Header == "" {
		return feedback
	}
	lines := []string{feedback, t.S().Header.Render(table.Header)}
	for _, row := range table.Rows {
		lines = append(lines, t.S().Base.Render(row))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}

// Transcript returns the console's rendered exchanges.
func (m *Model) Transcript() []string {
	return m.transcript
}

// View implements tea.Model.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if !m.ready {
		view.Content = "Loading..."
		return view
	}

	t := styles.CurrentTheme()
	header := styles.ApplyForegroundGrad("LEAGUE", t.Primary, t.Accent) +
		t.S().Muted.Render("  record console")
	separator := lipgloss.NewStyle().Foreground(t.Border).Render(strings.Repeat("─", m.width))

	view.Content = lipgloss.JoinVertical(lipgloss.Left,
		header,
		separator,
		m.body(max(m.height-chromeHeight, 0)),
		separator,
		m.input.View(),
		m.status.View(),
	)

	if c := m.input.Cursor(); c != nil {
		c.Y += m.height - 2
		view.Cursor = c
	}
	return view
}

// body returns the last lines of the transcript that fit in height,
// padded so the input stays at the bottom.
func (m *Model) body(height int) string {
	if height == 0 {
		return ""
	}
	var lines []string
	for _, entry := range m.transcript {
		lines = append(lines, strings.Split(entry, "\n")...)
	}
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// Run starts the console and blocks until the user exits.
func Run(ctx context.Context, exec Executor, hub *pubsub.Hub) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("the league console requires an interactive terminal")
	}

	styles.NewManager()

	model := New(ctx, exec)
	p := tea.NewProgram(model)

	if hub != nil {
		bridgeCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		tuiBridge := bridge.NewTUIBridge(hub, p)
		tuiBridge.Start(bridgeCtx)
		defer tuiBridge.Stop()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
