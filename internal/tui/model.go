package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/numwords/internal/config"
	apperrors "github.com/agbru/numwords/internal/errors"
	"github.com/agbru/numwords/internal/input"
	"github.com/agbru/numwords/internal/words"
)

// Layout constants for the dashboard.
const (
	headerHeight   = 1
	footerHeight   = 1
	inputHeight    = 3 // bordered single line
	previewLines   = 3
	minBodyHeight  = 3
	inputCharLimit = 512
)

// ContextCancelledMsg reports that the parent context ended, for example on
// SIGINT.
type ContextCancelledMsg struct {
	Err error
}

// Model is the root bubbletea model of the dashboard.
type Model struct {
	header  HeaderModel
	input   textinput.Model
	history HistoryModel
	help    help.Model
	keymap  KeyMap

	formatter    *words.Formatter
	exponentSign bool
	lastErr      error

	ctx      context.Context
	cancel   context.CancelFunc
	exitCode int

	width  int
	height int
}

// NewModel creates the dashboard model.
func NewModel(parentCtx context.Context, cfg config.AppConfig, version string) Model {
	ti := textinput.New()
	ti.Placeholder = "2.345 -0 1e-5 NaN"
	ti.Prompt = "› "
	ti.CharLimit = inputCharLimit
	ti.Focus()

	ctx, cancel := context.WithCancel(parentCtx)
	m := Model{
		header:       NewHeaderModel(version, cfg.ExponentSign),
		input:        ti,
		history:      NewHistoryModel(DefaultHistorySize),
		help:         help.New(),
		keymap:       DefaultKeyMap(),
		exponentSign: cfg.ExponentSign,
		ctx:          ctx,
		cancel:       cancel,
		exitCode:     apperrors.ExitSuccess,
	}
	m.formatter = newFormatter(m.exponentSign)
	return m
}

func newFormatter(exponentSign bool) *words.Formatter {
	if exponentSign {
		return words.NewFormatter(words.WithExponentSign())
	}
	return words.NewFormatter()
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, watchContextCmd(m.ctx))
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if model, cmd, handled := m.handleKey(msg); handled {
			return model, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.input.Width = max(msg.Width-8, 10)
		m.help.Width = msg.Width
		return m, nil

	case ContextCancelledMsg:
		m.exitCode = apperrors.ExitCodeFor(msg.Err)
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey runs dashboard commands. Keys it does not claim go to the input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit, true

	case key.Matches(msg, m.keymap.Convert):
		m.convert()
		return m, nil, true

	case key.Matches(msg, m.keymap.ToggleSign):
		m.exponentSign = !m.exponentSign
		m.formatter = newFormatter(m.exponentSign)
		m.header.SetExponentSign(m.exponentSign)
		return m, nil, true

	case key.Matches(msg, m.keymap.Clear):
		m.history.Clear()
		m.lastErr = nil
		return m, nil, true
	}
	return m, nil, false
}

// convert moves every number of the input line into the history. Nothing is
// converted when any token is invalid.
func (m *Model) convert() {
	tokens := strings.Fields(m.input.Value())
	if len(tokens) == 0 {
		return
	}
	values, err := input.ParseAll(tokens)
	if err != nil {
		m.lastErr = err
		return
	}

	texts, err := m.formatter.Batch(values)
	if err != nil {
		m.lastErr = err
		return
	}
	entries := make([]HistoryEntry, len(values))
	for i, v := range values {
		entries[i] = HistoryEntry{Canonical: words.FormatInvariant(v), Words: texts[i]}
	}
	m.history.Add(entries...)
	m.header.AddConverted(len(entries))
	m.lastErr = nil
	m.input.Reset()
}

// ExitCode returns the process exit code for the finished session.
func (m Model) ExitCode() int { return m.exitCode }

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	inner := max(m.width-4, 10)
	inputBox := panelStyle.Width(m.width - 2).Render(m.input.View())
	preview := panelStyle.Width(m.width - 2).Render(
		panelTitle.Render("Preview") + "\n" + m.previewView(inner))

	used := headerHeight + footerHeight + inputHeight + lipgloss.Height(preview) + 3
	historyHeight := max(m.height-used, minBodyHeight)
	history := panelStyle.Width(m.width - 2).Render(
		panelTitle.Render("History") + "\n" + m.history.View(inner, historyHeight-1))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		inputBox,
		preview,
		history,
		m.help.View(m.keymap),
	)
}

// previewView renders the words of what is currently typed.
func (m Model) previewView(width int) string {
	if m.lastErr != nil {
		return errorStyle.Render(m.lastErr.Error())
	}
	tokens := strings.Fields(m.input.Value())
	if len(tokens) == 0 {
		return hintStyle.Render("Type one or more numbers and press enter.")
	}

	lines := make([]string, 0, min(len(tokens), previewLines))
	for i, tok := range tokens {
		if i == previewLines {
			lines = append(lines, hintStyle.Render("…"))
			break
		}
		v, err := input.ParseNumber(tok)
		if err != nil {
			lines = append(lines, errorStyle.Render(err.Error()))
			continue
		}
		lines = append(lines, renderConversion(words.FormatInvariant(v), m.formatter.Words(v), width))
	}
	return strings.Join(lines, "\n")
}

// Run starts the dashboard and blocks until the user quits or ctx ends.
func Run(ctx context.Context, cfg config.AppConfig, version string) int {
	initTUIStyles()

	model := NewModel(ctx, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		return m.ExitCode()
	}
	return apperrors.ExitSuccess
}

// watchContextCmd waits for context cancellation and reports it.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
