package quiz

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizgen/internal/logging"
	"quizgen/internal/question"
	"quizgen/internal/session"
)

type screen int

const (
	screenInput screen = iota
	screenQuiz
	screenReview
)

// Model is the interactive quiz screen.
type Model struct {
	ctx      context.Context
	reducer  session.Reducer
	shuffler question.Shuffler
	logger   *logging.Logger

	state    session.Session
	screen   screen
	current  int
	cursor   int
	tickTag  int
	status   string
	failed   bool
	prompt   bool
	input    textarea.Model
	path     textinput.Model
	keys     keyMap
	help     help.Model
	noColor  bool
	autoTick tea.Cmd
}

// Options configures the quiz model.
type Options struct {
	Context  context.Context
	Reducer  session.Reducer
	Shuffler question.Shuffler
	Logger   *logging.Logger
	NoColor  bool

	// Text pre-fills the input area. With Start set the quiz is generated
	// from it immediately.
	Text  string
	Start bool
	// Questions, when non-empty, start a quiz directly.
	Questions []question.Question
}

// NewModel constructs the quiz model.
func NewModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	input := textarea.New()
	input.Placeholder = "Paste questions here, or press ctrl+o to load a file"
	input.CharLimit = 0
	input.MaxHeight = 0
	input.ShowLineNumbers = false
	input.SetValue(opts.Text)
	input.Focus()

	path := textinput.New()
	path.Placeholder = "path/to/questions.docx"
	path.Prompt = "File: "

	m := Model{
		ctx:      ctx,
		reducer:  opts.Reducer,
		shuffler: opts.Shuffler,
		logger:   logger,
		input:    input,
		path:     path,
		keys:     defaultKeys(),
		help:     help.New(),
		noColor:  opts.NoColor,
	}
	var cmd tea.Cmd
	switch {
	case len(opts.Questions) > 0:
		m, cmd = m.apply(session.Load{Questions: opts.Questions})
	case opts.Start:
		m, cmd = m.apply(session.Generate{Text: opts.Text})
	}
	m.autoTick = cmd
	return m
}

// Init starts the countdown of a quiz opened at construction.
func (m Model) Init() tea.Cmd {
	if m.autoTick != nil {
		return m.autoTick
	}
	return textarea.Blink
}

// State returns the current session.
func (m Model) State() session.Session {
	return m.state
}

// Update routes key presses, timer ticks, and file loads.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = typed.Width
		m.input.SetWidth(max(typed.Width-2, 20))
		m.input.SetHeight(max(typed.Height-8, 3))
		m.path.Width = max(typed.Width-10, 10)
		return m, nil
	case tickMsg:
		if typed.Tag != m.tickTag {
			return m, nil
		}
		return m.apply(session.Tick{SessionID: typed.SessionID})
	case textLoadedMsg:
		m.input.SetValue(typed.Text)
		m.setStatus("Loaded "+typed.Path, false)
		m.logger.Info("file loaded", "path", typed.Path, "bytes", len(typed.Text))
		return m, nil
	case quizLoadedMsg:
		m.logger.Info("quiz loaded", "path", typed.Path, "questions", len(typed.Questions))
		next, cmd := m.apply(session.Load{Questions: typed.Questions})
		next.setStatus("Loaded "+typed.Path, false)
		return next, cmd
	case loadFailedMsg:
		m.setStatus("Could not load "+typed.Path+": "+typed.Err.Error(), true)
		m.logger.Warn("file load failed", "path", typed.Path, "error", typed.Err)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(typed, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.prompt {
			return m.updatePrompt(typed)
		}
		switch m.screen {
		case screenQuiz:
			return m.updateQuiz(typed)
		case screenReview:
			return m.updateReview(typed)
		default:
			return m.updateInput(typed)
		}
	}
	if m.screen == screenInput && !m.prompt {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Generate):
		next, cmd := m.apply(session.Generate{Text: m.input.Value()})
		next.logger.Info("quiz generated", "session_id", next.state.ID, "questions", next.state.Total())
		if next.state.Total() == 0 {
			next.setStatus("No questions found in the text", true)
		}
		return next, cmd
	case key.Matches(msg, m.keys.Open):
		m.prompt = true
		m.input.Blur()
		m.path.SetValue("")
		return m, m.path.Focus()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.closePrompt(), textarea.Blink
	case tea.KeyEnter:
		path := strings.TrimSpace(m.path.Value())
		m = m.closePrompt()
		if path == "" {
			return m, nil
		}
		m.setStatus("Loading "+path+"...", false)
		return m, loadFile(m.ctx, path, m.shuffler)
	}
	var cmd tea.Cmd
	m.path, cmd = m.path.Update(msg)
	return m, cmd
}

func (m Model) closePrompt() Model {
	m.prompt = false
	m.path.Blur()
	if m.screen == screenInput {
		m.input.Focus()
	}
	return m
}

func (m Model) updateQuiz(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q, ok := m.currentQuestion()
	switch {
	case key.Matches(msg, m.keys.Submit):
		next, cmd := m.apply(session.Submit{})
		next.logger.Info("quiz submitted", "session_id", next.state.ID, "score", session.FormatScore(next.state))
		return next, cmd
	case key.Matches(msg, m.keys.Back):
		return m.backToInput(), textarea.Blink
	case key.Matches(msg, m.keys.Next):
		m.moveQuestion(1)
	case key.Matches(msg, m.keys.Prev):
		m.moveQuestion(-1)
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if ok && m.cursor < len(q.Options)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Choose):
		if ok && m.cursor < len(q.Options) {
			return m.apply(session.Select{Index: m.current, Option: q.Options[m.cursor]})
		}
	case key.Matches(msg, m.keys.Pick):
		index := int(msg.String()[0] - '1')
		if ok && index < len(q.Options) {
			m.cursor = index
			return m.apply(session.Select{Index: m.current, Option: q.Options[index]})
		}
	}
	return m, nil
}

func (m Model) updateReview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m.backToInput(), textarea.Blink
	case key.Matches(msg, m.keys.Next):
		m.moveQuestion(1)
	case key.Matches(msg, m.keys.Prev):
		m.moveQuestion(-1)
	}
	return m, nil
}

// apply reduces an event and keeps the countdown in step with the result.
// Leaving Active or replacing the session bumps the tick tag, which turns
// any tick already in flight into a no-op.
func (m Model) apply(event session.Event) (Model, tea.Cmd) {
	prev := m.state
	m.state = m.reducer.Reduce(prev, event)

	if m.state.ID != prev.ID {
		m.current, m.cursor = 0, 0
		m.status, m.failed = "", false
	}
	switch m.state.Status {
	case session.StatusActive:
		m.screen = screenQuiz
		m.input.Blur()
	case session.StatusSubmitted:
		m.screen = screenReview
		m.input.Blur()
	}
	if prev.Status != m.state.Status || prev.ID != m.state.ID {
		m.logger.Debug("session transition",
			"event", session.EventName(event),
			"session_id", m.state.ID,
			"from", prev.Status.String(),
			"to", m.state.Status.String(),
		)
	}

	restarted := m.state.ID != prev.ID
	if prev.Ticking() && (restarted || !m.state.Ticking()) {
		m.tickTag++
	}
	if !m.state.Ticking() {
		return m, nil
	}
	if _, isTick := event.(session.Tick); isTick || restarted {
		return m, tick(m.state.ID, m.tickTag)
	}
	return m, nil
}

// backToInput abandons the current attempt and returns to editing.
func (m Model) backToInput() Model {
	if m.state.Ticking() {
		m.tickTag++
	}
	m.state = session.Session{}
	m.screen = screenInput
	m.current, m.cursor = 0, 0
	m.input.Focus()
	return m
}

func (m *Model) moveQuestion(delta int) {
	total := m.state.Total()
	if total == 0 {
		return
	}
	next := m.current + delta
	if next < 0 || next >= total {
		return
	}
	m.current = next
	m.cursor = 0
	if q, ok := m.currentQuestion(); ok && q.UserAnswer != "" {
		for i, option := range q.Options {
			if option == q.UserAnswer {
				m.cursor = i
			}
		}
	}
}

func (m Model) currentQuestion() (question.Question, bool) {
	if m.current < 0 || m.current >= len(m.state.Questions) {
		return question.Question{}, false
	}
	return m.state.Questions[m.current], true
}

func (m *Model) setStatus(text string, failed bool) {
	m.status = text
	m.failed = failed
}

// View renders the active screen.
func (m Model) View() string {
	keys := m.keys
	keys.screen = m.screen
	var body string
	switch m.screen {
	case screenQuiz, screenReview:
		body = lipgloss.JoinVertical(lipgloss.Left,
			renderHeader(m.state, m.current, m.noColor),
			"",
			renderQuestion(m.state, m.current, m.cursor, m.noColor),
			"",
			renderProgress(m.state, m.current, m.noColor),
		)
	default:
		body = lipgloss.JoinVertical(lipgloss.Left,
			renderTitle(m.noColor),
			m.input.View(),
		)
	}
	parts := []string{body}
	if m.prompt {
		parts = append(parts, m.path.View())
	}
	if m.status != "" {
		parts = append(parts, renderStatus(m.status, m.failed, m.noColor))
	}
	parts = append(parts, m.help.View(keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
