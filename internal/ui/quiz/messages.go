package quiz

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"quizgen/internal/extract"
	"quizgen/internal/question"
	"quizgen/internal/session"
)

// tickMsg is one countdown second for a session. Tag identifies the timer
// that scheduled it so cancelled timers can be ignored.
type tickMsg struct {
	SessionID string
	Tag       int
}

// textLoadedMsg carries extracted plain text for the input area.
type textLoadedMsg struct {
	Path string
	Text string
}

// quizLoadedMsg carries questions read from a structured quiz file.
type quizLoadedMsg struct {
	Path      string
	Questions []question.Question
}

// loadFailedMsg reports a file that could not be read.
type loadFailedMsg struct {
	Path string
	Err  error
}

// tick schedules the next countdown second.
func tick(sessionID string, tag int) tea.Cmd {
	return tea.Tick(session.TickInterval, func(time.Time) tea.Msg {
		return tickMsg{SessionID: sessionID, Tag: tag}
	})
}

// loadFile reads path off the update loop and reports the result.
func loadFile(ctx context.Context, path string, shuffler question.Shuffler) tea.Cmd {
	return func() tea.Msg {
		if question.IsSpecPath(path) {
			questions, err := question.OpenQuiz(path, shuffler)
			if err != nil {
				return loadFailedMsg{Path: path, Err: err}
			}
			return quizLoadedMsg{Path: path, Questions: questions}
		}
		text, err := extract.File(ctx, path)
		if err != nil {
			return loadFailedMsg{Path: path, Err: err}
		}
		return textLoadedMsg{Path: path, Text: text}
	}
}
