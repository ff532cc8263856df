package quiz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizgen/internal/question"
	"quizgen/internal/session"
)

var (
	colorTitle   = lipgloss.Color("33")
	colorMuted   = lipgloss.Color("242")
	colorCursor  = lipgloss.Color("212")
	colorCorrect = lipgloss.Color("42")
	colorWrong   = lipgloss.Color("196")
	colorWarn    = lipgloss.Color("214")
)

// renderTitle renders the input screen heading.
func renderTitle(noColor bool) string {
	return stylize("Quiz generator", noColor, colorTitle, true)
}

// renderHeader renders the position, timer, and score line.
func renderHeader(state session.Session, current int, noColor bool) string {
	line := "Question " + strconv.Itoa(current+1) + "/" + strconv.Itoa(state.Total()) +
		" | Answered " + strconv.Itoa(state.Answered()) + "/" + strconv.Itoa(state.Total())
	if state.Total() == 0 {
		line = "No questions"
	}
	if state.Timed {
		line += " | Time " + session.FormatRemaining(state.Remaining)
	}
	if state.Status == session.StatusSubmitted {
		line += " | Score " + session.FormatScore(state)
	}
	color := colorTitle
	if state.Timed && state.Status == session.StatusActive && state.Remaining <= 30 {
		color = colorWarn
	}
	return stylize(line, noColor, color, true)
}

// renderQuestion renders the prompt and options of one question.
func renderQuestion(state session.Session, current, cursor int, noColor bool) string {
	if current < 0 || current >= len(state.Questions) {
		return stylize("No questions to show.", noColor, colorMuted, false)
	}
	q := state.Questions[current]
	submitted := state.Status == session.StatusSubmitted
	lines := []string{q.Prompt}
	for i, option := range q.Options {
		lines = append(lines, renderOption(q, i, option, i == cursor && !submitted, submitted, noColor))
	}
	if submitted {
		lines = append(lines, "", renderVerdict(q, noColor))
	}
	return strings.Join(lines, "\n")
}

// renderOption renders one option row with its cursor and mark.
func renderOption(q question.Question, index int, option string, focused, submitted, noColor bool) string {
	pointer := "  "
	if focused {
		pointer = "> "
	}
	mark := "( )"
	if option == q.UserAnswer {
		mark = "(*)"
	}
	line := pointer + mark + " " + strconv.Itoa(index+1) + ". " + option
	switch {
	case submitted && q.HasCorrect && option == q.Correct:
		return stylize(line, noColor, colorCorrect, false)
	case submitted && option == q.UserAnswer:
		return stylize(line, noColor, colorWrong, false)
	case focused:
		return stylize(line, noColor, colorCursor, false)
	}
	return line
}

// renderVerdict explains the outcome of a reviewed question.
func renderVerdict(q question.Question, noColor bool) string {
	switch {
	case !q.HasCorrect:
		return stylize("No option matched the answer key.", noColor, colorWarn, false)
	case q.UserAnswer == "":
		return stylize("Not answered. Correct: "+q.Correct, noColor, colorWrong, false)
	case q.IsCorrect():
		return stylize("Correct.", noColor, colorCorrect, false)
	}
	return stylize("Wrong. Correct: "+q.Correct, noColor, colorWrong, false)
}

// renderProgress renders one cell per question, marking answered ones.
func renderProgress(state session.Session, current int, noColor bool) string {
	cells := make([]string, 0, len(state.Questions))
	for i, q := range state.Questions {
		cell := strconv.Itoa(i + 1)
		if q.UserAnswer != "" {
			cell += "*"
		}
		if i == current {
			cell = "[" + cell + "]"
		} else {
			cell = " " + cell + " "
		}
		color := colorMuted
		if state.Status == session.StatusSubmitted {
			color = colorWrong
			if q.IsCorrect() {
				color = colorCorrect
			}
		}
		cells = append(cells, stylize(cell, noColor, color, false))
	}
	return strings.Join(cells, "")
}

// renderStatus renders the last status message.
func renderStatus(text string, failed, noColor bool) string {
	color := colorMuted
	if failed {
		color = colorWrong
	}
	return stylize(text, noColor, color, false)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color, bold bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Bold(bold).Render(text)
}
