package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"quizgen/internal/logging"
	"quizgen/internal/question"
	"quizgen/internal/session"
)

// textTerminator ends pasted question text in plain mode.
const textTerminator = "---"

// plainOptions configures a line-mode quiz attempt.
type plainOptions struct {
	In        io.Reader
	Out       io.Writer
	Reducer   session.Reducer
	Scheduler session.Scheduler
	Logger    *logging.Logger
	Source    quizSource
	HasSource bool
}

// runPlain takes a quiz over plain stdin/stdout. Question text is read from
// the source file or from stdin up to a "---" line, then each input line is
// one command. End of input submits.
func runPlain(ctx context.Context, opts plainOptions) (session.Session, error) {
	reader := bufio.NewReader(opts.In)
	out := opts.Out

	text := opts.Source.Text
	if !opts.HasSource {
		fmt.Fprintf(out, "Paste the questions, then a line with %s:\n", textTerminator)
		var err error
		text, err = readQuestionText(reader)
		if err != nil {
			return session.Session{}, err
		}
	}

	timeUp := make(chan struct{})
	var once sync.Once
	controller := session.NewController(opts.Reducer, session.ControllerOptions{
		Scheduler: opts.Scheduler,
		Logger:    opts.Logger,
		OnChange: func(prev, next session.Session) {
			if prev.Ticking() && next.Status == session.StatusSubmitted && next.Remaining == 0 {
				once.Do(func() { close(timeUp) })
			}
		},
	})
	defer controller.Close()

	var state session.Session
	if opts.Source.Spec {
		state = controller.Dispatch(session.Load{Questions: opts.Source.Questions})
	} else {
		state = controller.Dispatch(session.Generate{Text: text})
	}
	if state.Total() == 0 {
		state = controller.Dispatch(session.Submit{})
		fmt.Fprintln(out, "No questions found.")
		printScore(out, state)
		return state, nil
	}
	printQuiz(out, state)
	printPlainHelp(out)

	lines := make(chan string)
	done := make(chan struct{})
	defer close(done)
	go readCommands(reader, lines, done)

	for {
		select {
		case <-ctx.Done():
			state = controller.Dispatch(session.Submit{})
			fmt.Fprintln(out, "Interrupted.")
			printReview(out, state)
			return state, nil
		case <-timeUp:
			state = controller.State()
			fmt.Fprintln(out, "Time is up.")
			printReview(out, state)
			return state, nil
		case line, ok := <-lines:
			if !ok {
				state = controller.Dispatch(session.Submit{})
				printReview(out, state)
				return state, nil
			}
			state = handleCommand(out, controller, line)
			if state.Status == session.StatusSubmitted {
				printReview(out, state)
				return state, nil
			}
		}
	}
}

// handleCommand applies one line of input.
func handleCommand(out io.Writer, controller *session.Controller, line string) session.Session {
	state := controller.State()
	fields := strings.Fields(strings.ToLower(line))
	switch {
	case len(fields) == 0:
		return state
	case fields[0] == "submit" || fields[0] == "s":
		return controller.Dispatch(session.Submit{})
	case fields[0] == "status":
		printStatus(out, state)
		return state
	case fields[0] == "list":
		printQuiz(out, state)
		return state
	case len(fields) == 2:
		index, option, ok := parseAnswer(state, fields[0], fields[1])
		if !ok {
			fmt.Fprintf(out, "Invalid answer %q.\n", line)
			return state
		}
		next := controller.Dispatch(session.Select{Index: index, Option: option})
		fmt.Fprintf(out, "Q%d: %s\n", index+1, option)
		return next
	}
	printPlainHelp(out)
	return state
}

// parseAnswer resolves "<question> <position>" where position is 1-4 or a-d.
func parseAnswer(state session.Session, questionField, optionField string) (int, string, bool) {
	number, err := strconv.Atoi(questionField)
	if err != nil || number < 1 || number > state.Total() {
		return 0, "", false
	}
	q := state.Questions[number-1]
	position := -1
	if len(optionField) == 1 {
		switch c := optionField[0]; {
		case c >= '1' && c <= '9':
			position = int(c - '1')
		case c >= 'a' && c <= 'z':
			position = int(c - 'a')
		}
	}
	if position < 0 || position >= len(q.Options) {
		return 0, "", false
	}
	return number - 1, q.Options[position], true
}

// readQuestionText reads lines until the terminator or end of input.
func readQuestionText(reader *bufio.Reader) (string, error) {
	var lines []string
	for {
		line, err := readLine(reader)
		if err != nil && err != io.EOF {
			return "", fmt.Errorf("read questions: %w", err)
		}
		if strings.TrimSpace(line) == textTerminator {
			break
		}
		if line != "" || err == nil {
			lines = append(lines, line)
		}
		if err == io.EOF {
			break
		}
	}
	return strings.Join(lines, "\n"), nil
}

// readCommands forwards input lines until end of input or until done is
// closed, then closes lines. A read already blocked on input stays blocked
// until that input arrives.
func readCommands(reader *bufio.Reader, lines chan<- string, done <-chan struct{}) {
	defer close(lines)
	for {
		line, err := readLine(reader)
		if line != "" {
			select {
			case lines <- line:
			case <-done:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

func printQuiz(out io.Writer, state session.Session) {
	fmt.Fprintf(out, "\n%d question(s)", state.Total())
	if state.Timed {
		fmt.Fprintf(out, " | Time %s", session.FormatRemaining(state.Remaining))
	}
	fmt.Fprintln(out)
	for i, q := range state.Questions {
		fmt.Fprintf(out, "\n[%d] %s\n", i+1, q.Prompt)
		for j, option := range q.Options {
			mark := " "
			if option == q.UserAnswer {
				mark = "*"
			}
			fmt.Fprintf(out, "  %s%c) %s\n", mark, 'a'+j, option)
		}
	}
	fmt.Fprintln(out)
}

func printPlainHelp(out io.Writer) {
	fmt.Fprintln(out, `Answer with "<question> <option>" (for example "1 b"), or type status, list or submit.`)
}

func printStatus(out io.Writer, state session.Session) {
	line := fmt.Sprintf("Answered %d/%d", state.Answered(), state.Total())
	if state.Timed {
		line += " | Time " + session.FormatRemaining(state.Remaining)
	}
	fmt.Fprintln(out, line)
}

func printReview(out io.Writer, state session.Session) {
	fmt.Fprintln(out, "\nResults")
	for i, q := range state.Questions {
		fmt.Fprintf(out, "[%d] %s\n", i+1, reviewLine(q))
	}
	printScore(out, state)
}

func reviewLine(q question.Question) string {
	switch {
	case !q.HasCorrect:
		return "no option matched the answer key"
	case q.UserAnswer == "":
		return "not answered, correct: " + q.Correct
	case q.IsCorrect():
		return "correct"
	}
	return "wrong, you chose " + q.UserAnswer + ", correct: " + q.Correct
}

func printScore(out io.Writer, state session.Session) {
	fmt.Fprintf(out, "Score: %s\n", session.FormatScore(state))
}
