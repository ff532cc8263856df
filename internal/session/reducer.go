package session

import (
	"github.com/google/uuid"

	"quizgen/internal/question"
)

// DefaultSecondsPerQuestion is the countdown budget granted per question.
const DefaultSecondsPerQuestion = 60

// QuestionParser turns raw text into questions.
type QuestionParser interface {
	Parse(raw string) []question.Question
}

// Reducer applies events to sessions without mutating them.
type Reducer struct {
	parser             QuestionParser
	secondsPerQuestion int
	newID              func() string
}

// NewReducer builds a Reducer. A negative secondsPerQuestion is treated as
// zero, which disables the countdown.
func NewReducer(parser QuestionParser, secondsPerQuestion int) Reducer {
	if secondsPerQuestion < 0 {
		secondsPerQuestion = 0
	}
	return Reducer{
		parser:             parser,
		secondsPerQuestion: secondsPerQuestion,
		newID:              uuid.NewString,
	}
}

// WithIDs returns a copy of the reducer that names sessions with newID.
func (r Reducer) WithIDs(newID func() string) Reducer {
	r.newID = newID
	return r
}

// Reduce returns the session that results from applying event to state.
func (r Reducer) Reduce(state Session, event Event) Session {
	switch typed := event.(type) {
	case Generate:
		var questions []question.Question
		if r.parser != nil {
			questions = r.parser.Parse(typed.Text)
		}
		return r.start(questions)
	case Load:
		return r.start(cloneQuestions(typed.Questions))
	case Select:
		return applySelect(state, typed)
	case Submit:
		return applySubmit(state)
	case Tick:
		return applyTick(state, typed)
	}
	return state
}

// start opens a fresh attempt. A timed quiz with nothing to answer has no
// time left and is submitted right away.
func (r Reducer) start(questions []question.Question) Session {
	next := Session{
		ID:        r.newID(),
		Status:    StatusActive,
		Questions: questions,
		Timed:     r.secondsPerQuestion > 0,
		Remaining: r.secondsPerQuestion * len(questions),
	}
	if next.Timed && next.Remaining <= 0 {
		return applySubmit(next)
	}
	return next
}

// applySelect records an option for one question, copying the slice.
func applySelect(state Session, event Select) Session {
	if state.Status != StatusActive {
		return state
	}
	if event.Index < 0 || event.Index >= len(state.Questions) {
		return state
	}
	if !state.Questions[event.Index].HasOption(event.Option) {
		return state
	}
	questions := cloneQuestions(state.Questions)
	questions[event.Index].UserAnswer = event.Option
	state.Questions = questions
	return state
}

func applySubmit(state Session) Session {
	if state.Status != StatusActive {
		return state
	}
	state.Status = StatusSubmitted
	state.Score = Score(state.Questions)
	return state
}

func applyTick(state Session, event Tick) Session {
	if !state.Ticking() || event.SessionID != state.ID {
		return state
	}
	if state.Remaining > 0 {
		state.Remaining--
	}
	if state.Remaining == 0 {
		return applySubmit(state)
	}
	return state
}

// Score counts questions whose answer equals the correct option exactly.
func Score(questions []question.Question) int {
	correct := 0
	for _, q := range questions {
		if q.IsCorrect() {
			correct++
		}
	}
	return correct
}

func cloneQuestions(questions []question.Question) []question.Question {
	if questions == nil {
		return nil
	}
	out := make([]question.Question, len(questions))
	copy(out, questions)
	return out
}
