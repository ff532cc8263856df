package session

import "quizgen/internal/question"

// Event is an input to the Reducer.
type Event interface {
	eventName() string
}

// Generate parses raw text into a fresh attempt.
type Generate struct {
	Text string
}

// Load starts a fresh attempt from already built questions.
type Load struct {
	Questions []question.Question
}

// Select records an answer for the question at Index.
type Select struct {
	Index  int
	Option string
}

// Submit ends the attempt and scores it.
type Submit struct{}

// Tick is one elapsed second for the session with SessionID.
type Tick struct {
	SessionID string
}

func (Generate) eventName() string { return "generate" }
func (Load) eventName() string     { return "load" }
func (Select) eventName() string   { return "select" }
func (Submit) eventName() string   { return "submit" }
func (Tick) eventName() string     { return "tick" }

// EventName returns a short label for logging.
func EventName(event Event) string {
	if event == nil {
		return ""
	}
	return event.eventName()
}
