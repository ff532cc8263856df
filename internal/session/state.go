// Package session holds the quiz attempt state machine.
//
// A Session value is never mutated in place: the Reducer returns a new
// value for every event, copying any slice it changes.
package session

import "quizgen/internal/question"

// Status is the lifecycle stage of a quiz attempt.
type Status int

const (
	// StatusIdle means no quiz has been generated yet.
	StatusIdle Status = iota
	// StatusActive means the quiz is being answered and the timer may run.
	StatusActive
	// StatusSubmitted means the attempt is over and scored.
	StatusSubmitted
)

// String returns a lower-case label for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusActive:
		return "active"
	case StatusSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Session is one quiz attempt from generation to submission.
type Session struct {
	ID        string
	Status    Status
	Questions []question.Question
	Remaining int
	Timed     bool
	Score     int
}

// Total returns the number of questions in the attempt.
func (s Session) Total() int {
	return len(s.Questions)
}

// Answered returns how many questions have a recorded selection.
func (s Session) Answered() int {
	count := 0
	for _, q := range s.Questions {
		if q.UserAnswer != "" {
			count++
		}
	}
	return count
}

// Ticking reports whether the countdown should be running.
func (s Session) Ticking() bool {
	return s.Status == StatusActive && s.Timed
}
