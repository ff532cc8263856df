package session

import (
	"fmt"
	"strings"
	"testing"

	"quizgen/internal/question"
)

const twoQuestions = "1) What is 2+2?\nA. 3\nB. 4\nC. 5\nD. 6\nAnswer key: B\n" +
	"2) Capital of France?\nA. Rome\nB. Berlin\nC. Paris\nD. Madrid\nAnswer key: C"

// sequentialIDs returns s1, s2, ... for predictable session ids.
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("s%d", n)
	}
}

func testReducer(secondsPerQuestion int) Reducer {
	return NewReducer(question.NewParser(nil), secondsPerQuestion).WithIDs(sequentialIDs())
}

// TestGenerateStartsActiveSession verifies generate sets up the countdown.
func TestGenerateStartsActiveSession(t *testing.T) {
	r := testReducer(DefaultSecondsPerQuestion)
	state := r.Reduce(Session{}, Generate{Text: twoQuestions})
	if state.Status != StatusActive {
		t.Fatalf("expected active status, got %s", state.Status)
	}
	if state.Total() != 2 {
		t.Fatalf("expected 2 questions, got %d", state.Total())
	}
	if state.Remaining != 120 || !state.Timed {
		t.Fatalf("expected 120 timed seconds, got %d (timed=%v)", state.Remaining, state.Timed)
	}
	if state.ID != "s1" {
		t.Fatalf("expected id s1, got %q", state.ID)
	}
}

// TestTickCountdownAutoSubmits verifies the timer path to submission.
func TestTickCountdownAutoSubmits(t *testing.T) {
	r := testReducer(DefaultSecondsPerQuestion)
	state := r.Reduce(Session{}, Generate{Text: twoQuestions})
	for i := 0; i < 119; i++ {
		state = r.Reduce(state, Tick{SessionID: state.ID})
	}
	if state.Status != StatusActive || state.Remaining != 1 {
		t.Fatalf("expected active with 1s left, got %s with %d", state.Status, state.Remaining)
	}
	state = r.Reduce(state, Tick{SessionID: state.ID})
	if state.Status != StatusSubmitted || state.Remaining != 0 {
		t.Fatalf("expected submitted at 0, got %s with %d", state.Status, state.Remaining)
	}
	after := r.Reduce(state, Tick{SessionID: state.ID})
	if after.Remaining != 0 || after.Status != StatusSubmitted {
		t.Fatalf("expected ticks after submit to be no-ops, got %+v", after)
	}
}

// TestTickIgnoresStaleSession verifies ticks from a replaced session.
func TestTickIgnoresStaleSession(t *testing.T) {
	r := testReducer(DefaultSecondsPerQuestion)
	first := r.Reduce(Session{}, Generate{Text: twoQuestions})
	second := r.Reduce(first, Generate{Text: twoQuestions})
	got := r.Reduce(second, Tick{SessionID: first.ID})
	if got.Remaining != 120 {
		t.Fatalf("expected stale tick ignored, got %d", got.Remaining)
	}
}

// TestSelectOverwritesWithoutMutation verifies structural updates.
func TestSelectOverwritesWithoutMutation(t *testing.T) {
	r := testReducer(DefaultSecondsPerQuestion)
	start := r.Reduce(Session{}, Generate{Text: twoQuestions})
	first := r.Reduce(start, Select{Index: 0, Option: "A. 3"})
	second := r.Reduce(first, Select{Index: 0, Option: "B. 4"})

	if second.Questions[0].UserAnswer != "B. 4" {
		t.Fatalf("expected B. 4, got %q", second.Questions[0].UserAnswer)
	}
	if first.Questions[0].UserAnswer != "A. 3" {
		t.Fatalf("expected earlier session untouched, got %q", first.Questions[0].UserAnswer)
	}
	if start.Questions[0].UserAnswer != "" {
		t.Fatalf("expected initial session untouched, got %q", start.Questions[0].UserAnswer)
	}
	if second.Answered() != 1 {
		t.Fatalf("expected 1 answered, got %d", second.Answered())
	}
}

// TestSelectIgnoresInvalidInput verifies bad indexes and unknown options.
func TestSelectIgnoresInvalidInput(t *testing.T) {
	r := testReducer(DefaultSecondsPerQuestion)
	state := r.Reduce(Session{}, Generate{Text: twoQuestions})
	for _, event := range []Select{
		{Index: -1, Option: "A. 3"},
		{Index: 5, Option: "A. 3"},
		{Index: 0, Option: "Z. nope"},
	} {
		if got := r.Reduce(state, event); got.Answered() != 0 {
			t.Fatalf("expected %+v to be ignored", event)
		}
	}
	if got := r.Reduce(Session{}, Select{Index: 0, Option: "A. 3"}); got.Status != StatusIdle {
		t.Fatalf("expected idle select to be ignored")
	}
}

// TestScoring verifies full and empty scores.
func TestScoring(t *testing.T) {
	r := testReducer(DefaultSecondsPerQuestion)
	state := r.Reduce(Session{}, Generate{Text: twoQuestions})

	empty := r.Reduce(state, Submit{})
	if empty.Score != 0 || FormatScore(empty) != "0/2" {
		t.Fatalf("expected 0/2, got %s", FormatScore(empty))
	}

	for i, q := range state.Questions {
		state = r.Reduce(state, Select{Index: i, Option: q.Correct})
	}
	full := r.Reduce(state, Submit{})
	if full.Status != StatusSubmitted || full.Score != full.Total() {
		t.Fatalf("expected full score, got %s", FormatScore(full))
	}
}

// TestSelectAfterSubmitIgnored verifies the score is final.
func TestSelectAfterSubmitIgnored(t *testing.T) {
	r := testReducer(DefaultSecondsPerQuestion)
	state := r.Reduce(Session{}, Generate{Text: twoQuestions})
	state = r.Reduce(state, Submit{})
	state = r.Reduce(state, Select{Index: 0, Option: state.Questions[0].Correct})
	if state.Questions[0].UserAnswer != "" || state.Score != 0 {
		t.Fatalf("expected select after submit to be ignored, got %+v", state.Questions[0])
	}
}

// TestUnresolvedQuestionNeverScores verifies unmatched answer letters.
func TestUnresolvedQuestionNeverScores(t *testing.T) {
	r := testReducer(DefaultSecondsPerQuestion)
	state := r.Reduce(Session{}, Generate{Text: "1) Pick\nA. a\nB. b\nC. c\nD. d\nAnswer key: E"})
	for _, option := range state.Questions[0].Options {
		picked := r.Reduce(state, Select{Index: 0, Option: option})
		if got := r.Reduce(picked, Submit{}); got.Score != 0 {
			t.Fatalf("option %q scored on an unresolved question", option)
		}
	}
}

// TestEmptyGenerate verifies empty input yields an empty submitted quiz.
func TestEmptyGenerate(t *testing.T) {
	r := testReducer(DefaultSecondsPerQuestion)
	state := r.Reduce(Session{}, Generate{Text: "nothing to see"})
	if state.Total() != 0 || state.Status != StatusSubmitted || FormatScore(state) != "0/0" {
		t.Fatalf("expected empty submitted quiz, got %+v", state)
	}
}

// TestUntimedSession verifies a zero budget disables the countdown.
func TestUntimedSession(t *testing.T) {
	r := testReducer(0)
	state := r.Reduce(Session{}, Generate{Text: twoQuestions})
	if state.Timed || state.Ticking() || state.Status != StatusActive {
		t.Fatalf("expected untimed active session, got %+v", state)
	}
	if got := r.Reduce(state, Tick{SessionID: state.ID}); got.Status != StatusActive {
		t.Fatalf("expected ticks to be ignored")
	}
}

// TestLoadCopiesQuestions verifies Load does not alias its input.
func TestLoadCopiesQuestions(t *testing.T) {
	r := testReducer(30)
	questions := question.NewParser(nil).Parse(twoQuestions)
	state := r.Reduce(Session{}, Load{Questions: questions})
	state = r.Reduce(state, Select{Index: 1, Option: questions[1].Options[0]})
	if questions[1].UserAnswer != "" {
		t.Fatalf("expected caller's questions untouched")
	}
	if state.Remaining != 60 {
		t.Fatalf("expected 60 seconds, got %d", state.Remaining)
	}
}

// TestFormatRemaining verifies M:SS rendering.
func TestFormatRemaining(t *testing.T) {
	cases := map[int]string{0: "0:00", 5: "0:05", 60: "1:00", 119: "1:59", 600: "10:00", -3: "0:00"}
	for seconds, want := range cases {
		if got := FormatRemaining(seconds); got != want {
			t.Fatalf("FormatRemaining(%d) = %q, want %q", seconds, got, want)
		}
	}
}

// TestStatusString verifies status labels.
func TestStatusString(t *testing.T) {
	labels := []string{StatusIdle.String(), StatusActive.String(), StatusSubmitted.String()}
	if strings.Join(labels, ",") != "idle,active,submitted" {
		t.Fatalf("unexpected labels %v", labels)
	}
}
