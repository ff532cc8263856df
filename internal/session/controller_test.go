package session

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"quizgen/internal/logging"
	"quizgen/internal/testutil"
)

func newTestController(t *testing.T, onChange ChangeFunc) (*Controller, *testutil.FakeScheduler) {
	t.Helper()
	scheduler := testutil.NewFakeScheduler(time.Unix(0, 0))
	controller := NewController(testReducer(DefaultSecondsPerQuestion), ControllerOptions{
		Scheduler: scheduler,
		OnChange:  onChange,
	})
	t.Cleanup(controller.Close)
	return controller, scheduler
}

// TestControllerCountsDownToSubmit verifies one tick per second until zero.
func TestControllerCountsDownToSubmit(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		controller, scheduler := newTestController(t, nil)
		state := controller.Dispatch(Generate{Text: twoQuestions})
		if state.Remaining != 120 || scheduler.Pending() != 1 {
			t.Fatalf("expected one pending tick and 120s, got %d pending, %ds", scheduler.Pending(), state.Remaining)
		}

		scheduler.Advance(30 * time.Second)
		if got := controller.State().Remaining; got != 90 {
			t.Fatalf("expected 90s left, got %d", got)
		}

		scheduler.Advance(90 * time.Second)
		final := controller.State()
		if final.Status != StatusSubmitted || final.Remaining != 0 {
			t.Fatalf("expected auto submit at 0, got %s with %d", final.Status, final.Remaining)
		}
		if scheduler.Fired() != 120 {
			t.Fatalf("expected 120 ticks, got %d", scheduler.Fired())
		}
		if scheduler.Pending() != 0 || controller.Pending() {
			t.Fatalf("expected no pending tick after submit")
		}

		scheduler.Advance(10 * time.Second)
		if scheduler.Fired() != 120 {
			t.Fatalf("expected no ticks after submit, got %d", scheduler.Fired())
		}
	})
}

// TestControllerSubmitCancelsTick verifies no tick fires after submission.
func TestControllerSubmitCancelsTick(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		var ticksAfterSubmit int
		submitted := false
		controller, scheduler := newTestController(t, func(prev, next Session) {
			if submitted && prev.ID == next.ID {
				ticksAfterSubmit++
			}
		})
		controller.Dispatch(Generate{Text: twoQuestions})
		scheduler.Advance(5 * time.Second)

		state := controller.Dispatch(Submit{})
		submitted = true
		if state.Status != StatusSubmitted {
			t.Fatalf("expected submitted, got %s", state.Status)
		}
		if controller.Pending() || scheduler.Pending() != 0 {
			t.Fatalf("expected pending tick to be cancelled synchronously")
		}
		scheduler.Advance(time.Minute)
		if ticksAfterSubmit != 0 {
			t.Fatalf("expected no transitions after submit, got %d", ticksAfterSubmit)
		}
		if got := controller.State().Remaining; got != 115 {
			t.Fatalf("expected frozen countdown at 115, got %d", got)
		}
	})
}

// TestControllerRegenerateReplacesTimer verifies one pending tick per session.
func TestControllerRegenerateReplacesTimer(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		controller, scheduler := newTestController(t, nil)
		first := controller.Dispatch(Generate{Text: twoQuestions})
		scheduler.Advance(10 * time.Second)
		second := controller.Dispatch(Generate{Text: twoQuestions})
		if first.ID == second.ID {
			t.Fatalf("expected a new session id")
		}
		if scheduler.Pending() != 1 {
			t.Fatalf("expected exactly one pending tick, got %d", scheduler.Pending())
		}
		scheduler.Advance(time.Second)
		if got := controller.State().Remaining; got != 119 {
			t.Fatalf("expected new countdown at 119, got %d", got)
		}
	})
}

// TestControllerSelectKeepsCadence verifies selections do not re-arm the tick.
func TestControllerSelectKeepsCadence(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		controller, scheduler := newTestController(t, nil)
		state := controller.Dispatch(Generate{Text: twoQuestions})
		scheduler.Advance(500 * time.Millisecond)
		controller.Dispatch(Select{Index: 0, Option: state.Questions[0].Options[0]})
		scheduler.Advance(500 * time.Millisecond)
		if got := controller.State().Remaining; got != 119 {
			t.Fatalf("expected tick on the original cadence, got %d", got)
		}
	})
}

// TestControllerRealScheduler verifies the wall clock path stops cleanly.
func TestControllerRealScheduler(t *testing.T) {
	var mu sync.Mutex
	var transitions []Status
	controller := NewController(testReducer(DefaultSecondsPerQuestion), ControllerOptions{
		OnChange: func(prev, next Session) {
			mu.Lock()
			defer mu.Unlock()
			transitions = append(transitions, next.Status)
		},
	})
	defer controller.Close()
	controller.Dispatch(Generate{Text: twoQuestions})
	controller.Dispatch(Submit{})
	if controller.Pending() {
		t.Fatalf("expected no pending tick after submit")
	}
	mu.Lock()
	defer mu.Unlock()
	if len(transitions) != 2 || transitions[1] != StatusSubmitted {
		t.Fatalf("unexpected transitions %v", transitions)
	}
}

// TestControllerLogsTransitions verifies transitions reach the logger.
func TestControllerLogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, "info")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	controller := NewController(testReducer(0), ControllerOptions{Logger: logger})
	controller.Dispatch(Generate{Text: twoQuestions})
	controller.Dispatch(Submit{})
	out := buf.String()
	if strings.Count(out, "session transition") != 2 || !strings.Contains(out, `"to":"submitted"`) {
		t.Fatalf("unexpected log output %s", out)
	}
}

// runWithTimeout executes a test body with a timeout.
func runWithTimeout(t *testing.T, timeout time.Duration, fn func()) {
	t.Helper()
	ctx := testutil.Context(t, timeout)
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-ctx.Done():
		t.Fatalf("test timed out")
	}
}
