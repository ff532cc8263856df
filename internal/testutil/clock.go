package testutil

import (
	"sync"
	"time"
)

// FakeScheduler is a manual clock that runs AfterFunc callbacks when
// Advance moves time past their deadline.
type FakeScheduler struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
	fired  int
}

type fakeTimer struct {
	at   time.Time
	fn   func()
	done bool
}

// NewFakeScheduler initializes a FakeScheduler at the provided start time.
func NewFakeScheduler(start time.Time) *FakeScheduler {
	return &FakeScheduler{now: start}
}

// Now returns the current fake time.
func (s *FakeScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// AfterFunc registers fn to run once the fake time reaches now+d.
func (s *FakeScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	timer := &fakeTimer{at: s.now.Add(d), fn: fn}
	s.timers = append(s.timers, timer)
	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		if timer.done {
			return false
		}
		timer.done = true
		return true
	}
}

// Advance moves the fake time forward, running due callbacks in deadline
// order. Callbacks run without the scheduler lock held and may schedule
// further callbacks.
func (s *FakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now.Add(d)
	for {
		next := s.nextDueLocked(target)
		if next == nil {
			break
		}
		next.done = true
		s.now = next.at
		s.fired++
		s.mu.Unlock()
		next.fn()
		s.mu.Lock()
	}
	s.now = target
	s.mu.Unlock()
}

// Pending returns how many callbacks are waiting to run.
func (s *FakeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, timer := range s.timers {
		if !timer.done {
			count++
		}
	}
	return count
}

// Fired returns how many callbacks have run.
func (s *FakeScheduler) Fired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fired
}

func (s *FakeScheduler) nextDueLocked(target time.Time) *fakeTimer {
	var next *fakeTimer
	for _, timer := range s.timers {
		if timer.done || timer.at.After(target) {
			continue
		}
		if next == nil || timer.at.Before(next.at) {
			next = timer
		}
	}
	return next
}
