package session

import "time"

// TickInterval is the countdown resolution.
const TickInterval = time.Second

// Scheduler runs fn once after d elapses. The returned stop function
// cancels the call and reports whether it did so before fn ran.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (stop func() bool)
}

// RealScheduler schedules callbacks on the wall clock.
type RealScheduler struct{}

// AfterFunc schedules fn with time.AfterFunc.
func (RealScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}
