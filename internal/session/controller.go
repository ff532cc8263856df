package session

import (
	"sync"

	"quizgen/internal/logging"
)

// ChangeFunc observes a transition. It runs while the controller is locked
// and must not call back into the controller.
type ChangeFunc func(prev, next Session)

// Controller owns the current session and drives its countdown. At most
// one tick is pending at a time, and it is stopped before any transition
// out of the active state returns.
type Controller struct {
	mu        sync.Mutex
	reducer   Reducer
	scheduler Scheduler
	logger    *logging.Logger
	onChange  ChangeFunc

	state   Session
	pending func() bool
	seq     uint64
}

// ControllerOptions configures a Controller.
type ControllerOptions struct {
	Scheduler Scheduler
	Logger    *logging.Logger
	OnChange  ChangeFunc
}

// NewController builds an idle Controller.
func NewController(reducer Reducer, opts ControllerOptions) *Controller {
	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = RealScheduler{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	return &Controller{
		reducer:   reducer,
		scheduler: scheduler,
		logger:    logger,
		onChange:  opts.OnChange,
	}
}

// State returns the current session.
func (c *Controller) State() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Pending reports whether a tick is scheduled.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

// Dispatch applies event and returns the resulting session.
func (c *Controller) Dispatch(event Event) Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dispatchLocked(event)
}

// Close stops any pending tick.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
}

func (c *Controller) dispatchLocked(event Event) Session {
	prev := c.state
	next := c.reducer.Reduce(prev, event)
	c.state = next

	if next.ID != prev.ID || !next.Ticking() {
		c.cancelLocked()
	}
	if next.Ticking() && c.pending == nil {
		c.armLocked(next.ID)
	}
	if prev.Status != next.Status || prev.ID != next.ID {
		c.logger.Info("session transition",
			"event", EventName(event),
			"session_id", next.ID,
			"from", prev.Status.String(),
			"to", next.Status.String(),
			"questions", next.Total(),
			"remaining", next.Remaining,
		)
	}
	if c.onChange != nil {
		c.onChange(prev, next)
	}
	return next
}

// armLocked schedules the next tick for the session with id.
func (c *Controller) armLocked(id string) {
	c.seq++
	seq := c.seq
	c.pending = c.scheduler.AfterFunc(TickInterval, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		// A stale callback may already be running when Stop is called.
		if seq != c.seq || c.pending == nil {
			return
		}
		c.pending = nil
		c.dispatchLocked(Tick{SessionID: id})
	})
}

func (c *Controller) cancelLocked() {
	if c.pending == nil {
		return
	}
	c.pending()
	c.pending = nil
	c.seq++
}
