package face

import (
	"time"

	"github.com/wearkit/wearface/pkg/clock"
)

// tickPeriod is the redraw interval in interactive mode. Seconds are
// displayed, so the face updates once per second.
const tickPeriod = time.Second

// Scheduler requests one redraw per wall-clock second while running,
// phase-locked to real second boundaries.
//
// After every redraw the next delay is computed fresh from the current
// clock as the remainder to the next boundary, never as a fixed offset
// from the previous tick. A late callback therefore shortens the next
// delay instead of shifting every following tick: drift cannot
// accumulate. At most one timer is pending at any moment.
type Scheduler struct {
	timers  Timers
	redraw  func()
	running bool
	pending TimerHandle
}

// NewScheduler creates a stopped scheduler that reports ticks to redraw.
func NewScheduler(timers Timers, redraw func()) *Scheduler {
	return &Scheduler{timers: timers, redraw: redraw}
}

// Start begins per-second ticking with an immediate first redraw.
// Starting a running scheduler is a no-op.
func (s *Scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.fire()
}

// Stop cancels the pending tick, if any. Safe to call repeatedly and
// while no timer is armed.
func (s *Scheduler) Stop() {
	s.running = false
	if s.pending != nil {
		s.timers.Cancel(s.pending)
		s.pending = nil
	}
}

// Running reports whether the scheduler is ticking.
func (s *Scheduler) Running() bool {
	return s.running
}

// fire requests one redraw and rearms for the next second boundary.
func (s *Scheduler) fire() {
	s.pending = nil
	s.redraw()
	if !s.running {
		// The redraw callback stopped us; leave nothing armed.
		return
	}
	s.pending = s.timers.ScheduleOnce(boundaryDelay(clock.Now()), s.fire)
}

// boundaryDelay returns the time remaining until the next wall-clock
// second boundary. A reading exactly on a boundary yields a full period.
func boundaryDelay(now time.Time) time.Duration {
	return tickPeriod - time.Duration(now.UnixMilli()%tickPeriod.Milliseconds())*time.Millisecond
}
