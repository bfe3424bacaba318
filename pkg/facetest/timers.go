package facetest

import (
	"time"

	"github.com/wearkit/wearface/pkg/face"
)

// ScheduledTimer is one timer armed through a FakeTimers.
type ScheduledTimer struct {
	Delay    time.Duration
	fn       func()
	fired    bool
	canceled bool
}

// FakeTimers is a manual face.Timers: timers fire only when the test
// says so, and every arm and cancel is recorded.
type FakeTimers struct {
	scheduled []*ScheduledTimer
	cancels   int
}

// ScheduleOnce records a timer without starting anything.
func (t *FakeTimers) ScheduleOnce(delay time.Duration, fn func()) face.TimerHandle {
	st := &ScheduledTimer{Delay: delay, fn: fn}
	t.scheduled = append(t.scheduled, st)
	return st
}

// Cancel marks the timer canceled. Unknown handles are ignored, and
// canceling twice counts twice.
func (t *FakeTimers) Cancel(handle face.TimerHandle) {
	st, ok := handle.(*ScheduledTimer)
	if !ok {
		return
	}
	t.cancels++
	st.canceled = true
}

// Pending returns the timers that are armed and not yet fired.
func (t *FakeTimers) Pending() []*ScheduledTimer {
	var out []*ScheduledTimer
	for _, st := range t.scheduled {
		if !st.fired && !st.canceled {
			out = append(out, st)
		}
	}
	return out
}

// FireNext runs the oldest pending timer's callback. It reports false
// when nothing is pending.
func (t *FakeTimers) FireNext() bool {
	for _, st := range t.scheduled {
		if st.fired || st.canceled {
			continue
		}
		st.fired = true
		st.fn()
		return true
	}
	return false
}

// LastDelay returns the delay of the most recently armed timer,
// canceled or not. Zero when nothing was ever armed.
func (t *FakeTimers) LastDelay() time.Duration {
	if len(t.scheduled) == 0 {
		return 0
	}
	return t.scheduled[len(t.scheduled)-1].Delay
}

// Armed returns the total number of timers ever scheduled.
func (t *FakeTimers) Armed() int {
	return len(t.scheduled)
}

// Cancels returns how many times Cancel hit a known handle.
func (t *FakeTimers) Cancels() int {
	return t.cancels
}
