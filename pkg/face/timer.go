package face

import (
	"sync/atomic"
	"time"

	"github.com/wearkit/wearface/pkg/errors"
)

// TimerHandle identifies a pending one-shot timer. Handles are opaque
// to the core; only the facility that issued one can interpret it.
type TimerHandle any

// Timers is the one-shot timer facility the scheduler arms its ticks
// with. Cancel must be safe to call with a handle whose timer has
// already fired or been canceled.
type Timers interface {
	// ScheduleOnce arms a one-shot timer that runs fn after delay.
	ScheduleOnce(delay time.Duration, fn func()) TimerHandle

	// Cancel stops the pending timer for handle, if any.
	Cancel(handle TimerHandle)
}

// SystemTimers implements Timers on top of the runtime timer.
//
// By default callbacks run on the timer's own goroutine. Hosts that
// serialize all face work onto one event thread set Post to enqueue
// callbacks there instead, which is how the single-threaded model of
// the face is preserved under a real event loop.
type SystemTimers struct {
	// Post, when non-nil, receives each fired callback for execution
	// on the owner's event thread.
	Post func(fn func())
}

// systemTimer is one armed timer. The canceled flag outlives the
// runtime timer: with Post set, a callback can already sit in the
// owner's queue when Cancel arrives, so the wrapper re-checks the flag
// at execution time instead of trusting Timer.Stop alone.
type systemTimer struct {
	timer    *time.Timer
	canceled atomic.Bool
}

// ScheduleOnce arms a one-shot timer. Panics escaping the callback are
// recovered and reported rather than taking down the host.
func (t *SystemTimers) ScheduleOnce(delay time.Duration, fn func()) TimerHandle {
	st := &systemTimer{}
	run := func() {
		if st.canceled.Load() {
			return
		}
		defer errors.Recover("face.timerFired")
		fn()
	}
	post := t.Post
	st.timer = time.AfterFunc(delay, func() {
		if post == nil {
			run()
			return
		}
		post(run)
	})
	return st
}

// Cancel stops a pending timer. A callback that already fired and was
// posted is suppressed when it later runs. Unknown handles are ignored.
func (t *SystemTimers) Cancel(handle TimerHandle) {
	st, ok := handle.(*systemTimer)
	if !ok {
		return
	}
	st.canceled.Store(true)
	st.timer.Stop()
}
