package face_test

import (
	"testing"
	"time"

	"github.com/wearkit/wearface/pkg/clock"
	"github.com/wearkit/wearface/pkg/face"
	"github.com/wearkit/wearface/pkg/facetest"
)

func TestSystemTimersPostedCallbackRuns(t *testing.T) {
	jobs := make(chan func(), 1)
	timers := &face.SystemTimers{Post: func(fn func()) { jobs <- fn }}

	ran := false
	timers.ScheduleOnce(time.Millisecond, func() { ran = true })

	job := <-jobs
	if ran {
		t.Fatal("callback ran before the posted job was executed")
	}
	job()
	if !ran {
		t.Error("posted callback did not run")
	}
}

func TestSystemTimersCancelSuppressesPostedCallback(t *testing.T) {
	jobs := make(chan func(), 1)
	timers := &face.SystemTimers{Post: func(fn func()) { jobs <- fn }}

	ran := false
	h := timers.ScheduleOnce(time.Millisecond, func() { ran = true })

	// The timer fires and posts its callback before the owner gets a
	// chance to cancel; the queued job must still honor the cancel.
	job := <-jobs
	timers.Cancel(h)
	job()
	if ran {
		t.Error("canceled callback ran from the queue")
	}
}

func TestSystemTimersCancelUnknownHandle(t *testing.T) {
	timers := &face.SystemTimers{}
	timers.Cancel(nil)
	timers.Cancel("bogus")
}

// A stop/start cycle while a fired callback is still queued on the
// event thread must not leave two tick chains running.
func TestSchedulerRestartWithQueuedStaleFire(t *testing.T) {
	fake := facetest.NewFakeTime()
	fake.Advance(999 * time.Millisecond) // every rearm delay is 1ms
	defer clock.SetSource(clock.SetSource(fake))

	jobs := make(chan func(), 16)
	timers := &face.SystemTimers{Post: func(fn func()) { jobs <- fn }}
	redraws := 0
	s := face.NewScheduler(timers, func() { redraws++ })

	s.Start()
	stale := <-jobs // first rearm fired and queued before the stop
	s.Stop()
	s.Start()
	fresh := <-jobs

	stale()
	if redraws != 2 {
		t.Fatalf("redraws after stale fire = %d, want 2 (stale fire must be suppressed)", redraws)
	}

	fresh()
	if redraws != 3 {
		t.Fatalf("redraws after live fire = %d, want 3", redraws)
	}

	// Exactly one chain may remain: one rearmed timer, one queued job.
	select {
	case <-jobs:
	case <-time.After(time.Second):
		t.Fatal("live chain did not rearm")
	}
	select {
	case <-jobs:
		t.Error("second tick chain detected after restart")
	case <-time.After(50 * time.Millisecond):
	}

	s.Stop()
}
