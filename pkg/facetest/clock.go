// Package facetest provides deterministic collaborator doubles for
// testing the watch face core: a controllable time source, a manual
// timer facility, and a surface that records draw commands.
package facetest

import (
	"sync"
	"time"

	"github.com/wearkit/wearface/pkg/clock"
)

// FakeTime is a controllable clock.Source for deterministic scheduler
// tests. All methods are safe for concurrent use.
type FakeTime struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeTime returns a FakeTime starting at a fixed epoch.
func NewFakeTime() *FakeTime {
	return &FakeTime{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeTime) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeTime) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeTime) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// FakeClock is a clock.Clock double with a settable snapshot. It
// records SetTimeZone calls so tests can assert resynchronization.
type FakeClock struct {
	// Snapshot is returned from Now.
	Snapshot clock.Snapshot

	// Zones holds every id passed to SetTimeZone, in order.
	Zones []string

	// Err, when set, is returned from SetTimeZone.
	Err error
}

// Now returns the configured snapshot.
func (c *FakeClock) Now() clock.Snapshot {
	return c.Snapshot
}

// SetTimeZone records the requested zone.
func (c *FakeClock) SetTimeZone(id string) error {
	c.Zones = append(c.Zones, id)
	return c.Err
}

// Resyncs returns how many times the clock was resynchronized.
func (c *FakeClock) Resyncs() int {
	return len(c.Zones)
}
