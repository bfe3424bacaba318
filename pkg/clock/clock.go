// Package clock supplies wall-clock time to the watch face.
//
// Two seams live here. [Source] is the raw time source backing both the
// scheduler's phase math and the display snapshot; tests swap it via
// [SetSource] to control timing deterministically. [Clock] is the
// collaborator interface the face consults once per frame for the
// values it actually draws.
package clock

import "time"

// Source supplies raw wall-clock time. The default implementation uses
// system time. Tests can inject a fake source via SetSource to control
// timing deterministically.
type Source interface {
	Now() time.Time
}

// systemSource uses system time.
type systemSource struct{}

func (systemSource) Now() time.Time { return time.Now() }

// source is the package-level time source, replaceable for testing.
var source Source = systemSource{}

// SetSource replaces the time source. Returns the previous source so
// callers can restore it during cleanup.
func SetSource(s Source) Source {
	prev := source
	source = s
	return prev
}

// Now returns the current time from the active source.
func Now() time.Time { return source.Now() }

// Snapshot is an immutable capture of the displayed time. All glyph
// computations for one frame use a single Snapshot so the hour, minute
// and second positions never tear against each other.
type Snapshot struct {
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-59
}

// SnapshotAt extracts a Snapshot from a time value.
func SnapshotAt(t time.Time) Snapshot {
	h, m, s := t.Clock()
	return Snapshot{Hour: h, Minute: m, Second: s}
}

// DisplayHour returns the 12-hour display value for the snapshot's
// hour: 0 maps to 12, 13-23 map to 1-11.
func (s Snapshot) DisplayHour() int {
	h := s.Hour
	if h > 12 {
		h -= 12
	}
	if h == 0 {
		h = 12
	}
	return h
}

// Clock is the externally owned time collaborator. It is consulted once
// per frame and must be resynchronized whenever the face becomes
// visible or a timezone change is reported.
type Clock interface {
	// Now returns the current time in the clock's timezone.
	Now() Snapshot

	// SetTimeZone switches the clock to the named IANA zone. An empty
	// id selects the system default zone.
	SetTimeZone(id string) error
}

// SystemClock reads the active [Source] and localizes it to a zone.
type SystemClock struct {
	loc *time.Location
}

// NewSystemClock creates a clock in the system default timezone.
func NewSystemClock() *SystemClock {
	return &SystemClock{loc: time.Local}
}

// Now returns the current time localized to the clock's zone.
func (c *SystemClock) Now() Snapshot {
	return SnapshotAt(Now().In(c.loc))
}

// SetTimeZone switches the clock's zone. An empty id re-reads the
// system default, which covers zone changes that happened while the
// face was hidden.
func (c *SystemClock) SetTimeZone(id string) error {
	if id == "" {
		c.loc = time.Local
		return nil
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return err
	}
	c.loc = loc
	return nil
}
