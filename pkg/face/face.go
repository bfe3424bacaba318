// Package face implements the watch face core: the mode/visibility
// state machine, the phase-locked redraw scheduler, and the render
// pipeline that turns a time snapshot into draw commands.
//
// A Face is single-threaded and event-driven. All notifications, timer
// callbacks and redraws must execute on one logical thread; hosts with
// a real event loop route timer callbacks through [SystemTimers.Post].
package face

import (
	"fmt"

	"github.com/wearkit/wearface/pkg/clock"
	"github.com/wearkit/wearface/pkg/errors"
	"github.com/wearkit/wearface/pkg/layout"
	"github.com/wearkit/wearface/pkg/rendering"
	"github.com/wearkit/wearface/pkg/style"
)

// State is the combined mode/visibility state of the face.
type State int

const (
	// StateHidden is the initial state; nothing runs.
	StateHidden State = iota

	// StateVisibleInteractive is visible with the per-second scheduler
	// running.
	StateVisibleInteractive

	// StateVisibleAmbient is visible in the low-power appearance; the
	// per-second scheduler never runs here.
	StateVisibleAmbient
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateVisibleInteractive:
		return "visible_interactive"
	case StateVisibleAmbient:
		return "visible_ambient"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Options configure a Face at creation.
type Options struct {
	// ShowSeconds draws the second glyph in interactive mode.
	ShowSeconds bool

	// TextSize is the hour glyph font size; zero selects the default.
	TextSize float64

	// Palette holds the themed colors. A zero Palette draws invisible
	// text; use style.DefaultPalette unless a theme pack is loaded.
	Palette style.Palette
}

// Face owns the state machine and render pipeline for one watch face
// session. It runs until its host stops delivering notifications; there
// is no terminal state.
type Face struct {
	surface rendering.Surface
	clock   clock.Clock
	sched   *Scheduler

	visible bool
	ambient bool
	caps    style.Capabilities

	geom    layout.DialGeometry
	hasGeom bool

	// tzListening mirrors the host's timezone-change registration: the
	// face only reacts to zone changes while visible.
	tzListening bool

	showSeconds bool
	textSize    float64
	palette     style.Palette
}

// New creates a hidden face drawing to surface. The clock and timer
// facility are externally owned collaborators.
func New(surface rendering.Surface, clk clock.Clock, timers Timers, opts Options) *Face {
	f := &Face{
		surface:     surface,
		clock:       clk,
		showSeconds: opts.ShowSeconds,
		textSize:    opts.TextSize,
		palette:     opts.Palette,
	}
	f.sched = NewScheduler(timers, f.redraw)
	return f
}

// State returns the current combined state.
func (f *Face) State() State {
	switch {
	case !f.visible:
		return StateHidden
	case f.ambient:
		return StateVisibleAmbient
	default:
		return StateVisibleInteractive
	}
}

// OnVisibilityChanged reports that the face became visible or hidden.
// Redundant deliveries are no-ops.
//
// Becoming visible resynchronizes the clock, covering timezone and time
// drift accumulated while hidden, and starts timezone-change listening.
// Becoming hidden stops the scheduler and the timezone listening.
func (f *Face) OnVisibilityChanged(visible bool) {
	if visible == f.visible {
		return
	}
	f.visible = visible
	f.tzListening = visible
	if visible {
		f.resyncClock("face.OnVisibilityChanged")
	}
	f.updateScheduler()
	if f.State() == StateVisibleAmbient {
		f.redraw()
	}
}

// OnAmbientModeChanged reports entry to or exit from ambient mode.
// Redundant deliveries are no-ops. While hidden only the mode flag is
// recorded; the next visibility change picks it up.
func (f *Face) OnAmbientModeChanged(ambient bool) {
	if ambient == f.ambient {
		return
	}
	f.ambient = ambient
	if !f.visible {
		return
	}
	f.updateScheduler()
	if f.State() == StateVisibleAmbient {
		// Entering interactive already redrew via the scheduler's
		// immediate first tick.
		f.redraw()
	}
}

// OnSurfaceSizeChanged rederives the dial geometry. Radii scale with
// the half-width of the surface.
func (f *Face) OnSurfaceSizeChanged(width, height float64) {
	f.geom = layout.GeometryFor(width, height)
	f.hasGeom = true
	if f.visible {
		f.redraw()
	}
}

// OnCapabilitiesChanged records the display capabilities reported by
// the host at initialization.
func (f *Face) OnCapabilitiesChanged(lowBitAmbient bool) {
	f.caps.LowBitAmbient = lowBitAmbient
}

// OnTimeZoneChanged resynchronizes the clock to the new default zone
// and redraws. Ignored while hidden, matching the host-side receiver
// that is only registered while visible.
func (f *Face) OnTimeZoneChanged() {
	if !f.tzListening {
		return
	}
	f.resyncClock("face.OnTimeZoneChanged")
	f.redraw()
}

// OnTimeTick requests a redraw on a host-driven time boundary. In
// ambient mode this is the only periodic refresh.
func (f *Face) OnTimeTick() {
	if f.visible {
		f.redraw()
	}
}

// RequestRedraw renders one frame immediately, regardless of state.
func (f *Face) RequestRedraw() {
	f.redraw()
}

// updateScheduler starts or stops the per-second scheduler so that it
// runs exactly while the face is visible and interactive.
func (f *Face) updateScheduler() {
	if f.State() == StateVisibleInteractive {
		f.sched.Start()
	} else {
		f.sched.Stop()
	}
}

func (f *Face) resyncClock(op string) {
	if err := f.clock.SetTimeZone(""); err != nil {
		errors.Report(&errors.FaceError{Op: op, Kind: errors.KindRender, Err: err})
	}
}

// redraw runs the render pipeline for one frame: capture the time
// snapshot, resolve the style, lay out the glyphs against measured text
// widths, then emit background and glyphs in order.
func (f *Face) redraw() {
	if !f.hasGeom {
		// No surface size reported yet; nothing sensible to draw.
		return
	}

	mode := style.ModeInteractive
	if f.ambient {
		mode = style.ModeAmbient
	}
	st := style.Select(mode, f.caps, f.palette, f.textSize, f.showSeconds)

	t := f.clock.Now()

	hourText := layout.HourText(t)
	minuteText := layout.MinuteText(t)
	hour := layout.TextMetrics{Width: f.surface.MeasureText(hourText, st.Hour), Size: st.Hour.Size}
	minute := layout.TextMetrics{Width: f.surface.MeasureText(minuteText, st.Minute), Size: st.Minute.Size}
	var second layout.TextMetrics
	if st.ShowSeconds {
		second = layout.TextMetrics{Width: f.surface.MeasureText(layout.SecondText(t), st.Second), Size: st.Second.Size}
	}

	glyphs := layout.Place(t, f.geom, hour, minute, second, st.ShowSeconds)

	f.surface.DrawBackground(st.Background)
	paints := [...]rendering.TextPaint{st.Hour, st.Minute, st.Second}
	for i, g := range glyphs {
		f.surface.DrawText(g.Text, g.Pos, paints[i])
	}
}
