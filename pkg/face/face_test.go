package face_test

import (
	"testing"

	"github.com/wearkit/wearface/pkg/clock"
	"github.com/wearkit/wearface/pkg/face"
	"github.com/wearkit/wearface/pkg/facetest"
	"github.com/wearkit/wearface/pkg/rendering"
	"github.com/wearkit/wearface/pkg/style"
)

type harness struct {
	surface *facetest.RecordingSurface
	clock   *facetest.FakeClock
	timers  *facetest.FakeTimers
	face    *face.Face
}

func newHarness(opts face.Options) *harness {
	h := &harness{
		surface: &facetest.RecordingSurface{TextWidth: 20},
		clock:   &facetest.FakeClock{Snapshot: clock.Snapshot{Hour: 10, Minute: 30, Second: 45}},
		timers:  &facetest.FakeTimers{},
	}
	if opts.Palette == (style.Palette{}) {
		opts.Palette = style.DefaultPalette()
	}
	h.face = face.New(h.surface, h.clock, h.timers, opts)
	h.face.OnSurfaceSizeChanged(200, 200)
	return h
}

func TestInitialStateIsHidden(t *testing.T) {
	h := newHarness(face.Options{})
	if got := h.face.State(); got != face.StateHidden {
		t.Errorf("initial state = %v, want %v", got, face.StateHidden)
	}
}

func TestVisibilityTrueStartsInteractive(t *testing.T) {
	h := newHarness(face.Options{})
	h.face.OnVisibilityChanged(true)

	if got := h.face.State(); got != face.StateVisibleInteractive {
		t.Errorf("state = %v, want %v", got, face.StateVisibleInteractive)
	}
	if got := h.clock.Resyncs(); got != 1 {
		t.Errorf("clock resyncs = %d, want 1", got)
	}
	if got := len(h.timers.Pending()); got != 1 {
		t.Errorf("pending timers = %d, want 1", got)
	}
	if got := h.surface.Frames(); got != 1 {
		t.Errorf("frames drawn = %d, want 1", got)
	}
}

func TestVisibilityNotificationIsIdempotent(t *testing.T) {
	h := newHarness(face.Options{})
	h.face.OnVisibilityChanged(true)
	h.face.OnVisibilityChanged(true)

	if got := h.face.State(); got != face.StateVisibleInteractive {
		t.Errorf("state = %v, want %v", got, face.StateVisibleInteractive)
	}
	if got := h.clock.Resyncs(); got != 1 {
		t.Errorf("clock resyncs = %d, want 1", got)
	}
	if got := len(h.timers.Pending()); got != 1 {
		t.Errorf("pending timers = %d, want at most 1", got)
	}
}

func TestAmbientNotificationIsIdempotent(t *testing.T) {
	h := newHarness(face.Options{})
	h.face.OnVisibilityChanged(true)
	h.face.OnAmbientModeChanged(true)
	frames := h.surface.Frames()

	h.face.OnAmbientModeChanged(true)
	if got := h.surface.Frames(); got != frames {
		t.Errorf("redundant ambient notification drew %d extra frames", got-frames)
	}
}

func TestAmbientCancelsTimerExactlyOnce(t *testing.T) {
	h := newHarness(face.Options{})
	h.face.OnVisibilityChanged(true)
	h.face.OnAmbientModeChanged(true)

	if got := h.face.State(); got != face.StateVisibleAmbient {
		t.Errorf("state = %v, want %v", got, face.StateVisibleAmbient)
	}
	if got := h.timers.Cancels(); got != 1 {
		t.Errorf("cancels = %d, want 1", got)
	}
	if got := len(h.timers.Pending()); got != 0 {
		t.Errorf("pending timers = %d, want 0", got)
	}

	// No scheduled redraws may arrive until interactive resumes.
	if h.timers.FireNext() {
		t.Error("a timer fired while ambient")
	}

	h.face.OnAmbientModeChanged(false)
	if got := h.face.State(); got != face.StateVisibleInteractive {
		t.Errorf("state = %v, want %v", got, face.StateVisibleInteractive)
	}
	if got := len(h.timers.Pending()); got != 1 {
		t.Errorf("pending timers after resume = %d, want 1", got)
	}
}

func TestAmbientWhileHiddenOnlyRecordsMode(t *testing.T) {
	h := newHarness(face.Options{})
	h.face.OnAmbientModeChanged(true)

	if got := h.face.State(); got != face.StateHidden {
		t.Errorf("state = %v, want %v", got, face.StateHidden)
	}
	if got := h.surface.Frames(); got != 0 {
		t.Errorf("frames drawn while hidden = %d, want 0", got)
	}

	h.face.OnVisibilityChanged(true)
	if got := h.face.State(); got != face.StateVisibleAmbient {
		t.Errorf("state after visibility = %v, want %v", got, face.StateVisibleAmbient)
	}
	if got := len(h.timers.Pending()); got != 0 {
		t.Errorf("pending timers in ambient = %d, want 0", got)
	}
}

func TestHiddenStopsAllTimers(t *testing.T) {
	h := newHarness(face.Options{})
	h.face.OnVisibilityChanged(true)
	h.face.OnVisibilityChanged(false)

	if got := h.face.State(); got != face.StateHidden {
		t.Errorf("state = %v, want %v", got, face.StateHidden)
	}
	if got := len(h.timers.Pending()); got != 0 {
		t.Errorf("pending timers = %d, want 0", got)
	}
}

func TestSecondsDrawnOnlyWhenInteractiveAndConfigured(t *testing.T) {
	h := newHarness(face.Options{ShowSeconds: true})
	h.face.OnVisibilityChanged(true)

	if got := len(h.surface.LastFrame()); got != 3 {
		t.Fatalf("interactive frame glyphs = %d, want 3", got)
	}

	h.face.OnAmbientModeChanged(true)
	if got := len(h.surface.LastFrame()); got != 2 {
		t.Errorf("ambient frame glyphs = %d, want 2", got)
	}
}

func TestSecondsOmittedWithoutConfigFlag(t *testing.T) {
	h := newHarness(face.Options{ShowSeconds: false})
	h.face.OnVisibilityChanged(true)
	if got := len(h.surface.LastFrame()); got != 2 {
		t.Errorf("frame glyphs = %d, want 2", got)
	}
}

func TestAmbientFrameUsesBlackBackground(t *testing.T) {
	h := newHarness(face.Options{})
	h.face.OnVisibilityChanged(true)
	h.face.OnAmbientModeChanged(true)

	bgs := h.surface.Backgrounds()
	if len(bgs) == 0 {
		t.Fatal("no background fills recorded")
	}
	if got := bgs[len(bgs)-1]; got != rendering.ColorBlack {
		t.Errorf("ambient background = %#08x, want black", uint32(got))
	}
}

func TestDrawOrderIsBackgroundHourMinuteSecond(t *testing.T) {
	h := newHarness(face.Options{ShowSeconds: true})
	h.face.OnVisibilityChanged(true)

	ops := h.surface.Ops()
	want := []string{"background", "text", "text", "text"}
	if len(ops) != len(want) {
		t.Fatalf("ops = %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("ops = %v, want %v", ops, want)
		}
	}

	texts := h.surface.Texts()
	if texts[0].Text != "10" {
		t.Errorf("first glyph = %q, want hour %q", texts[0].Text, "10")
	}
	if texts[1].Text != "30" {
		t.Errorf("second glyph = %q, want minute %q", texts[1].Text, "30")
	}
	if texts[2].Text != "45" {
		t.Errorf("third glyph = %q, want second %q", texts[2].Text, "45")
	}
}

func TestTimeZoneChangeResyncsAndRedraws(t *testing.T) {
	h := newHarness(face.Options{})
	h.face.OnVisibilityChanged(true)
	frames := h.surface.Frames()
	resyncs := h.clock.Resyncs()

	h.face.OnTimeZoneChanged()
	if got := h.clock.Resyncs(); got != resyncs+1 {
		t.Errorf("resyncs = %d, want %d", got, resyncs+1)
	}
	if got := h.surface.Frames(); got != frames+1 {
		t.Errorf("frames = %d, want %d", got, frames+1)
	}
}

func TestTimeZoneChangeIgnoredWhileHidden(t *testing.T) {
	h := newHarness(face.Options{})
	h.face.OnTimeZoneChanged()
	if got := h.clock.Resyncs(); got != 0 {
		t.Errorf("resyncs while hidden = %d, want 0", got)
	}
}

func TestTimeTickRedrawsOnlyWhileVisible(t *testing.T) {
	h := newHarness(face.Options{})
	h.face.OnTimeTick()
	if got := h.surface.Frames(); got != 0 {
		t.Errorf("frames after hidden tick = %d, want 0", got)
	}

	h.face.OnVisibilityChanged(true)
	h.face.OnAmbientModeChanged(true)
	frames := h.surface.Frames()
	h.face.OnTimeTick()
	if got := h.surface.Frames(); got != frames+1 {
		t.Errorf("frames after visible tick = %d, want %d", got, frames+1)
	}
}

func TestRedrawSkippedBeforeFirstSurfaceSize(t *testing.T) {
	surface := &facetest.RecordingSurface{TextWidth: 20}
	clk := &facetest.FakeClock{}
	f := face.New(surface, clk, &facetest.FakeTimers{}, face.Options{Palette: style.DefaultPalette()})

	f.OnVisibilityChanged(true)
	if got := surface.Frames(); got != 0 {
		t.Errorf("frames before geometry = %d, want 0", got)
	}

	f.OnSurfaceSizeChanged(200, 200)
	if got := surface.Frames(); got != 1 {
		t.Errorf("frames after geometry = %d, want 1", got)
	}
}

func TestLowBitAmbientDisablesAntiAliasing(t *testing.T) {
	h := newHarness(face.Options{})
	h.face.OnCapabilitiesChanged(true)
	h.face.OnVisibilityChanged(true)
	h.face.OnAmbientModeChanged(true)

	for _, op := range h.surface.LastFrame() {
		if op.Paint.AntiAlias {
			t.Errorf("glyph %q drawn anti-aliased in low-bit ambient", op.Text)
		}
	}

	h.face.OnAmbientModeChanged(false)
	for _, op := range h.surface.LastFrame() {
		if !op.Paint.AntiAlias {
			t.Errorf("glyph %q drawn aliased in interactive mode", op.Text)
		}
	}
}

// Full session walk: hidden, shown interactive, dimmed to ambient,
// hidden again.
func TestEndToEndScenario(t *testing.T) {
	h := newHarness(face.Options{ShowSeconds: true})

	h.face.OnVisibilityChanged(true)
	if got := h.face.State(); got != face.StateVisibleInteractive {
		t.Fatalf("state = %v, want %v", got, face.StateVisibleInteractive)
	}
	if got := h.clock.Resyncs(); got != 1 {
		t.Errorf("resyncs = %d, want 1", got)
	}
	if got := len(h.timers.Pending()); got != 1 {
		t.Errorf("pending timers = %d, want 1", got)
	}

	h.face.OnAmbientModeChanged(true)
	if got := h.face.State(); got != face.StateVisibleAmbient {
		t.Fatalf("state = %v, want %v", got, face.StateVisibleAmbient)
	}
	if got := h.timers.Cancels(); got != 1 {
		t.Errorf("cancels = %d, want 1", got)
	}
	bgs := h.surface.Backgrounds()
	if got := bgs[len(bgs)-1]; got != rendering.ColorBlack {
		t.Errorf("ambient background = %#08x, want black", uint32(got))
	}
	if got := len(h.surface.LastFrame()); got != 2 {
		t.Errorf("ambient glyphs = %d, want 2", got)
	}

	h.face.OnVisibilityChanged(false)
	if got := h.face.State(); got != face.StateHidden {
		t.Fatalf("state = %v, want %v", got, face.StateHidden)
	}
	if got := len(h.timers.Pending()); got != 0 {
		t.Errorf("pending timers = %d, want 0", got)
	}
}
