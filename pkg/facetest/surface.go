package facetest

import (
	"github.com/wearkit/wearface/pkg/rendering"
)

// TextOp is one recorded DrawText command.
type TextOp struct {
	Text  string
	At    rendering.Offset
	Paint rendering.TextPaint
}

// RecordingSurface implements rendering.Surface by recording every
// draw command for later assertions. Text measurement is fixed so
// layout results are fully deterministic.
type RecordingSurface struct {
	// TextWidth is the width returned for every MeasureText call.
	// Zero falls back to 8 units per rune.
	TextWidth float64

	ops         []string
	backgrounds []rendering.Color
	texts       []TextOp
}

// DrawBackground records a background fill.
func (s *RecordingSurface) DrawBackground(color rendering.Color) {
	s.ops = append(s.ops, "background")
	s.backgrounds = append(s.backgrounds, color)
}

// DrawText records a text draw.
func (s *RecordingSurface) DrawText(text string, at rendering.Offset, paint rendering.TextPaint) {
	s.ops = append(s.ops, "text")
	s.texts = append(s.texts, TextOp{Text: text, At: at, Paint: paint})
}

// MeasureText returns the fixed configured width.
func (s *RecordingSurface) MeasureText(text string, paint rendering.TextPaint) float64 {
	if s.TextWidth != 0 {
		return s.TextWidth
	}
	return 8 * float64(len(text))
}

// Ops returns the command names in draw order.
func (s *RecordingSurface) Ops() []string {
	return s.ops
}

// Backgrounds returns all recorded background fills in order.
func (s *RecordingSurface) Backgrounds() []rendering.Color {
	return s.backgrounds
}

// Texts returns all recorded text draws in order.
func (s *RecordingSurface) Texts() []TextOp {
	return s.texts
}

// LastFrame returns the text ops drawn since the most recent
// background fill, which is the glyph set of the latest frame.
func (s *RecordingSurface) LastFrame() []TextOp {
	count := 0
	for i := len(s.ops) - 1; i >= 0; i-- {
		if s.ops[i] == "background" {
			break
		}
		count++
	}
	if count == 0 {
		return nil
	}
	return s.texts[len(s.texts)-count:]
}

// Frames returns how many background fills were recorded, one per
// rendered frame.
func (s *RecordingSurface) Frames() int {
	return len(s.backgrounds)
}

// Reset clears all recorded commands.
func (s *RecordingSurface) Reset() {
	s.ops = nil
	s.backgrounds = nil
	s.texts = nil
}
