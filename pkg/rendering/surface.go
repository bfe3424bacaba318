// Package rendering defines the drawing surface consumed by the watch
// face core, along with the color and geometry value types shared by
// every surface backend.
//
// The core never rasterizes anything itself; it emits draw commands
// through the narrow [Surface] interface and leaves pixels to whichever
// backend the host wires in (image, terminal, or a recording double in
// tests).
package rendering

// Typeface selects one of the bundled font variants.
type Typeface int

const (
	// TypefaceRegular is the default text face, used for minute and
	// second glyphs.
	TypefaceRegular Typeface = iota

	// TypefaceBold is the heavier face used for the hour glyph.
	TypefaceBold
)

// TextPaint describes how a single run of text is drawn.
type TextPaint struct {
	Color     Color
	Size      float64
	Typeface  Typeface
	AntiAlias bool
}

// Surface receives the draw commands produced by one frame.
//
// A Surface is externally owned and accessed synchronously from the
// face's event thread. Failures are backend-level concerns; none of
// these methods report errors to the core.
type Surface interface {
	// DrawBackground fills the entire surface with the given color.
	DrawBackground(color Color)

	// DrawText draws text with its baseline origin at the given position.
	DrawText(text string, at Offset, paint TextPaint)

	// MeasureText returns the advance width of text under the given paint.
	MeasureText(text string, paint TextPaint) float64
}
