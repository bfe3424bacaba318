// Package style resolves the per-frame drawing style from the render
// mode, display capabilities and color palette.
package style

import (
	"fmt"

	"github.com/wearkit/wearface/pkg/rendering"
)

// RenderMode distinguishes the full-detail interactive appearance from
// the power-conserving ambient one.
type RenderMode int

const (
	// ModeInteractive is the full-detail, actively refreshed state.
	ModeInteractive RenderMode = iota

	// ModeAmbient is the low-power state with reduced color and no
	// per-second refresh.
	ModeAmbient
)

// String returns a human-readable representation of the render mode.
func (m RenderMode) String() string {
	switch m {
	case ModeInteractive:
		return "interactive"
	case ModeAmbient:
		return "ambient"
	default:
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
}

// Capabilities holds display properties reported once at startup.
type Capabilities struct {
	// LowBitAmbient is set on displays with reduced color depth in
	// ambient mode; text must be drawn without anti-aliasing there to
	// avoid artifacts.
	LowBitAmbient bool
}

// Text size ratios relative to the hour glyph.
const (
	minuteSizeRatio = 0.5
	secondSizeRatio = 0.3
)

// DefaultTextSize is the hour glyph font size used when the
// configuration does not override it.
const DefaultTextSize = 25.0

// Palette holds the themed colors of a face.
type Palette struct {
	Background    rendering.Color
	Hour          rendering.Color
	Minute        rendering.Color
	Second        rendering.Color
	AmbientHour   rendering.Color
	AmbientMinute rendering.Color
}

// DefaultPalette returns the built-in theme: an orange hour over a dark
// background, with grays for the reduced-contrast ambient variant.
func DefaultPalette() Palette {
	return Palette{
		Background:    rendering.RGB(0x26, 0x1D, 0x3E),
		Hour:          rendering.RGB(0xF5, 0x66, 0x00),
		Minute:        rendering.RGB(0xE0, 0xE0, 0xE0),
		Second:        rendering.ColorWhite,
		AmbientHour:   rendering.RGB(0x98, 0x98, 0x98),
		AmbientMinute: rendering.RGB(0x6E, 0x6E, 0x6E),
	}
}

// StyleSet is the immutable per-frame style: background fill, one text
// paint per glyph ring, and whether seconds are drawn at all.
type StyleSet struct {
	Background  rendering.Color
	Hour        rendering.TextPaint
	Minute      rendering.TextPaint
	Second      rendering.TextPaint
	ShowSeconds bool
}

// Select resolves the style for one frame.
//
// Ambient frames use a black background and the reduced-contrast
// palette, disable anti-aliasing only on low-bit displays, and never
// show seconds. Interactive frames use the themed colors with
// anti-aliasing always on, showing seconds only when showSeconds is
// configured.
func Select(mode RenderMode, caps Capabilities, pal Palette, textSize float64, showSeconds bool) StyleSet {
	if textSize <= 0 {
		textSize = DefaultTextSize
	}
	if mode == ModeAmbient {
		aa := !caps.LowBitAmbient
		return StyleSet{
			Background:  rendering.ColorBlack,
			Hour:        rendering.TextPaint{Color: pal.AmbientHour, Size: textSize, Typeface: rendering.TypefaceBold, AntiAlias: aa},
			Minute:      rendering.TextPaint{Color: pal.AmbientMinute, Size: textSize * minuteSizeRatio, Typeface: rendering.TypefaceRegular, AntiAlias: aa},
			Second:      rendering.TextPaint{Color: pal.Second, Size: textSize * secondSizeRatio, Typeface: rendering.TypefaceRegular, AntiAlias: aa},
			ShowSeconds: false,
		}
	}
	return StyleSet{
		Background:  pal.Background,
		Hour:        rendering.TextPaint{Color: pal.Hour, Size: textSize, Typeface: rendering.TypefaceBold, AntiAlias: true},
		Minute:      rendering.TextPaint{Color: pal.Minute, Size: textSize * minuteSizeRatio, Typeface: rendering.TypefaceRegular, AntiAlias: true},
		Second:      rendering.TextPaint{Color: pal.Second, Size: textSize * secondSizeRatio, Typeface: rendering.TypefaceRegular, AntiAlias: true},
		ShowSeconds: showSeconds,
	}
}
