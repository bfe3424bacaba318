// Package layout converts a time snapshot into glyph positions on the
// circular dial. Everything here is pure: the same time, geometry and
// metrics always yield the same placements.
package layout

import (
	"fmt"
	"math"
	"strconv"

	"github.com/wearkit/wearface/pkg/clock"
	"github.com/wearkit/wearface/pkg/rendering"
)

// Radius fractions of the half-width, one per glyph ring.
const (
	hourRadiusFraction   = 0.65
	minuteRadiusFraction = 0.60
	secondRadiusFraction = 0.50
)

// baselineFraction vertically centers a glyph on its ring by shifting
// the baseline down by a fixed fraction of the font size.
const baselineFraction = 0.4

// DialGeometry fixes the dial center and the three glyph ring radii.
// It is derived once per surface-size change, never per frame.
type DialGeometry struct {
	CenterX      float64
	CenterY      float64
	HourRadius   float64
	MinuteRadius float64
	SecondRadius float64
}

// GeometryFor derives the dial geometry from the surface dimensions.
// Radii scale with the half-width, capped at half the smaller dimension
// so every ring stays on a non-square surface.
func GeometryFor(width, height float64) DialGeometry {
	cx := width / 2
	cy := height / 2
	limit := math.Min(cx, cy)
	return DialGeometry{
		CenterX:      cx,
		CenterY:      cy,
		HourRadius:   math.Min(cx*hourRadiusFraction, limit),
		MinuteRadius: math.Min(cx*minuteRadiusFraction, limit),
		SecondRadius: math.Min(cx*secondRadiusFraction, limit),
	}
}

// TextMetrics carries the measured width and font size of one
// formatted glyph string.
type TextMetrics struct {
	Width float64
	Size  float64
}

// Glyph is a positioned piece of text, ready to draw.
type Glyph struct {
	Text string
	Pos  rendering.Offset
}

// HourText formats the 12-hour display value with no leading zero.
func HourText(t clock.Snapshot) string {
	return strconv.Itoa(t.DisplayHour())
}

// MinuteText formats the minute as two digits.
func MinuteText(t clock.Snapshot) string {
	return fmt.Sprintf("%02d", t.Minute)
}

// SecondText formats the second as two digits.
func SecondText(t clock.Snapshot) string {
	return fmt.Sprintf("%02d", t.Second)
}

// place positions one glyph on its ring. Angle zero points to twelve
// o'clock and increases clockwise; text is centered horizontally on the
// ring point and baseline-shifted to look vertically centered.
func place(value, period int, radius float64, text string, m TextMetrics, g DialGeometry) Glyph {
	angle := float64(value) * 2 * math.Pi / float64(period)
	return Glyph{
		Text: text,
		Pos: rendering.Offset{
			X: g.CenterX + math.Sin(angle)*radius - 0.5*m.Width,
			Y: g.CenterY - math.Cos(angle)*radius + baselineFraction*m.Size,
		},
	}
}

// PlaceHour positions the hour glyph. The angle comes from the raw
// 0-23 hour over a 12-position dial, so the glyph sweeps the dial twice
// per day at the rate of an analog hour hand.
func PlaceHour(t clock.Snapshot, g DialGeometry, m TextMetrics) Glyph {
	return place(t.Hour, 12, g.HourRadius, HourText(t), m, g)
}

// PlaceMinute positions the minute glyph on its 60-position ring.
func PlaceMinute(t clock.Snapshot, g DialGeometry, m TextMetrics) Glyph {
	return place(t.Minute, 60, g.MinuteRadius, MinuteText(t), m, g)
}

// PlaceSecond positions the second glyph on its 60-position ring.
func PlaceSecond(t clock.Snapshot, g DialGeometry, m TextMetrics) Glyph {
	return place(t.Second, 60, g.SecondRadius, SecondText(t), m, g)
}

// Place lays out one frame. The returned slice holds the hour and
// minute glyphs, plus the second glyph only when includeSeconds is set;
// ambient frames never include it.
func Place(t clock.Snapshot, g DialGeometry, hour, minute, second TextMetrics, includeSeconds bool) []Glyph {
	glyphs := []Glyph{
		PlaceHour(t, g, hour),
		PlaceMinute(t, g, minute),
	}
	if includeSeconds {
		glyphs = append(glyphs, PlaceSecond(t, g, second))
	}
	return glyphs
}
