// Package term adapts a tcell screen to the face's drawing surface.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/wearkit/wearface/pkg/rendering"
)

// Surface draws the watch face into terminal cells. The coordinate
// space is cells, so the host should configure the face with a text
// size around one cell.
type Surface struct {
	screen tcell.Screen
}

// NewSurface wraps an initialized tcell screen.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

func cellColor(c rendering.Color) tcell.Color {
	return tcell.NewRGBColor(
		int32(uint8(c>>16)),
		int32(uint8(c>>8)),
		int32(uint8(c)),
	)
}

// DrawBackground fills every cell with the given color.
func (s *Surface) DrawBackground(color rendering.Color) {
	st := tcell.StyleDefault.Background(cellColor(color))
	w, h := s.screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

// DrawText writes text starting at the rounded cell position. The bold
// typeface maps to the terminal bold attribute; size and anti-aliasing
// have no cell-grid equivalent.
func (s *Surface) DrawText(text string, at rendering.Offset, paint rendering.TextPaint) {
	st := tcell.StyleDefault.Foreground(cellColor(paint.Color))
	if paint.Typeface == rendering.TypefaceBold {
		st = st.Bold(true)
	}
	x := int(math.Round(at.X))
	y := int(math.Round(at.Y))
	for i, r := range []rune(text) {
		s.screen.SetContent(x+i, y, r, nil, st)
	}
}

// MeasureText returns the width of text in cells.
func (s *Surface) MeasureText(text string, paint rendering.TextPaint) float64 {
	return float64(len([]rune(text)))
}
