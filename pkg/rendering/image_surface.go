package rendering

import (
	stderrors "errors"
	"image"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/wearkit/wearface/pkg/errors"
)

var (
	fontsOnce   sync.Once
	regularFont *opentype.Font
	boldFont    *opentype.Font
	fontsErr    error
)

// loadFonts parses the bundled Go fonts once for all surfaces.
func loadFonts() error {
	fontsOnce.Do(func() {
		regular, err := opentype.Parse(goregular.TTF)
		if err != nil {
			fontsErr = err
			return
		}
		bold, err := opentype.Parse(gobold.TTF)
		if err != nil {
			fontsErr = err
			return
		}
		regularFont = regular
		boldFont = bold
	})
	return fontsErr
}

type faceKey struct {
	typeface Typeface
	size     float64
}

// ImageSurface rasterizes frames into an in-memory RGBA image using the
// bundled Go fonts. It backs the one-shot PNG renderer and doubles as a
// reference for text metrics.
type ImageSurface struct {
	img   *image.RGBA
	faces map[faceKey]font.Face
}

// NewImageSurface creates a surface of the given pixel dimensions.
func NewImageSurface(width, height int) (*ImageSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, stderrors.New("surface dimensions must be positive")
	}
	if err := loadFonts(); err != nil {
		return nil, &errors.FaceError{Op: "rendering.NewImageSurface", Kind: errors.KindInit, Err: err}
	}
	return &ImageSurface{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		faces: make(map[faceKey]font.Face),
	}, nil
}

// Image returns the backing image. The pixels reflect all draw commands
// issued so far.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Size returns the surface dimensions in pixels.
func (s *ImageSurface) Size() Size {
	b := s.img.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (s *ImageSurface) face(paint TextPaint) font.Face {
	key := faceKey{typeface: paint.Typeface, size: paint.Size}
	if f, ok := s.faces[key]; ok {
		return f
	}
	src := regularFont
	if paint.Typeface == TypefaceBold {
		src = boldFont
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    paint.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		errors.Report(&errors.FaceError{Op: "rendering.ImageSurface.face", Kind: errors.KindRender, Err: err})
		return nil
	}
	s.faces[key] = f
	return f
}

// DrawBackground fills the whole image with the given color.
func (s *ImageSurface) DrawBackground(color Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(color), image.Point{}, draw.Src)
}

// DrawText draws text with its baseline origin at the given position.
// The AntiAlias flag is advisory here: the opentype rasterizer always
// produces smoothed coverage.
func (s *ImageSurface) DrawText(text string, at Offset, paint TextPaint) {
	f := s.face(paint)
	if f == nil {
		return
	}
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(paint.Color),
		Face: f,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(at.X * 64),
			Y: fixed.Int26_6(at.Y * 64),
		},
	}
	d.DrawString(text)
}

// MeasureText returns the advance width of text in pixels.
func (s *ImageSurface) MeasureText(text string, paint TextPaint) float64 {
	f := s.face(paint)
	if f == nil {
		return 0
	}
	return float64(font.MeasureString(f, text)) / 64
}
