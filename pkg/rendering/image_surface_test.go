package rendering

import "testing"

func TestNewImageSurfaceRejectsBadDimensions(t *testing.T) {
	if _, err := NewImageSurface(0, 100); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := NewImageSurface(100, -1); err == nil {
		t.Error("expected error for negative height")
	}
}

func TestImageSurfaceBackground(t *testing.T) {
	s, err := NewImageSurface(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	s.DrawBackground(ColorBlack)

	r, g, b, a := s.Image().At(4, 4).RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0xFFFF {
		t.Errorf("pixel = %v,%v,%v,%v, want opaque black", r, g, b, a)
	}
}

func TestImageSurfaceMeasureText(t *testing.T) {
	s, err := NewImageSurface(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	paint := TextPaint{Color: ColorWhite, Size: 25, Typeface: TypefaceRegular}

	one := s.MeasureText("0", paint)
	two := s.MeasureText("00", paint)
	if one <= 0 {
		t.Fatalf("width of one digit = %v, want > 0", one)
	}
	if two <= one {
		t.Errorf("width of %q (%v) not wider than %q (%v)", "00", two, "0", one)
	}

	// Measurement is deterministic for identical inputs.
	if again := s.MeasureText("0", paint); again != one {
		t.Errorf("repeated measurement %v != %v", again, one)
	}
}

func TestImageSurfaceDrawTextLeavesInk(t *testing.T) {
	s, err := NewImageSurface(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	s.DrawBackground(ColorBlack)
	s.DrawText("12", Offset{X: 30, Y: 60}, TextPaint{Color: ColorWhite, Size: 25, Typeface: TypefaceBold})

	inked := false
	img := s.Image()
	for y := 0; y < 100 && !inked; y++ {
		for x := 0; x < 100; x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r > 0 {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("DrawText left no pixels")
	}
}
