package rendering

import (
	"image/color"
	"testing"
)

func TestRGBConstructors(t *testing.T) {
	if got := RGB(0xF5, 0x66, 0x00); got != Color(0xFFF56600) {
		t.Errorf("RGB = %#08x, want 0xFFF56600", uint32(got))
	}
	if got := ARGB(0x80, 0x10, 0x20, 0x30); got != Color(0x80102030) {
		t.Errorf("ARGB = %#08x, want 0x80102030", uint32(got))
	}
}

func TestWithAlpha(t *testing.T) {
	c := ColorWhite.WithAlpha(0x40)
	if c != Color(0x40FFFFFF) {
		t.Errorf("WithAlpha = %#08x, want 0x40FFFFFF", uint32(c))
	}
}

func TestRGBAF(t *testing.T) {
	r, g, b, a := Color(0xFF800000).RGBAF()
	if a != 1.0 {
		t.Errorf("alpha = %v, want 1.0", a)
	}
	if r < 0.5 || r > 0.51 {
		t.Errorf("red = %v, want ~0.502", r)
	}
	if g != 0 || b != 0 {
		t.Errorf("green/blue = %v/%v, want 0/0", g, b)
	}
}

// Color satisfies image/color.Color with premultiplied components so it
// can feed image.NewUniform directly.
func TestRGBAPremultiplied(t *testing.T) {
	var _ color.Color = ColorWhite

	r, g, b, a := ColorWhite.RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF || a != 0xFFFF {
		t.Errorf("white RGBA = %v,%v,%v,%v, want all 0xFFFF", r, g, b, a)
	}

	r, g, b, a = ColorTransparent.RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("transparent RGBA = %v,%v,%v,%v, want all 0", r, g, b, a)
	}

	// Half-alpha red premultiplies the red channel.
	r, _, _, a = Color(0x80FF0000).RGBA()
	if a != 0x8080 {
		t.Errorf("alpha = %#04x, want 0x8080", a)
	}
	if r != a {
		t.Errorf("premultiplied red = %#04x, want %#04x", r, a)
	}
}
