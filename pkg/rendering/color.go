package rendering

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// ARGB constructs a Color from alpha, red, green, blue bytes.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return ARGB(0xFF, r, g, b)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// RGBA implements image/color.Color, returning alpha-premultiplied
// 16-bit components so a Color can be used directly as a draw source.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(uint8(c>>24)) * 0x101
	r = uint32(uint8(c>>16)) * 0x101 * a / 0xFFFF
	g = uint32(uint8(c>>8)) * 0x101 * a / 0xFFFF
	b = uint32(uint8(c)) * 0x101 * a / 0xFFFF
	return
}

// WithAlpha returns a copy of the color with the given alpha (0-255).
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)
