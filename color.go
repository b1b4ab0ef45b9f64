package render

// Color is an 8-bit-per-channel RGBA color value.
// Channel values are always in [0, 255] by construction.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from 8-bit channels including alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Lerp linearly interpolates between c and other at parameter t in [0, 1].
// All four channels are interpolated.
func (c Color) Lerp(other Color, t float32) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	inv := 1 - t
	return Color{
		R: uint8(float32(c.R)*inv + float32(other.R)*t),
		G: uint8(float32(c.G)*inv + float32(other.G)*t),
		B: uint8(float32(c.B)*inv + float32(other.B)*t),
		A: uint8(float32(c.A)*inv + float32(other.A)*t),
	}
}

// Vec4 returns the color as normalized [0, 1] components (r, g, b, a).
// The GPU path submits colors in this form.
func (c Color) Vec4() (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

// Basic colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Transparent = RGBA(0, 0, 0, 0)
)

// Dark-theme palette used by the shell.
var (
	BGPrimary   = RGB(40, 40, 40)
	BGSecondary = RGB(50, 50, 50)
	BGTertiary  = RGB(30, 30, 30)

	TextPrimary   = RGB(255, 255, 255)
	TextSecondary = RGB(200, 200, 200)
	TextTertiary  = RGB(150, 150, 150)

	Border      = RGB(70, 70, 70)
	BorderLight = RGB(90, 90, 90)

	Accent   = RGB(0, 122, 255)
	Success  = RGB(52, 199, 89)
	Warning  = RGB(255, 149, 0)
	ErrorRed = RGB(255, 59, 48)
)
