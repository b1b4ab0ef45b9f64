package render

import "github.com/chewxy/math32"

// Canvas is a mutable rendering target for one frame. It borrows a
// caller-owned pixel buffer (row-major, 4 bytes per pixel, byte order
// B,G,R,A to match the presentation surface) and must not outlive it.
//
// Every primitive bounds-checks per pixel and silently skips writes
// outside the buffer. That is the only input validation performed; the
// contract is a best-effort visual result, not strict argument checking.
type Canvas struct {
	buf    []byte
	width  int
	height int
}

// NewCanvas creates a canvas over buf, which must hold at least
// width*height*4 bytes. The canvas takes exclusive access to the buffer
// until the frame's draw call returns.
func NewCanvas(buf []byte, width, height int) *Canvas {
	return &Canvas{buf: buf, width: width, height: height}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Data returns the underlying pixel buffer (B,G,R,A byte order).
func (c *Canvas) Data() []byte { return c.buf }

// Clear fills the whole buffer with color, including the alpha byte.
func (c *Canvas) Clear(color Color) {
	for i := 0; i+3 < len(c.buf); i += 4 {
		c.buf[i+0] = color.B
		c.buf[i+1] = color.G
		c.buf[i+2] = color.R
		c.buf[i+3] = color.A
	}
}

// SetPixel overwrites the pixel at (x, y), ignoring existing alpha.
func (c *Canvas) SetPixel(x, y int, color Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	i := (y*c.width + x) * 4
	c.buf[i+0] = color.B
	c.buf[i+1] = color.G
	c.buf[i+2] = color.R
	c.buf[i+3] = color.A
}

// BlendPixel composites color over the pixel at (x, y) with source-over
// alpha blending: dst = dst*(1-a) + src*a per channel, a = color.A/255.
// The destination alpha byte is left unmodified; the buffer is assumed
// opaque.
func (c *Canvas) BlendPixel(x, y int, color Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	i := (y*c.width + x) * 4
	alpha := float32(color.A) / 255
	inv := 1 - alpha
	c.buf[i+0] = uint8(float32(c.buf[i+0])*inv + float32(color.B)*alpha)
	c.buf[i+1] = uint8(float32(c.buf[i+1])*inv + float32(color.G)*alpha)
	c.buf[i+2] = uint8(float32(c.buf[i+2])*inv + float32(color.R)*alpha)
}

// pixel returns the stored color at (x, y). Out-of-bounds reads return
// Transparent.
func (c *Canvas) pixel(x, y int) Color {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return Transparent
	}
	i := (y*c.width + x) * 4
	return Color{R: c.buf[i+2], G: c.buf[i+1], B: c.buf[i+0], A: c.buf[i+3]}
}

// FillRect unconditionally overwrites every in-bounds pixel of the
// rectangle with color.
func (c *Canvas) FillRect(x, y, width, height int, color Color) {
	for py := y; py < y+height; py++ {
		for px := x; px < x+width; px++ {
			c.SetPixel(px, py, color)
		}
	}
}

// FillRoundedRect fills a rectangle with rounded corners. The non-corner
// cross is filled exactly; each corner pixel is classified by Euclidean
// distance to its corner center, with a one-pixel linear alpha ramp at
// the radius boundary blended for a soft edge.
func (c *Canvas) FillRoundedRect(x, y, width, height int, radius float32, color Color) {
	r := int(radius)

	// Main body, two overlapping strips.
	c.FillRect(x+r, y, width-r*2, height, color)
	c.FillRect(x, y+r, width, height-r*2, color)

	// Corner circle centers sit on the innermost pixel of each corner
	// block so the four masks mirror each other exactly.
	fr := float32(r)
	for _, cornerX := range [2]int{x, x + width - r} {
		for _, cornerY := range [2]int{y, y + height - r} {
			centerX := 0
			if cornerX == x {
				centerX = r - 1
			}
			centerY := 0
			if cornerY == y {
				centerY = r - 1
			}
			for dy := 0; dy < r; dy++ {
				for dx := 0; dx < r; dx++ {
					fdx := float32(dx - centerX)
					fdy := float32(dy - centerY)
					dist := math32.Sqrt(fdx*fdx + fdy*fdy)
					if dist > fr {
						continue
					}
					coverage := float32(1)
					if dist >= fr-1 {
						coverage = fr - dist
					}
					aa := coverage * float32(color.A) / 255
					c.BlendPixel(cornerX+dx, cornerY+dy, color.WithAlpha(uint8(aa*255)))
				}
			}
		}
	}
}

// FillGradientRect fills a rectangle with a linear gradient from start to
// end. angle is in degrees; each pixel's normalized position is projected
// onto (cos angle, sin angle), clamped to [0, 1], and all four channels
// are interpolated at that parameter.
func (c *Canvas) FillGradientRect(x, y, width, height int, start, end Color, angle float32) {
	rad := angle * math32.Pi / 180
	cosA := math32.Cos(rad)
	sinA := math32.Sin(rad)

	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			fx := float32(px) / float32(width)
			fy := float32(py) / float32(height)
			t := fx*cosA + fy*sinA
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
			c.SetPixel(x+px, y+py, start.Lerp(end, t))
		}
	}
}

// DrawRect draws a rectangle outline as four filled strips of the given
// thickness.
func (c *Canvas) DrawRect(x, y, width, height int, color Color, thickness int) {
	c.FillRect(x, y, width, thickness, color)
	c.FillRect(x, y+height-thickness, width, thickness, color)
	c.FillRect(x, y, thickness, height, color)
	c.FillRect(x+width-thickness, y, thickness, height, color)
}

// DrawLine draws a one-pixel line from (x1, y1) to (x2, y2) using integer
// Bresenham stepping. No anti-aliasing.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, color Color) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 >= x2 {
		sx = -1
	}
	sy := 1
	if y1 >= y2 {
		sy = -1
	}
	err := dx - dy
	x, y := x1, y1

	for {
		c.SetPixel(x, y, color)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
