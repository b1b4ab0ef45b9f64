package render

// ColorMatrix is a 4x5 color transformation matrix in row-major order:
//
//	[R']   [m0  m1  m2  m3  m4 ]   [R]
//	[G'] = [m5  m6  m7  m8  m9 ] * [G]
//	[B']   [m10 m11 m12 m13 m14]   [B]
//	[A']   [m15 m16 m17 m18 m19]   [A]
//	                               [1]
//
// The fifth column is a bias term. Channel values are in [0, 255] during
// the transform and clamped back on write.
type ColorMatrix [20]float32

// IdentityMatrix returns the pass-through color matrix.
func IdentityMatrix() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// BrightnessMatrix scales the color channels.
// factor: 0 = black, 1 = unchanged, 2 = twice as bright.
func BrightnessMatrix(factor float32) ColorMatrix {
	return ColorMatrix{
		factor, 0, 0, 0, 0,
		0, factor, 0, 0, 0,
		0, 0, factor, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// ContrastMatrix scales distance from mid-gray: (v - 128)*factor + 128.
// factor: 0 = gray, 1 = unchanged.
func ContrastMatrix(factor float32) ColorMatrix {
	offset := 128 * (1 - factor)
	return ColorMatrix{
		factor, 0, 0, 0, offset,
		0, factor, 0, 0, offset,
		0, 0, factor, 0, offset,
		0, 0, 0, 1, 0,
	}
}

// SaturationMatrix blends between Rec. 709 luminance (factor 0, grayscale)
// and identity (factor 1).
func SaturationMatrix(factor float32) ColorMatrix {
	const (
		lumR = 0.2126
		lumG = 0.7152
		lumB = 0.0722
	)
	inv := 1 - factor
	return ColorMatrix{
		lumR*inv + factor, lumG * inv, lumB * inv, 0, 0,
		lumR * inv, lumG*inv + factor, lumB * inv, 0, 0,
		lumR * inv, lumG * inv, lumB*inv + factor, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Multiply returns the matrix that applies m first, then other.
func (m ColorMatrix) Multiply(other ColorMatrix) ColorMatrix {
	var out ColorMatrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += other[row*5+k] * m[k*5+col]
			}
			out[row*5+col] = sum
		}
		out[row*5+4] = other[row*5+0]*m[4] + other[row*5+1]*m[9] +
			other[row*5+2]*m[14] + other[row*5+3]*m[19] + other[row*5+4]
	}
	return out
}

// AdjustColors applies brightness, contrast and saturation adjustments to
// a rectangular region. Factors of 1.0 are neutral. The three adjustments
// compose into a single color matrix so the region is walked once. The
// alpha byte is preserved.
func (c *Canvas) AdjustColors(x, y, width, height int, brightness, contrast, saturation float32) {
	m := IdentityMatrix()
	if saturation != 1 {
		m = m.Multiply(SaturationMatrix(saturation))
	}
	if contrast != 1 {
		m = m.Multiply(ContrastMatrix(contrast))
	}
	if brightness != 1 {
		m = m.Multiply(BrightnessMatrix(brightness))
	}
	c.applyColorMatrix(x, y, width, height, m)
}

func (c *Canvas) applyColorMatrix(x, y, width, height int, m ColorMatrix) {
	for py := y; py < y+height; py++ {
		if py < 0 || py >= c.height {
			continue
		}
		for px := x; px < x+width; px++ {
			if px < 0 || px >= c.width {
				continue
			}
			i := (py*c.width + px) * 4
			b := float32(c.buf[i+0])
			g := float32(c.buf[i+1])
			r := float32(c.buf[i+2])
			a := float32(c.buf[i+3])

			newR := m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]
			newG := m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9]
			newB := m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14]

			c.buf[i+0] = clampByte(newB)
			c.buf[i+1] = clampByte(newG)
			c.buf[i+2] = clampByte(newR)
		}
	}
}

func clampByte(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
