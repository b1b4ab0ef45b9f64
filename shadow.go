package render

// Shadow rendering: a binary alpha mask of the source shape is box-blurred
// with a separable two-pass filter, then the blurred coverage modulates the
// shadow color's alpha while compositing at a small offset. The separable
// passes cost O(w*h*r) each instead of O(w*h*r^2) for a full 2D window.

// maxShadowBlur bounds the worst-case cost on the software path.
const maxShadowBlur = 8

// shadowAlphaThreshold skips compositing of nearly transparent mask pixels.
const shadowAlphaThreshold = 5

// DrawShadow draws a blurred rectangular drop shadow for the given shape
// bounds. blur is clamped to 8; values below 2 are invisible and no-op.
// The shadow is composited at a (blur/2, blur/2) offset.
func (c *Canvas) DrawShadow(x, y, width, height, blur int, color Color) {
	if width <= 0 || height <= 0 {
		return
	}
	if blur > maxShadowBlur {
		blur = maxShadowBlur
	}
	if blur < 2 {
		return
	}

	mask := make([]uint8, width*height)
	for i := range mask {
		mask[i] = 255
	}

	blurred := boxBlurMask(mask, width, height, blur)
	c.compositeShadowMask(blurred, x, y, width, height, blur, color)
}

// DrawRoundedShadow draws a blurred drop shadow for a rounded rectangle.
// The mask uses the same corner-distance test as FillRoundedRect.
func (c *Canvas) DrawRoundedShadow(x, y, width, height int, radius float32, blur int, color Color) {
	if width <= 0 || height <= 0 {
		return
	}
	if blur > maxShadowBlur {
		blur = maxShadowBlur
	}
	if blur < 2 {
		return
	}

	r := int(radius)
	mask := make([]uint8, width*height)
	corners := [4][2]int{
		{r - 1, r - 1},
		{width - r, r - 1},
		{r - 1, height - r},
		{width - r, height - r},
	}
	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			idx := py*width + px
			if (px >= r && px < width-r) || (py >= r && py < height-r) {
				mask[idx] = 255
				continue
			}
			for _, corner := range corners {
				dx := px - corner[0]
				dy := py - corner[1]
				if dx*dx+dy*dy <= r*r {
					mask[idx] = 255
					break
				}
			}
		}
	}

	blurred := boxBlurMask(mask, width, height, blur)
	c.compositeShadowMask(blurred, x, y, width, height, blur, color)
}

// boxBlurMask applies a separable box blur to a single-channel mask:
// one horizontal pass averaging a [-r, +r] window per row into a temp
// buffer, then one vertical pass over the same window per column. The
// effective window radius is blur/2 (minimum 1), trading quality for a
// bounded cost.
func boxBlurMask(mask []uint8, width, height, blur int) []uint8 {
	r := blur / 2
	if r < 1 {
		r = 1
	}

	temp := make([]uint8, width*height)
	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			startX := px - r
			if startX < 0 {
				startX = 0
			}
			endX := px + r
			if endX > width-1 {
				endX = width - 1
			}
			var sum, count uint32
			for sx := startX; sx <= endX; sx++ {
				sum += uint32(mask[py*width+sx])
				count++
			}
			temp[py*width+px] = uint8(sum / count)
		}
	}

	out := make([]uint8, width*height)
	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			startY := py - r
			if startY < 0 {
				startY = 0
			}
			endY := py + r
			if endY > height-1 {
				endY = height - 1
			}
			var sum, count uint32
			for sy := startY; sy <= endY; sy++ {
				sum += uint32(temp[sy*width+px])
				count++
			}
			out[py*width+px] = uint8(sum / count)
		}
	}
	return out
}

// compositeShadowMask multiplies the shadow color's alpha by the blurred
// coverage and alpha-blends each mask pixel into the canvas at a blur/2
// offset in both axes.
func (c *Canvas) compositeShadowMask(blurred []uint8, x, y, width, height, blur int, color Color) {
	offset := blur / 2
	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			alpha := blurred[py*width+px]
			if alpha < shadowAlphaThreshold {
				continue
			}
			shadowAlpha := uint8(float32(alpha) / 255 * float32(color.A))
			c.BlendPixel(x+px+offset, y+py+offset, color.WithAlpha(shadowAlpha))
		}
	}
}

// BoxBlurRegion box-blurs all four channels of a rectangular region of
// the canvas in place, using the same separable two-pass averaging as the
// shadow path. The radius is clamped to 8. Pixels outside the buffer are
// neither read nor written; the window shrinks at region edges.
func (c *Canvas) BoxBlurRegion(x, y, width, height, radius int) {
	// Clip the region to the buffer.
	if x < 0 {
		width += x
		x = 0
	}
	if y < 0 {
		height += y
		y = 0
	}
	if x+width > c.width {
		width = c.width - x
	}
	if y+height > c.height {
		height = c.height - y
	}
	if width <= 0 || height <= 0 {
		return
	}
	if radius > maxShadowBlur {
		radius = maxShadowBlur
	}
	if radius < 1 {
		return
	}

	// Horizontal pass into a float working copy of the region.
	temp := make([]float32, width*height*4)
	for py := 0; py < height; py++ {
		row := (y + py) * c.width
		for px := 0; px < width; px++ {
			startX := px - radius
			if startX < 0 {
				startX = 0
			}
			endX := px + radius
			if endX > width-1 {
				endX = width - 1
			}
			var b, g, r, a float32
			for sx := startX; sx <= endX; sx++ {
				i := (row + x + sx) * 4
				b += float32(c.buf[i+0])
				g += float32(c.buf[i+1])
				r += float32(c.buf[i+2])
				a += float32(c.buf[i+3])
			}
			n := float32(endX - startX + 1)
			ti := (py*width + px) * 4
			temp[ti+0] = b / n
			temp[ti+1] = g / n
			temp[ti+2] = r / n
			temp[ti+3] = a / n
		}
	}

	// Vertical pass back into the buffer.
	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			startY := py - radius
			if startY < 0 {
				startY = 0
			}
			endY := py + radius
			if endY > height-1 {
				endY = height - 1
			}
			var b, g, r, a float32
			for sy := startY; sy <= endY; sy++ {
				ti := (sy*width + px) * 4
				b += temp[ti+0]
				g += temp[ti+1]
				r += temp[ti+2]
				a += temp[ti+3]
			}
			n := float32(endY - startY + 1)
			i := ((y+py)*c.width + x + px) * 4
			c.buf[i+0] = uint8(b/n + 0.5)
			c.buf[i+1] = uint8(g/n + 0.5)
			c.buf[i+2] = uint8(r/n + 0.5)
			c.buf[i+3] = uint8(a/n + 0.5)
		}
	}
}
