package render

// BlendMode selects a compositing formula for a composite pass.
type BlendMode int

const (
	// BlendNormal is plain source-over; self-compositing is an identity.
	BlendNormal BlendMode = iota
	// BlendMultiply darkens: out = s*d/255.
	BlendMultiply
	// BlendScreen brightens: out = 255 - (255-s)*(255-d)/255.
	BlendScreen
	// BlendOverlay multiplies dark regions and screens bright ones.
	BlendOverlay
)

// CompositeRegion re-composites a rectangular region with itself using
// the given blend mode. Screen-compositing a freshly blurred region with
// itself is how the CPU path realizes a glow: the blurred halo brightens
// where it overlaps. BlendNormal is a no-op.
func (c *Canvas) CompositeRegion(x, y, width, height int, mode BlendMode) {
	if mode == BlendNormal {
		return
	}
	for py := y; py < y+height; py++ {
		if py < 0 || py >= c.height {
			continue
		}
		for px := x; px < x+width; px++ {
			if px < 0 || px >= c.width {
				continue
			}
			i := (py*c.width + px) * 4
			for ch := 0; ch < 3; ch++ {
				c.buf[i+ch] = blendChannel(c.buf[i+ch], c.buf[i+ch], mode)
			}
		}
	}
}

// blendChannel applies the blend formula to one 8-bit channel pair.
func blendChannel(s, d uint8, mode BlendMode) uint8 {
	switch mode {
	case BlendMultiply:
		return uint8(uint32(s) * uint32(d) / 255)
	case BlendScreen:
		return uint8(255 - uint32(255-s)*uint32(255-d)/255)
	case BlendOverlay:
		if d < 128 {
			return uint8(2 * uint32(s) * uint32(d) / 255)
		}
		v := 255 - 2*uint32(255-s)*uint32(255-d)/255
		return uint8(v)
	default:
		return s
	}
}
