package render

import "github.com/mochi-sh/render/shader"

// ExecuteShader evaluates s for every pixel of the target rectangle and
// writes the result into the canvas. The shader's [0, 1] output is
// converted to 8-bit; fully opaque results overwrite the pixel, fully
// transparent results are skipped without touching the buffer, and
// everything in between is alpha-blended.
//
// elapsed seeds Context.Time for animated shaders. The loop is
// synchronous and runs to completion; callers wanting bounded latency
// bound their own region size.
func (c *Canvas) ExecuteShader(x, y, width, height int, s shader.Shader, elapsed float32) {
	if s == nil || width <= 0 || height <= 0 {
		return
	}

	ctx := shader.NewContext(shader.V2(float32(width), float32(height)))
	ctx.Time = elapsed

	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			ctx.FragCoord = shader.V2(float32(px), float32(py))
			out := s.Evaluate(ctx)
			color := colorFromVec4(out)
			switch color.A {
			case 0:
				// Skip entirely, not even a blend call.
			case 255:
				c.SetPixel(x+px, y+py, color)
			default:
				c.BlendPixel(x+px, y+py, color)
			}
		}
	}
}

// colorFromVec4 converts a [0, 1] shader output to an 8-bit color,
// clamping each channel.
func colorFromVec4(v shader.Vec4) Color {
	return Color{
		R: channelByte(v.X),
		G: channelByte(v.Y),
		B: channelByte(v.Z),
		A: channelByte(v.W),
	}
}

func channelByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
