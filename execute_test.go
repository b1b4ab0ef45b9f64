package render

import (
	"testing"

	"github.com/mochi-sh/render/shader"
)

// solidShader evaluates to a constant color.
type solidShader shader.Vec4

func (s solidShader) Evaluate(*shader.Context) shader.Vec4 { return shader.Vec4(s) }

// coordShader writes the normalized fragment coordinate into red/green.
type coordShader struct{}

func (coordShader) Evaluate(ctx *shader.Context) shader.Vec4 {
	return shader.V4(ctx.FragCoord.X/ctx.Resolution.X, ctx.FragCoord.Y/ctx.Resolution.Y, 0, 1)
}

func TestExecuteShaderOpaque(t *testing.T) {
	c := newTestCanvas(8, 8)
	c.Clear(Black)
	c.ExecuteShader(0, 0, 8, 8, solidShader(shader.V4(1, 0, 0, 1)), 0)
	if got := c.pixel(4, 4); got != Red {
		t.Errorf("opaque shader = %v, want %v", got, Red)
	}
}

func TestExecuteShaderTransparentSkips(t *testing.T) {
	c := newTestCanvas(8, 8)
	c.Clear(RGB(10, 20, 30))
	c.ExecuteShader(0, 0, 8, 8, solidShader(shader.V4(1, 1, 1, 0)), 0)
	if got := c.pixel(4, 4); got != RGB(10, 20, 30) {
		t.Errorf("transparent shader = %v, want untouched", got)
	}
}

func TestExecuteShaderBlends(t *testing.T) {
	c := newTestCanvas(8, 8)
	c.Clear(Black)
	c.ExecuteShader(0, 0, 8, 8, solidShader(shader.V4(1, 1, 1, 0.5)), 0)
	got := c.pixel(4, 4)
	if !closeColor(got, RGB(128, 128, 128), 1) {
		t.Errorf("half-alpha shader = %v, want ~mid gray", got)
	}
}

func TestExecuteShaderCoordinates(t *testing.T) {
	c := newTestCanvas(10, 10)
	c.Clear(Black)
	c.ExecuteShader(0, 0, 10, 10, coordShader{}, 0)

	topLeft := c.pixel(0, 0)
	bottomRight := c.pixel(9, 9)
	if topLeft.R != 0 || topLeft.G != 0 {
		t.Errorf("top-left = %v, want zero coordinate channels", topLeft)
	}
	if bottomRight.R <= topLeft.R || bottomRight.G <= topLeft.G {
		t.Errorf("bottom-right = %v, want increasing coordinate channels", bottomRight)
	}
}

func TestExecuteShaderOffsetAndClip(t *testing.T) {
	c := newTestCanvas(10, 10)
	c.Clear(Black)
	c.ExecuteShader(6, 6, 8, 8, solidShader(shader.V4(1, 1, 1, 1)), 0)

	if got := c.pixel(5, 5); got != Black {
		t.Errorf("outside region = %v, want %v", got, Black)
	}
	if got := c.pixel(9, 9); got != White {
		t.Errorf("inside clipped region = %v, want %v", got, White)
	}
}

func TestExecuteShaderNil(t *testing.T) {
	c := newTestCanvas(4, 4)
	c.Clear(Black)
	c.ExecuteShader(0, 0, 4, 4, nil, 0)
	if got := c.pixel(0, 0); got != Black {
		t.Errorf("nil shader = %v, want untouched", got)
	}
}
