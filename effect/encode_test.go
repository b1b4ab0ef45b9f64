package effect

import (
	"testing"

	"github.com/mochi-sh/render"
)

func TestEncode(t *testing.T) {
	g := &Graph{}
	g.Add(Clear{Color: render.Black})
	g.Add(BlurPass{Radius: 6, Samples: 8})
	g.Add(ShadowPass{OffsetX: 2, OffsetY: 3, Color: render.RGBA(0, 0, 0, 255), Blur: 4, Opacity: 0.5})
	g.Add(CompositePass{Mode: render.BlendScreen})
	g.Add(ColorAdjust{Brightness: 1.5, Contrast: 1, Saturation: 0.5})
	g.Add(DrawRect{Rect: render.Rect{X: 1, Y: 2, Width: 30, Height: 40}, Color: render.White})

	tags, params := g.Encode()

	wantTags := []int32{tagClear, tagBlurPass, tagShadowPass, tagCompositePass, tagColorAdjust, tagDrawRect}
	if len(tags) != len(wantTags) {
		t.Fatalf("tags = %v, want %v", tags, wantTags)
	}
	for i := range wantTags {
		if tags[i] != wantTags[i] {
			t.Errorf("tags[%d] = %d, want %d", i, tags[i], wantTags[i])
		}
	}

	wantParams := []float32{
		0, 0, 0, 1, // clear rgba
		6, 8, // blur radius, samples
		2, 3, 0, 0, 0, 1, 4, 0.5, // shadow offset, rgba, blur, opacity
		2,           // composite mode code (screen)
		1.5, 1, 0.5, // color adjust
		1, 2, 30, 40, 1, 1, 1, 1, // draw rect + rgba
	}
	if len(params) != len(wantParams) {
		t.Fatalf("params length = %d, want %d\nparams: %v", len(params), len(wantParams), params)
	}
	for i := range wantParams {
		if params[i] != wantParams[i] {
			t.Errorf("params[%d] = %v, want %v", i, params[i], wantParams[i])
		}
	}
}

func TestEncodeEmptyGraph(t *testing.T) {
	g := &Graph{}
	tags, params := g.Encode()
	if len(tags) != 0 || len(params) != 0 {
		t.Errorf("empty graph encoded to %v / %v", tags, params)
	}
}

func TestBlendModeCode(t *testing.T) {
	tests := []struct {
		mode render.BlendMode
		want int32
	}{
		{render.BlendNormal, 0},
		{render.BlendMultiply, 1},
		{render.BlendScreen, 2},
		{render.BlendOverlay, 3},
	}
	for _, tt := range tests {
		if got := blendModeCode(tt.mode); got != tt.want {
			t.Errorf("blendModeCode(%v) = %d, want %d", tt.mode, got, tt.want)
		}
	}
}
