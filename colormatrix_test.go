package render

import "testing"

func TestAdjustColorsNeutral(t *testing.T) {
	c := newTestCanvas(4, 4)
	c.Clear(RGB(80, 120, 200))
	c.AdjustColors(0, 0, 4, 4, 1, 1, 1)
	if got := c.pixel(2, 2); got != RGB(80, 120, 200) {
		t.Errorf("neutral adjust = %v, want unchanged", got)
	}
}

func TestAdjustColorsBrightness(t *testing.T) {
	c := newTestCanvas(2, 2)
	c.Clear(RGB(100, 50, 20))
	c.AdjustColors(0, 0, 2, 2, 2, 1, 1)
	if got := c.pixel(0, 0); !closeColor(got, RGB(200, 100, 40), 1) {
		t.Errorf("brightness x2 = %v, want ~RGB(200, 100, 40)", got)
	}
}

func TestAdjustColorsContrast(t *testing.T) {
	// Mid-gray is the contrast fixed point.
	c := newTestCanvas(2, 2)
	c.Clear(RGB(128, 128, 128))
	c.AdjustColors(0, 0, 2, 2, 1, 3, 1)
	if got := c.pixel(0, 0); !closeColor(got, RGB(128, 128, 128), 1) {
		t.Errorf("contrast at mid-gray = %v, want unchanged", got)
	}

	c.Clear(RGB(100, 160, 128))
	c.AdjustColors(0, 0, 2, 2, 1, 2, 1)
	if got := c.pixel(0, 0); !closeColor(got, RGB(72, 192, 128), 1) {
		t.Errorf("contrast x2 = %v, want ~RGB(72, 192, 128)", got)
	}
}

func TestAdjustColorsSaturation(t *testing.T) {
	// Saturation 0 collapses to Rec. 709 luminance.
	c := newTestCanvas(2, 2)
	c.Clear(Red)
	c.AdjustColors(0, 0, 2, 2, 1, 1, 0)
	got := c.pixel(0, 0)
	if got.R != got.G || got.G != got.B {
		t.Fatalf("saturation 0 = %v, want gray", got)
	}
	if absDiff(got.R, 54) > 1 {
		t.Errorf("luminance of red = %d, want ~54", got.R)
	}
}

func TestAdjustColorsPreservesAlpha(t *testing.T) {
	c := newTestCanvas(2, 2)
	c.Clear(RGBA(100, 100, 100, 77))
	c.AdjustColors(0, 0, 2, 2, 2, 0.5, 0.5)
	if got := c.pixel(0, 0).A; got != 77 {
		t.Errorf("alpha = %d, want 77", got)
	}
}

func TestAdjustColorsClipsToBuffer(t *testing.T) {
	c := newTestCanvas(4, 4)
	c.Clear(RGB(100, 100, 100))
	c.AdjustColors(-10, -10, 100, 100, 2, 1, 1)
	if got := c.pixel(3, 3); !closeColor(got, RGB(200, 200, 200), 1) {
		t.Errorf("clipped adjust = %v, want ~RGB(200, 200, 200)", got)
	}
}

func TestColorMatrixMultiplyIdentity(t *testing.T) {
	m := BrightnessMatrix(1.5)
	got := m.Multiply(IdentityMatrix())
	if got != m {
		t.Errorf("m * identity = %v, want %v", got, m)
	}
	got = IdentityMatrix().Multiply(m)
	if got != m {
		t.Errorf("identity * m = %v, want %v", got, m)
	}
}

func TestClampByte(t *testing.T) {
	tests := []struct {
		in   float32
		want uint8
	}{
		{-10, 0},
		{0, 0},
		{127.6, 128},
		{255, 255},
		{400, 255},
	}
	for _, tt := range tests {
		if got := clampByte(tt.in); got != tt.want {
			t.Errorf("clampByte(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
