package render

import "testing"

func TestBoxBlurMaskMonotonic(t *testing.T) {
	const width, height = 32, 32
	mask := make([]uint8, width*height)
	for i := range mask {
		mask[i] = 255
	}

	for _, blur := range []int{2, 4, 8} {
		blurred := boxBlurMask(mask, width, height, blur)

		// Coverage never increases walking outward from the center.
		row := height / 2
		for x := width / 2; x > 0; x-- {
			inner := blurred[row*width+x]
			outer := blurred[row*width+x-1]
			if outer > inner {
				t.Errorf("blur %d: coverage rises outward at x=%d: %d > %d", blur, x-1, outer, inner)
			}
		}
		col := width / 2
		for y := height / 2; y > 0; y-- {
			inner := blurred[y*width+col]
			outer := blurred[(y-1)*width+col]
			if outer > inner {
				t.Errorf("blur %d: coverage rises outward at y=%d: %d > %d", blur, y-1, outer, inner)
			}
		}

		if center := blurred[row*width+col]; center != 255 {
			t.Errorf("blur %d: center coverage = %d, want 255", blur, center)
		}
	}
}

func TestDrawShadow(t *testing.T) {
	c := newTestCanvas(60, 60)
	c.Clear(White)
	c.DrawShadow(10, 10, 20, 20, 4, Black)

	// Offset is blur/2 = 2; the shadow interior darkens.
	center := c.pixel(22, 22)
	if center == White {
		t.Error("shadow center did not darken")
	}
	if got := c.pixel(0, 0); got != White {
		t.Errorf("far pixel = %v, want untouched %v", got, White)
	}
}

func TestDrawShadowBlurLimits(t *testing.T) {
	tests := []struct {
		name    string
		blur    int
		touched bool
	}{
		{"below threshold is a no-op", 1, false},
		{"minimum visible", 2, true},
		{"clamped above max", 50, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas(60, 60)
			c.Clear(White)
			c.DrawShadow(10, 10, 20, 20, tt.blur, Black)
			touched := c.pixel(22, 22) != White
			if touched != tt.touched {
				t.Errorf("blur %d touched = %v, want %v", tt.blur, touched, tt.touched)
			}
		})
	}
}

func TestDrawRoundedShadowSymmetry(t *testing.T) {
	const x, y, size, blur = 10, 10, 24, 4
	c := newTestCanvas(60, 60)
	c.Clear(White)
	c.DrawRoundedShadow(x, y, size, size, 6, blur, Black)

	// The mask and the blur are reflection symmetric, so the composited
	// shadow mirrors about the center of the offset shape.
	const off = blur / 2
	for dy := 0; dy < size/2; dy++ {
		for dx := 0; dx < size/2; dx++ {
			a := c.pixel(x+off+dx, y+off+dy)
			b := c.pixel(x+off+size-1-dx, y+off+dy)
			if a != b {
				t.Fatalf("shadow not mirrored at (%d,%d): %v vs %v", dx, dy, a, b)
			}
		}
	}
}

func TestBoxBlurRegion(t *testing.T) {
	t.Run("uniform region unchanged", func(t *testing.T) {
		c := newTestCanvas(20, 20)
		c.Clear(RGB(100, 150, 200))
		c.BoxBlurRegion(0, 0, 20, 20, 4)
		if got := c.pixel(10, 10); !closeColor(got, RGB(100, 150, 200), 1) {
			t.Errorf("uniform blur = %v", got)
		}
	})

	t.Run("softens edges", func(t *testing.T) {
		c := newTestCanvas(30, 30)
		c.Clear(Black)
		c.FillRect(10, 10, 10, 10, White)
		c.BoxBlurRegion(5, 5, 20, 20, 3)
		edge := c.pixel(10, 15)
		if edge.R == 0 || edge.R == 255 {
			t.Errorf("edge pixel = %v, want partial", edge)
		}
	})

	t.Run("radius zero is a no-op", func(t *testing.T) {
		c := newTestCanvas(10, 10)
		c.Clear(Black)
		c.FillRect(2, 2, 4, 4, White)
		c.BoxBlurRegion(0, 0, 10, 10, 0)
		if got := c.pixel(2, 2); got != White {
			t.Errorf("pixel = %v, want unchanged %v", got, White)
		}
	})

	t.Run("clips to buffer", func(t *testing.T) {
		c := newTestCanvas(10, 10)
		c.Clear(White)
		c.BoxBlurRegion(-5, -5, 100, 100, 4)
		c.BoxBlurRegion(50, 50, 10, 10, 4)
	})
}
