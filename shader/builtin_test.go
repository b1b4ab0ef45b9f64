package shader

import "testing"

func evalAt(t *testing.T, s Shader, x, y float32) Vec4 {
	t.Helper()
	ctx := NewContext(V2(100, 100))
	ctx.FragCoord = V2(x, y)
	return s.Evaluate(ctx)
}

func TestGradient(t *testing.T) {
	g := Gradient{Start: V4(1, 0, 0, 1), End: V4(0, 0, 1, 1), Angle: 0}

	left := evalAt(t, g, 0, 50)
	right := evalAt(t, g, 99, 50)
	if !closeVec4(left, g.Start, 1e-5) {
		t.Errorf("left edge = %v, want %v", left, g.Start)
	}
	if right.Z <= right.X {
		t.Errorf("right edge = %v, want blue dominant", right)
	}

	// Angle 0 varies only along X.
	top := evalAt(t, g, 40, 0)
	bottom := evalAt(t, g, 40, 99)
	if !closeVec4(top, bottom, 1e-6) {
		t.Errorf("column varies: %v vs %v", top, bottom)
	}
}

func TestRadialGradient(t *testing.T) {
	g := RadialGradient{
		CenterColor: V4(1, 1, 1, 1),
		EdgeColor:   V4(0, 0, 0, 1),
		Center:      V2(0.5, 0.5),
		Radius:      0.5,
	}

	center := evalAt(t, g, 50, 50)
	if !closeVec4(center, g.CenterColor, 1e-5) {
		t.Errorf("center = %v, want %v", center, g.CenterColor)
	}
	edge := evalAt(t, g, 0, 50)
	if !closeVec4(edge, g.EdgeColor, 1e-5) {
		t.Errorf("edge = %v, want %v", edge, g.EdgeColor)
	}
}

func TestRoundedRect(t *testing.T) {
	r := RoundedRect{
		Color:  V4(1, 1, 1, 1),
		Pos:    V2(10, 10),
		Size:   V2(50, 30),
		Radius: 8,
	}

	inside := evalAt(t, r, 35, 25)
	if inside.W != 1 {
		t.Errorf("inside alpha = %v, want 1", inside.W)
	}
	outside := evalAt(t, r, 90, 90)
	if outside.W != 0 {
		t.Errorf("outside alpha = %v, want 0", outside.W)
	}
	corner := evalAt(t, r, 11, 11)
	if corner.W != 0 {
		t.Errorf("outer corner alpha = %v, want 0", corner.W)
	}
}

func TestGlow(t *testing.T) {
	base := V4(0.5, 0.5, 0.5, 1)
	out := Glow{Base: base, Intensity: 2}.Evaluate(nil)
	if out.X <= base.X {
		t.Errorf("glow did not brighten: %v", out)
	}
	if out.W != base.W {
		t.Errorf("glow alpha = %v, want %v", out.W, base.W)
	}

	// Saturates at 1.
	bright := Glow{Base: V4(1, 1, 1, 1), Intensity: 10}.Evaluate(nil)
	if bright.X > 1 || bright.Y > 1 || bright.Z > 1 {
		t.Errorf("glow exceeded 1: %v", bright)
	}
}

func TestBlurDarkensWithDistance(t *testing.T) {
	b := Blur{Base: V4(1, 1, 1, 1), Radius: 5}
	center := evalAt(t, b, 50, 50)
	edge := evalAt(t, b, 0, 0)
	if edge.X >= center.X {
		t.Errorf("edge %v not darker than center %v", edge.X, center.X)
	}
	if center.W != 1 || edge.W != 1 {
		t.Error("blur touched alpha")
	}
}

func TestNoiseDeterministicAndBounded(t *testing.T) {
	n := Noise{Base: V4(1, 1, 1, 1), Scale: 10}
	for _, pos := range [][2]float32{{0, 0}, {13, 7}, {50, 50}, {99, 99}} {
		a := evalAt(t, n, pos[0], pos[1])
		b := evalAt(t, n, pos[0], pos[1])
		if a != b {
			t.Fatalf("noise at %v not deterministic: %v vs %v", pos, a, b)
		}
		if a.X < 0.7-1e-5 || a.X > 1+1e-5 {
			t.Errorf("noise scale at %v out of range: %v", pos, a.X)
		}
	}
}

func TestBoxBlurUniformBase(t *testing.T) {
	// Over a constant color the weighted average is the color itself.
	b := BoxBlur{Base: V4(0.25, 0.5, 0.75, 1), Radius: 2, Samples: 4}
	out := evalAt(t, b, 50, 50)
	if !closeVec4(out, b.Base, 1e-4) {
		t.Errorf("uniform box blur = %v, want %v", out, b.Base)
	}
}

func TestGaussianBlurUniformBase(t *testing.T) {
	g := GaussianBlur{Base: V4(0.25, 0.5, 0.75, 1), Radius: 3, Sigma: 2}
	out := g.Evaluate(nil)
	if !closeVec4(out, g.Base, 1e-4) {
		t.Errorf("uniform gaussian blur = %v, want %v", out, g.Base)
	}
}

func TestInnerShadow(t *testing.T) {
	s := InnerShadow{
		Base:    V4(1, 1, 1, 1),
		Shadow:  V4(0, 0, 0, 1),
		Blur:    20,
		Opacity: 1,
	}
	edge := evalAt(t, s, 0, 50)
	center := evalAt(t, s, 50, 50)
	if edge.X >= center.X {
		t.Errorf("edge %v not darker than center %v", edge.X, center.X)
	}
	if !closeVec4(center, s.Base, 1e-5) {
		t.Errorf("center = %v, want base %v", center, s.Base)
	}
}

func TestDirectionalBlurPreservesUniformColor(t *testing.T) {
	d := DirectionalBlur{Base: V4(0.5, 0.25, 0.125, 1), Direction: V2(1, 0), Strength: 2, Samples: 8}
	out := d.Evaluate(nil)
	if !closeVec4(out, d.Base, 1e-5) {
		t.Errorf("directional blur = %v, want %v", out, d.Base)
	}
}
