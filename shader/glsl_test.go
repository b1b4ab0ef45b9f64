package shader

import "testing"

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		name         string
		edge0, edge1 float32
		x            float32
		want         float32
	}{
		{"below edge0", 0, 1, -1, 0},
		{"at edge0", 0, 1, 0, 0},
		{"midpoint", 0, 1, 0.5, 0.5},
		{"at edge1", 0, 1, 1, 1},
		{"above edge1", 0, 1, 2, 1},
		{"shifted range", 2, 4, 3, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Smoothstep(tt.edge0, tt.edge1, tt.x); !closeF(got, tt.want, 1e-6) {
				t.Errorf("Smoothstep(%v, %v, %v) = %v, want %v", tt.edge0, tt.edge1, tt.x, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-1, 0, 1); got != 0 {
		t.Errorf("Clamp(-1) = %v", got)
	}
	if got := Clamp(2, 0, 1); got != 1 {
		t.Errorf("Clamp(2) = %v", got)
	}
	if got := Clamp(0.25, 0, 1); got != 0.25 {
		t.Errorf("Clamp(0.25) = %v", got)
	}
}

func TestMix(t *testing.T) {
	a := V4(0, 0, 0, 1)
	b := V4(1, 1, 1, 1)
	got := Mix(a, b, 0.25)
	want := V4(0.25, 0.25, 0.25, 1)
	if !closeVec4(got, want, 1e-6) {
		t.Errorf("Mix = %v, want %v", got, want)
	}
	if got := Mix(a, b, 0); got != a {
		t.Errorf("Mix t=0 = %v, want %v", got, a)
	}
	if got := Mix(a, b, 1); got != b {
		t.Errorf("Mix t=1 = %v, want %v", got, b)
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize(V2(3, 4))
	if !closeF(got.Length(), 1, 1e-6) {
		t.Errorf("Normalize(3,4).Length() = %v, want 1", got.Length())
	}
	if got := Normalize(Vec2{}); got != (Vec2{}) {
		t.Errorf("Normalize(zero) = %v, want zero", got)
	}
}

func TestFract(t *testing.T) {
	if got := Fract(3.25); !closeF(got, 0.25, 1e-6) {
		t.Errorf("Fract(3.25) = %v", got)
	}
	if got := Fract(-0.25); !closeF(got, 0.75, 1e-6) {
		t.Errorf("Fract(-0.25) = %v, want 0.75", got)
	}
}

func TestStep(t *testing.T) {
	if got := Step(0.5, 0.4); got != 0 {
		t.Errorf("Step below = %v", got)
	}
	if got := Step(0.5, 0.5); got != 1 {
		t.Errorf("Step at edge = %v", got)
	}
}

func closeF(a, b, tol float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func closeVec4(a, b Vec4, tol float32) bool {
	return closeF(a.X, b.X, tol) && closeF(a.Y, b.Y, tol) &&
		closeF(a.Z, b.Z, tol) && closeF(a.W, b.W, tol)
}
