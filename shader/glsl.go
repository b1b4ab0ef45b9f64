package shader

import "github.com/chewxy/math32"

// GLSL-style numeric helpers with the usual graphics-pipeline semantics.

// Mix linearly interpolates between a and b: a*(1-t) + b*t.
func Mix(a, b Vec4, t float32) Vec4 {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// MixVec3 linearly interpolates between two Vec3 values.
func MixVec3(a, b Vec3, t float32) Vec3 {
	return Vec3{
		X: a.X*(1-t) + b.X*t,
		Y: a.Y*(1-t) + b.Y*t,
		Z: a.Z*(1-t) + b.Z*t,
	}
}

// MixFloat linearly interpolates between two scalars.
func MixFloat(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// Smoothstep is the Hermite interpolation t*t*(3-2*t) of
// t = clamp((x-edge0)/(edge1-edge0), 0, 1).
func Smoothstep(edge0, edge1, x float32) float32 {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Length returns the Euclidean length of v.
func Length(v Vec2) float32 { return v.Length() }

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float32 { return a.Sub(b).Length() }

// Dot returns the dot product of a and b.
func Dot(a, b Vec2) float32 { return a.Dot(b) }

// Normalize returns v scaled to unit length, or the zero vector when v
// has zero length.
func Normalize(v Vec2) Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// Fract returns the fractional part of x.
func Fract(x float32) float32 { return x - math32.Floor(x) }

// Step returns 0 when x < edge and 1 otherwise.
func Step(edge, x float32) float32 {
	if x < edge {
		return 0
	}
	return 1
}
