package shader

import "github.com/chewxy/math32"

// Vec2 is a 2-component float32 vector.
type Vec2 struct {
	X, Y float32
}

// V2 is shorthand for constructing a Vec2.
func V2(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

// Splat2 returns a Vec2 with both components set to v.
func Splat2(v float32) Vec2 { return Vec2{X: v, Y: v} }

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns the component-wise product v * o.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Div returns the component-wise quotient v / o.
func (v Vec2) Div(o Vec2) Vec2 { return Vec2{v.X / o.X, v.Y / o.Y} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 { return v.X*o.X + v.Y*o.Y }

// Length returns the Euclidean length of v.
func (v Vec2) Length() float32 { return math32.Sqrt(v.X*v.X + v.Y*v.Y) }

// Abs returns the component-wise absolute value.
func (v Vec2) Abs() Vec2 { return Vec2{math32.Abs(v.X), math32.Abs(v.Y)} }

// Vec3 is a 3-component float32 vector.
type Vec3 struct {
	X, Y, Z float32
}

// V3 is shorthand for constructing a Vec3.
func V3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Vec4 is a 4-component float32 vector. Shader outputs use it as an RGBA
// color with channels in [0, 1].
type Vec4 struct {
	X, Y, Z, W float32
}

// V4 is shorthand for constructing a Vec4.
func V4(x, y, z, w float32) Vec4 { return Vec4{X: x, Y: y, Z: z, W: w} }

// Add returns v + o.
func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Scale returns v * s.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}
