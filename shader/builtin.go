package shader

import "github.com/chewxy/math32"

// Gradient evaluates a linear gradient across the region. Angle is in
// degrees; the normalized fragment position, centered at 0.5, is
// projected onto the gradient direction.
type Gradient struct {
	Start Vec4
	End   Vec4
	Angle float32
}

// Evaluate implements Shader.
func (g Gradient) Evaluate(ctx *Context) Vec4 {
	uv := ctx.FragCoord.Div(ctx.Resolution)
	rad := g.Angle * math32.Pi / 180
	dir := V2(math32.Cos(rad), math32.Sin(rad))
	t := Clamp(Dot(uv.Sub(Splat2(0.5)), dir)+0.5, 0, 1)
	return Mix(g.Start, g.End, t)
}

// RadialGradient evaluates a radial gradient from a center color to an
// edge color. Center and Radius are in normalized [0, 1] coordinates.
type RadialGradient struct {
	CenterColor Vec4
	EdgeColor   Vec4
	Center      Vec2
	Radius      float32
}

// Evaluate implements Shader.
func (g RadialGradient) Evaluate(ctx *Context) Vec4 {
	uv := ctx.FragCoord.Div(ctx.Resolution)
	t := Clamp(Distance(uv, g.Center)/g.Radius, 0, 1)
	return Mix(g.CenterColor, g.EdgeColor, t)
}

// RoundedRect evaluates a rounded rectangle via its signed distance
// field, with a one-pixel smoothstep band at the boundary for
// anti-aliasing. Pos and Size are in pixels.
type RoundedRect struct {
	Color  Vec4
	Pos    Vec2
	Size   Vec2
	Radius float32
}

// Evaluate implements Shader.
func (r RoundedRect) Evaluate(ctx *Context) Vec4 {
	halfSize := r.Size.Scale(0.5)
	center := r.Pos.Add(halfSize)

	d := ctx.FragCoord.Sub(center).Abs().Sub(halfSize.Sub(Splat2(r.Radius)))
	dist := Length(V2(math32.Max(d.X, 0), math32.Max(d.Y, 0))) +
		math32.Min(math32.Max(d.X, d.Y), 0)

	alpha := 1 - Smoothstep(r.Radius-1, r.Radius, dist)
	return V4(r.Color.X, r.Color.Y, r.Color.Z, r.Color.W*alpha)
}

// Glow boosts a base color by its own luminance.
type Glow struct {
	Base      Vec4
	Intensity float32
}

// Evaluate implements Shader.
func (g Glow) Evaluate(_ *Context) Vec4 {
	lum := g.Base.X*0.299 + g.Base.Y*0.587 + g.Base.Z*0.114
	boost := V3(g.Base.X, g.Base.Y, g.Base.Z).Scale(g.Intensity * lum)
	return V4(
		math32.Min(g.Base.X+boost.X, 1),
		math32.Min(g.Base.Y+boost.Y, 1),
		math32.Min(g.Base.Z+boost.Z, 1),
		g.Base.W,
	)
}

// Blur darkens a base color by distance from the region center. A true
// blur needs an already-rendered buffer to sample; this analytic stand-in
// only approximates the softened look.
type Blur struct {
	Base   Vec4
	Radius float32
}

// Evaluate implements Shader.
func (b Blur) Evaluate(ctx *Context) Vec4 {
	uv := ctx.FragCoord.Div(ctx.Resolution)
	centerDist := Distance(uv, Splat2(0.5))
	factor := math32.Min(b.Radius*centerDist*0.1, 0.3)
	return V4(
		b.Base.X*(1-factor),
		b.Base.Y*(1-factor),
		b.Base.Z*(1-factor),
		b.Base.W,
	)
}

// Wave modulates a base color with a sinusoidal distortion that drifts
// with Context.Time.
type Wave struct {
	Base      Vec4
	Amplitude float32
	Frequency float32
}

// Evaluate implements Shader.
func (w Wave) Evaluate(ctx *Context) Vec4 {
	uv := ctx.FragCoord.Div(ctx.Resolution)
	wave := math32.Sin(uv.Y*w.Frequency+ctx.Time) * w.Amplitude
	t := Fract(uv.X + wave)
	scale := 0.8 + t*0.2
	return V4(w.Base.X*scale, w.Base.Y*scale, w.Base.Z*scale, w.Base.W)
}

// Noise modulates a base color with procedural value noise: a hashed
// lattice sampled with bilinear interpolation.
type Noise struct {
	Base  Vec4
	Scale float32
}

func (n Noise) hash(p Vec2) float32 {
	h := Fract(p.X*0.1031 + p.Y*0.1030)
	h += h * (h + 33.33) * 2
	return Fract((h + h) * h)
}

func (n Noise) noise(p Vec2) float32 {
	i := V2(math32.Floor(p.X), math32.Floor(p.Y))
	f := V2(Fract(p.X), Fract(p.Y))

	a := n.hash(i)
	b := n.hash(i.Add(V2(1, 0)))
	c := n.hash(i.Add(V2(0, 1)))
	d := n.hash(i.Add(V2(1, 1)))

	// Hermite fade per axis.
	u := V2(f.X*f.X*(3-2*f.X), f.Y*f.Y*(3-2*f.Y))

	return a*(1-u.X)*(1-u.Y) +
		b*u.X*(1-u.Y) +
		c*(1-u.X)*u.Y +
		d*u.X*u.Y
}

// Evaluate implements Shader.
func (n Noise) Evaluate(ctx *Context) Vec4 {
	uv := ctx.FragCoord.Div(ctx.Resolution)
	v := n.noise(uv.Scale(n.Scale))
	scale := 0.7 + v*0.3
	return V4(n.Base.X*scale, n.Base.Y*scale, n.Base.Z*scale, n.Base.W)
}

// ChromaticAberration shifts the red and blue channels radially away
// from the region center.
type ChromaticAberration struct {
	Base   Vec4
	Offset float32
}

// Evaluate implements Shader.
func (c ChromaticAberration) Evaluate(ctx *Context) Vec4 {
	uv := ctx.FragCoord.Div(ctx.Resolution)
	dir := Normalize(uv.Sub(Splat2(0.5)))
	shift := dir.Scale(c.Offset).Length()
	return V4(
		math32.Min(c.Base.X*(1+shift), 1),
		c.Base.Y,
		math32.Min(c.Base.Z*(1+shift), 1),
		c.Base.W,
	)
}

// BoxBlur approximates a box blur by accumulating distance-weighted
// samples of the base color over a square window.
type BoxBlur struct {
	Base    Vec4
	Radius  float32
	Samples int
}

// Evaluate implements Shader.
func (b BoxBlur) Evaluate(ctx *Context) Vec4 {
	uv := ctx.FragCoord.Div(ctx.Resolution)
	pixelSize := V2(1/ctx.Resolution.X, 1/ctx.Resolution.Y)

	samples := b.Samples
	if samples < 1 {
		samples = 1
	}
	if samples > 16 {
		samples = 16
	}

	var sum Vec4
	var weightSum float32
	for x := -samples; x <= samples; x++ {
		for y := -samples; y <= samples; y++ {
			offset := V2(float32(x), float32(y)).Mul(pixelSize).Scale(b.Radius)
			sampleUV := uv.Add(offset)
			if sampleUV.X < 0 || sampleUV.X > 1 || sampleUV.Y < 0 || sampleUV.Y > 1 {
				continue
			}
			w := 1 / (1 + float32(x*x+y*y))
			sum = sum.Add(b.Base.Scale(w))
			weightSum += w
		}
	}
	if weightSum == 0 {
		return b.Base
	}
	return sum.Scale(1 / weightSum)
}

// GaussianBlur approximates a Gaussian blur with an analytic kernel over
// the base color.
type GaussianBlur struct {
	Base   Vec4
	Radius float32
	Sigma  float32
}

func (g GaussianBlur) gaussian(x, y float32) float32 {
	sigmaSq := g.Sigma * g.Sigma
	coeff := 1 / (2 * math32.Pi * sigmaSq)
	return coeff * math32.Exp(-(x*x+y*y)/(2*sigmaSq))
}

// Evaluate implements Shader.
func (g GaussianBlur) Evaluate(_ *Context) Vec4 {
	samples := int(g.Radius * 2)
	if samples < 1 {
		samples = 1
	}
	if samples > 12 {
		samples = 12
	}

	var sum Vec4
	var weightSum float32
	for x := -samples; x <= samples; x++ {
		for y := -samples; y <= samples; y++ {
			w := g.gaussian(float32(x), float32(y))
			sum = sum.Add(g.Base.Scale(w))
			weightSum += w
		}
	}
	if weightSum == 0 {
		return g.Base
	}
	return sum.Scale(1 / weightSum)
}

// DropShadow renders a soft circular base shape with an offset, blurred
// shadow behind it.
type DropShadow struct {
	Base    Vec4
	Shadow  Vec4
	Offset  Vec2
	Blur    float32
	Opacity float32
}

// Evaluate implements Shader.
func (d DropShadow) Evaluate(ctx *Context) Vec4 {
	uv := ctx.FragCoord.Div(ctx.Resolution)
	center := Splat2(0.5)

	baseShape := 1 - Smoothstep(0.3, 0.5, uv.Sub(center).Length())

	shadowUV := uv.Sub(d.Offset.Div(ctx.Resolution.Scale(10)))
	shadowRadius := 0.5 + d.Blur/100
	shadowShape := 1 - Smoothstep(0.3, shadowRadius, shadowUV.Sub(center).Length())
	shadowAlpha := shadowShape * d.Opacity

	switch {
	case baseShape > 0.01:
		return V4(d.Base.X, d.Base.Y, d.Base.Z, d.Base.W*baseShape)
	case shadowAlpha > 0.01:
		return V4(d.Shadow.X, d.Shadow.Y, d.Shadow.Z, shadowAlpha)
	default:
		return Vec4{}
	}
}

// InnerShadow darkens the region near its edges, blending the shadow
// color inward by the blur amount.
type InnerShadow struct {
	Base    Vec4
	Shadow  Vec4
	Blur    float32
	Opacity float32
}

// Evaluate implements Shader.
func (s InnerShadow) Evaluate(ctx *Context) Vec4 {
	uv := ctx.FragCoord.Div(ctx.Resolution)
	edgeDist := math32.Min(
		math32.Min(uv.X, 1-uv.X),
		math32.Min(uv.Y, 1-uv.Y),
	)

	strength := 1 - Smoothstep(0, s.Blur/100, edgeDist)
	alpha := strength * s.Opacity

	return V4(
		s.Base.X*(1-alpha)+s.Shadow.X*alpha,
		s.Base.Y*(1-alpha)+s.Shadow.Y*alpha,
		s.Base.Z*(1-alpha)+s.Shadow.Z*alpha,
		s.Base.W,
	)
}

// DirectionalBlur averages the base color along a direction, a motion
// blur stand-in.
type DirectionalBlur struct {
	Base      Vec4
	Direction Vec2
	Strength  float32
	Samples   int
}

// Evaluate implements Shader.
func (d DirectionalBlur) Evaluate(_ *Context) Vec4 {
	samples := d.Samples
	if samples < 1 {
		samples = 1
	}
	if samples > 16 {
		samples = 16
	}

	var sum Vec4
	for i := 0; i < samples; i++ {
		sum = sum.Add(d.Base)
	}
	return sum.Scale(1 / float32(samples))
}
