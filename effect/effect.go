package effect

import "github.com/mochi-sh/render"

// Default parameters applied when an effect's zero value leaves a field
// unset. They mirror the shell's historical defaults.
const (
	DefaultBlurRadius  = 5.0
	DefaultBlurSamples = 8
	DefaultShadowBlur  = 8.0
	DefaultOpacity     = 0.5

	// Glow lowers to a fixed blur followed by a screen composite.
	glowBlurRadius  = 8.0
	glowBlurSamples = 8
)

// Effect is one declarative visual effect. Each kind carries only its own
// parameters and knows how to expand itself into render passes; the
// expansion rule lives with the effect so it can be tested in isolation.
type Effect interface {
	// passes returns the render nodes this effect lowers to, in order.
	passes() []Node
}

// Blur softens the region. A zero Radius means DefaultBlurRadius; zero
// Samples means DefaultBlurSamples.
type Blur struct {
	Radius  float32
	Samples int
}

func (b Blur) passes() []Node {
	radius := b.Radius
	if radius == 0 {
		radius = DefaultBlurRadius
	}
	samples := b.Samples
	if samples == 0 {
		samples = DefaultBlurSamples
	}
	return []Node{BlurPass{Radius: radius, Samples: int32(samples)}}
}

// Shadow draws a blurred drop shadow behind the region. Zero Blur means
// DefaultShadowBlur; zero Opacity means DefaultOpacity.
type Shadow struct {
	OffsetX float32
	OffsetY float32
	Color   render.Color
	Blur    float32
	Opacity float32
}

func (s Shadow) passes() []Node {
	blur := s.Blur
	if blur == 0 {
		blur = DefaultShadowBlur
	}
	opacity := s.Opacity
	if opacity == 0 {
		opacity = DefaultOpacity
	}
	color := s.Color
	if color == (render.Color{}) {
		color = render.RGBA(0, 0, 0, 128)
	}
	return []Node{ShadowPass{
		OffsetX: s.OffsetX,
		OffsetY: s.OffsetY,
		Color:   color,
		Blur:    blur,
		Opacity: opacity,
	}}
}

// Glow brightens the region with a blurred halo. It is defined as
// blur-then-screen-composite, not a distinct primitive: it expands to a
// fixed-radius BlurPass followed by a CompositePass with screen blending.
type Glow struct {
	Intensity float32
	Color     render.Color
}

func (g Glow) passes() []Node {
	return []Node{
		BlurPass{Radius: glowBlurRadius, Samples: glowBlurSamples},
		CompositePass{Mode: render.BlendScreen},
	}
}

// Gradient declares a linear gradient fill for the region. It expands to
// no pass of its own: gradient fills are drawn directly through
// Canvas.FillGradientRect or the shader.Gradient evaluator.
type Gradient struct {
	Start render.Color
	End   render.Color
	Angle float32
}

func (g Gradient) passes() []Node { return nil }

// Brightness scales the region's channels. 1.0 is neutral.
type Brightness struct {
	Factor float32
}

func (b Brightness) passes() []Node {
	return []Node{ColorAdjust{Brightness: b.Factor, Contrast: 1, Saturation: 1}}
}

// Contrast scales distance from mid-gray. 1.0 is neutral.
type Contrast struct {
	Factor float32
}

func (c Contrast) passes() []Node {
	return []Node{ColorAdjust{Brightness: 1, Contrast: c.Factor, Saturation: 1}}
}

// Saturation blends between grayscale (0) and identity (1).
type Saturation struct {
	Factor float32
}

func (s Saturation) passes() []Node {
	return []Node{ColorAdjust{Brightness: 1, Contrast: 1, Saturation: s.Factor}}
}

// Stack is an ordered sequence of effects. Order is significant: effects
// are applied in stack order and the base shape is always drawn last.
type Stack struct {
	effects []Effect
}

// NewStack creates an empty effect stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push appends an effect to the stack.
func (s *Stack) Push(e Effect) {
	s.effects = append(s.effects, e)
}

// Effects returns the effects in stack order.
func (s *Stack) Effects() []Effect {
	return s.effects
}

// Len returns the number of effects in the stack.
func (s *Stack) Len() int {
	return len(s.effects)
}
