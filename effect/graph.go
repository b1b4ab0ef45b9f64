package effect

import "github.com/mochi-sh/render"

// Node is one primitive render pass in a compiled graph.
type Node interface {
	isNode()
}

// Clear fills the whole target with a color.
type Clear struct {
	Color render.Color
}

// DrawRect fills a solid rectangle. The compiler always appends exactly
// one DrawRect as the final node of a graph.
type DrawRect struct {
	Rect  render.Rect
	Color render.Color
}

// BlurPass blurs the target region.
type BlurPass struct {
	Radius  float32
	Samples int32
}

// ShadowPass draws a blurred drop shadow for the target region.
type ShadowPass struct {
	OffsetX float32
	OffsetY float32
	Color   render.Color
	Blur    float32
	Opacity float32
}

// CompositePass re-composites the target region with a blend mode.
type CompositePass struct {
	Mode render.BlendMode
}

// ColorAdjust applies brightness/contrast/saturation to the target
// region. Unused scalars are neutral (1.0).
type ColorAdjust struct {
	Brightness float32
	Contrast   float32
	Saturation float32
}

func (Clear) isNode()         {}
func (DrawRect) isNode()      {}
func (BlurPass) isNode()      {}
func (ShadowPass) isNode()    {}
func (CompositePass) isNode() {}
func (ColorAdjust) isNode()   {}

// Graph is an ordered sequence of render passes produced by Compile.
// It is consumed once per frame, not persisted.
type Graph struct {
	nodes []Node
}

// Nodes returns the passes in execution order.
func (g *Graph) Nodes() []Node {
	return g.nodes
}

// Add appends a node to the graph.
func (g *Graph) Add(n Node) {
	g.nodes = append(g.nodes, n)
}

// Compile lowers an effect stack attached to rect into a render graph.
// It is a pure, deterministic function of its inputs: each effect expands
// to its passes in stack order, then exactly one DrawRect carrying the
// target rectangle and base color is appended. The base node is always
// last so the shape is never occluded by its own effect passes.
func Compile(stack *Stack, rect render.Rect, base render.Color) *Graph {
	g := &Graph{}
	if stack != nil {
		for _, e := range stack.Effects() {
			g.nodes = append(g.nodes, e.passes()...)
		}
	}
	g.Add(DrawRect{Rect: rect, Color: base})
	return g
}
