package effect

import (
	"log/slog"

	"github.com/mochi-sh/render"
)

// Execute walks the graph and calls the corresponding canvas primitive
// for each node. This is the CPU path; the GPU path submits the same
// graph through backend/gpu after encoding.
//
// Region-scoped passes operate relative to the target rectangle of the
// graph's final DrawRect node: color adjusts apply to the target itself,
// while blur and composite passes cover a halo extended past the target
// by the largest blur radius in the graph. The halo is what stays
// visible around the base fill, so a glow's blur+screen pair reads as a
// brightened fringe.
func (g *Graph) Execute(c *render.Canvas) {
	if c == nil || len(g.nodes) == 0 {
		return
	}

	target := g.targetRect()
	halo := target.Inset(-g.haloMargin())

	for _, n := range g.nodes {
		switch node := n.(type) {
		case Clear:
			c.Clear(node.Color)
		case DrawRect:
			c.FillRect(node.Rect.X, node.Rect.Y, node.Rect.Width, node.Rect.Height, node.Color)
		case BlurPass:
			c.BoxBlurRegion(halo.X, halo.Y, halo.Width, halo.Height, int(node.Radius))
		case ShadowPass:
			opacity := node.Opacity
			if opacity < 0 {
				opacity = 0
			} else if opacity > 1 {
				opacity = 1
			}
			alpha := uint8(opacity * float32(node.Color.A))
			c.DrawShadow(
				target.X+int(node.OffsetX),
				target.Y+int(node.OffsetY),
				target.Width, target.Height,
				int(node.Blur),
				node.Color.WithAlpha(alpha),
			)
		case CompositePass:
			c.CompositeRegion(halo.X, halo.Y, halo.Width, halo.Height, node.Mode)
		case ColorAdjust:
			c.AdjustColors(target.X, target.Y, target.Width, target.Height,
				node.Brightness, node.Contrast, node.Saturation)
		}
	}

	render.Logger().Debug("render graph executed",
		slog.Int("passes", len(g.nodes)),
		slog.Int("width", target.Width),
		slog.Int("height", target.Height))
}

// haloMargin returns the largest blur radius of any BlurPass in the
// graph, the distance effect output can extend past the target.
func (g *Graph) haloMargin() int {
	margin := 0
	for _, n := range g.nodes {
		if bp, ok := n.(BlurPass); ok && int(bp.Radius) > margin {
			margin = int(bp.Radius)
		}
	}
	return margin
}

// targetRect returns the rectangle of the trailing DrawRect node, which
// Compile guarantees is present.
func (g *Graph) targetRect() render.Rect {
	for i := len(g.nodes) - 1; i >= 0; i-- {
		if dr, ok := g.nodes[i].(DrawRect); ok {
			return dr.Rect
		}
	}
	return render.Rect{}
}
