package effect

import "github.com/mochi-sh/render"

// Node type tags in the wire encoding. These values are part of the
// native ABI and must not be renumbered.
const (
	tagClear int32 = iota
	tagDrawRect
	tagBlurPass
	tagShadowPass
	tagCompositePass
	tagColorAdjust
)

// Encode flattens the graph into two parallel arrays: one integer tag
// per node and a packed float parameter list. Colors are normalized to
// [0, 1]. The arrays describe multi-pass effects in one submission, so
// the cost of crossing the foreign boundary is paid once per graph.
//
// Parameter layout per tag:
//
//	Clear:         r, g, b, a
//	DrawRect:      x, y, w, h, r, g, b, a
//	BlurPass:      radius, samples
//	ShadowPass:    offsetX, offsetY, r, g, b, a, blur, opacity
//	CompositePass: mode
//	ColorAdjust:   brightness, contrast, saturation
func (g *Graph) Encode() (tags []int32, params []float32) {
	tags = make([]int32, 0, len(g.nodes))
	params = make([]float32, 0, len(g.nodes)*8)

	for _, n := range g.nodes {
		switch node := n.(type) {
		case Clear:
			tags = append(tags, tagClear)
			r, gr, b, a := node.Color.Vec4()
			params = append(params, r, gr, b, a)
		case DrawRect:
			tags = append(tags, tagDrawRect)
			r, gr, b, a := node.Color.Vec4()
			params = append(params,
				float32(node.Rect.X), float32(node.Rect.Y),
				float32(node.Rect.Width), float32(node.Rect.Height),
				r, gr, b, a)
		case BlurPass:
			tags = append(tags, tagBlurPass)
			params = append(params, node.Radius, float32(node.Samples))
		case ShadowPass:
			tags = append(tags, tagShadowPass)
			r, gr, b, a := node.Color.Vec4()
			params = append(params,
				node.OffsetX, node.OffsetY,
				r, gr, b, a,
				node.Blur, node.Opacity)
		case CompositePass:
			tags = append(tags, tagCompositePass)
			params = append(params, float32(blendModeCode(node.Mode)))
		case ColorAdjust:
			tags = append(tags, tagColorAdjust)
			params = append(params, node.Brightness, node.Contrast, node.Saturation)
		}
	}
	return tags, params
}

// blendModeCode maps blend modes to their ABI values.
func blendModeCode(m render.BlendMode) int32 {
	switch m {
	case render.BlendMultiply:
		return 1
	case render.BlendScreen:
		return 2
	case render.BlendOverlay:
		return 3
	default:
		return 0
	}
}
