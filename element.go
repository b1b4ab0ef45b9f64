package render

// GlyphCompositor rasterizes text and alpha-blends glyph coverage into a
// canvas. Implementations live outside this core; a missing font must
// degrade to a no-op with a diagnostic, never a failure.
type GlyphCompositor interface {
	Render(c *Canvas, text string, x, y int, size float64, color Color, fontName string)
}

// Element is a drawable node of the UI tree. The tree composes Canvas
// primitives; this core only defines the capability it consumes.
type Element interface {
	Render(c *Canvas, glyphs GlyphCompositor)
	Bounds() Rect
}
