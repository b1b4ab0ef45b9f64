package backend

import (
	"github.com/mochi-sh/render"
	"github.com/mochi-sh/render/effect"
)

// Renderer draws rectangles through a Backend using the built-in shader
// programs. Programs are compiled on first use and cached; Destroy
// releases them.
//
// Vertex layout is 9 floats per vertex: position (3), color (4),
// texture coordinate (2). Coordinates are pixels under an orthographic
// projection with the origin at the top left.
type Renderer struct {
	backend  Backend
	width    int
	height   int
	programs map[string]uint32
}

// NewRenderer wraps a backend for drawing into a width x height target.
func NewRenderer(b Backend, width, height int) *Renderer {
	return &Renderer{
		backend:  b,
		width:    width,
		height:   height,
		programs: make(map[string]uint32),
	}
}

// Resize updates the target dimensions and the backend viewport.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.backend.Viewport(0, 0, int32(width), int32(height))
}

// Begin clears the target to the given color.
func (r *Renderer) Begin(clear render.Color) {
	cr, cg, cb, ca := clear.Vec4()
	r.backend.Clear(cr, cg, cb, ca)
}

// DrawRect fills a rectangle with a solid color.
func (r *Renderer) DrawRect(rect render.Rect, color render.Color) error {
	program, err := r.program("basic", FragmentBasic)
	if err != nil {
		return err
	}
	r.backend.UseShader(program)
	r.setProjection()
	return r.drawQuad(rect, color)
}

// DrawRoundedRect fills a rectangle clipped to rounded corners.
func (r *Renderer) DrawRoundedRect(rect render.Rect, color render.Color, radius float32) error {
	program, err := r.program("rounded", FragmentRoundedRect)
	if err != nil {
		return err
	}
	r.backend.UseShader(program)
	r.setProjection()
	r.backend.SetUniformFloat("cornerRadius", radius)
	r.backend.SetUniformVec2("resolution", float32(rect.Width), float32(rect.Height))
	return r.drawQuad(rect, color)
}

// DrawGradientRect fills a rectangle with a linear gradient at the
// given angle in degrees.
func (r *Renderer) DrawGradientRect(rect render.Rect, start, end render.Color, angle float32) error {
	program, err := r.program("gradient", FragmentGradient)
	if err != nil {
		return err
	}
	r.backend.UseShader(program)
	r.setProjection()
	sr, sg, sb, sa := start.Vec4()
	er, eg, eb, ea := end.Vec4()
	r.backend.SetUniformVec4("gradientStart", sr, sg, sb, sa)
	r.backend.SetUniformVec4("gradientEnd", er, eg, eb, ea)
	r.backend.SetUniformFloat("gradientAngle", angle)
	return r.drawQuad(rect, render.White)
}

// DrawRectWithEffect fills a rectangle using the fragment program and
// uniforms selected by the effect. Effects without a dedicated program
// fall back to the basic fill.
func (r *Renderer) DrawRectWithEffect(rect render.Rect, color render.Color, eff effect.Effect) error {
	switch e := eff.(type) {
	case effect.Blur:
		program, err := r.program("blur", FragmentBlur)
		if err != nil {
			return err
		}
		r.backend.UseShader(program)
		r.setProjection()
		radius := e.Radius
		if radius == 0 {
			radius = effect.DefaultBlurRadius
		}
		r.backend.SetUniformFloat("blurRadius", radius)
		r.backend.SetUniformVec2("resolution", float32(r.width), float32(r.height))
	case effect.Glow:
		program, err := r.program("glow", FragmentGlow)
		if err != nil {
			return err
		}
		r.backend.UseShader(program)
		r.setProjection()
		intensity := e.Intensity
		if intensity == 0 {
			intensity = 1
		}
		r.backend.SetUniformFloat("glowIntensity", intensity)
	case effect.Gradient:
		return r.DrawGradientRect(rect, e.Start, e.End, e.Angle)
	case effect.Brightness:
		program, err := r.program("brightness", FragmentBrightness)
		if err != nil {
			return err
		}
		r.backend.UseShader(program)
		r.setProjection()
		r.backend.SetUniformFloat("brightness", e.Factor)
	case effect.Contrast:
		program, err := r.program("contrast", FragmentContrast)
		if err != nil {
			return err
		}
		r.backend.UseShader(program)
		r.setProjection()
		r.backend.SetUniformFloat("contrast", e.Factor)
	case effect.Saturation:
		program, err := r.program("desaturate", FragmentDesaturate)
		if err != nil {
			return err
		}
		r.backend.UseShader(program)
		r.setProjection()
		r.backend.SetUniformFloat("saturation", e.Factor)
	default:
		return r.DrawRect(rect, color)
	}
	return r.drawQuad(rect, color)
}

// Destroy releases all cached shader programs.
func (r *Renderer) Destroy() {
	for _, program := range r.programs {
		r.backend.DeleteShader(program)
	}
	r.programs = make(map[string]uint32)
}

// program returns the cached shader program for name, compiling it with
// the shared vertex stage on first use.
func (r *Renderer) program(name, fragmentSrc string) (uint32, error) {
	if program, ok := r.programs[name]; ok {
		return program, nil
	}
	program, err := r.backend.CreateShader(VertexBasic, fragmentSrc)
	if err != nil {
		return 0, err
	}
	r.programs[name] = program
	return program, nil
}

// setProjection uploads the orthographic projection and identity view
// and model matrices.
func (r *Renderer) setProjection() {
	projection := Orthographic(0, float32(r.width), float32(r.height), 0)
	identity := IdentityMat4()
	r.backend.SetUniformMat4("projection", &projection)
	r.backend.SetUniformMat4("view", &identity)
	r.backend.SetUniformMat4("model", &identity)
}

// drawQuad uploads a two-triangle quad for rect and issues the draw.
// The buffer is transient: created, drawn, deleted.
func (r *Renderer) drawQuad(rect render.Rect, color render.Color) error {
	x0 := float32(rect.X)
	y0 := float32(rect.Y)
	x1 := float32(rect.X + rect.Width)
	y1 := float32(rect.Y + rect.Height)
	cr, cg, cb, ca := color.Vec4()

	vertices := []float32{
		x0, y0, 0, cr, cg, cb, ca, 0, 0,
		x1, y0, 0, cr, cg, cb, ca, 1, 0,
		x1, y1, 0, cr, cg, cb, ca, 1, 1,

		x0, y0, 0, cr, cg, cb, ca, 0, 0,
		x1, y1, 0, cr, cg, cb, ca, 1, 1,
		x0, y1, 0, cr, cg, cb, ca, 0, 1,
	}

	buffer, err := r.backend.CreateBuffer(vertices)
	if err != nil {
		return err
	}
	r.backend.BindBuffer(buffer)
	r.backend.DrawArrays(DrawTriangles, 0, 6)
	r.backend.DeleteBuffer(buffer)
	return nil
}

// Orthographic builds a column-major orthographic projection over the
// given edges with a -1..1 depth range.
func Orthographic(left, right, bottom, top float32) [16]float32 {
	var m [16]float32
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[10] = -1
	m[12] = -(right + left) / (right - left)
	m[13] = -(top + bottom) / (top - bottom)
	m[15] = 1
	return m
}

// IdentityMat4 returns the 4x4 identity matrix.
func IdentityMat4() [16]float32 {
	var m [16]float32
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}
