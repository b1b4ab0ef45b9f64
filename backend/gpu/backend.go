package gpu

import (
	"github.com/mochi-sh/render"
	"github.com/mochi-sh/render/backend"
)

// BackendGPU is the registry name of the native GPU backend.
const BackendGPU = "gpu"

func init() {
	backend.Register(BackendGPU, func(width, height int) backend.Backend {
		ctx, err := NewContext(uint32(width), uint32(height))
		if err != nil {
			render.Logger().Warn("gpu backend unavailable", "err", err)
			return nil
		}
		return &Backend{ctx: ctx}
	})
}

// Backend adapts a native Context to the backend.Backend capability
// interface.
type Backend struct {
	ctx *Context
}

// New creates a GPU backend over a fresh native context.
func New(width, height uint32) (*Backend, error) {
	ctx, err := NewContext(width, height)
	if err != nil {
		return nil, err
	}
	return &Backend{ctx: ctx}, nil
}

// Context exposes the underlying native context for operations outside
// the capability interface (textures, indexed draws, graph submission).
func (b *Backend) Context() *Context { return b.ctx }

// Close releases the native context.
func (b *Backend) Close() { b.ctx.Close() }

// Type reports the native backend the context runs on.
func (b *Backend) Type() backend.Type { return b.ctx.Backend() }

// CreateShader implements backend.Backend.
func (b *Backend) CreateShader(vertexSrc, fragmentSrc string) (uint32, error) {
	return b.ctx.CreateShader(vertexSrc, fragmentSrc)
}

// UseShader implements backend.Backend.
func (b *Backend) UseShader(shader uint32) { b.ctx.UseShader(shader) }

// DeleteShader implements backend.Backend.
func (b *Backend) DeleteShader(shader uint32) { b.ctx.DeleteShader(shader) }

// CreateBuffer implements backend.Backend.
func (b *Backend) CreateBuffer(data []float32) (uint32, error) {
	return b.ctx.CreateBuffer(data)
}

// BindBuffer implements backend.Backend.
func (b *Backend) BindBuffer(buffer uint32) { b.ctx.BindBuffer(buffer) }

// DeleteBuffer implements backend.Backend.
func (b *Backend) DeleteBuffer(buffer uint32) { b.ctx.DeleteBuffer(buffer) }

// SetUniformFloat implements backend.Backend.
func (b *Backend) SetUniformFloat(name string, value float32) {
	b.ctx.SetUniformFloat(name, value)
}

// SetUniformVec2 implements backend.Backend.
func (b *Backend) SetUniformVec2(name string, x, y float32) {
	b.ctx.SetUniformVec2(name, x, y)
}

// SetUniformVec3 implements backend.Backend.
func (b *Backend) SetUniformVec3(name string, x, y, z float32) {
	b.ctx.SetUniformVec3(name, x, y, z)
}

// SetUniformVec4 implements backend.Backend.
func (b *Backend) SetUniformVec4(name string, x, y, z, w float32) {
	b.ctx.SetUniformVec4(name, x, y, z, w)
}

// SetUniformMat4 implements backend.Backend.
func (b *Backend) SetUniformMat4(name string, matrix *[16]float32) {
	b.ctx.SetUniformMat4(name, matrix)
}

// DrawArrays implements backend.Backend.
func (b *Backend) DrawArrays(mode backend.DrawMode, first, count int32) {
	b.ctx.DrawArrays(mode, first, count)
}

// Clear implements backend.Backend.
func (b *Backend) Clear(r, g, bl, a float32) { b.ctx.Clear(r, g, bl, a) }

// Viewport implements backend.Backend.
func (b *Backend) Viewport(x, y, width, height int32) {
	b.ctx.Viewport(x, y, uint32(width), uint32(height))
}
