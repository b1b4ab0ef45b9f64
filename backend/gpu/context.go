package gpu

import (
	"fmt"
	"unsafe"

	"github.com/mochi-sh/render"
	"github.com/mochi-sh/render/backend"
	"github.com/mochi-sh/render/effect"
)

// Context is an owning wrapper around a native graphics context handle.
//
// Ownership is exclusive: the context is created by NewContext, used by
// one owner, and destroyed exactly once by Close. The native library
// makes no verified claim about cross-goroutine use of the handle, so a
// Context must stay with a single owner; this layer adds no locking.
type Context struct {
	procs  *procs
	handle uintptr
}

// NewContext creates and validates a native graphics context. It returns
// an error when the native library cannot be loaded, when creation
// returns a null handle, or when the new context fails validation; in
// the last case the partially created handle is destroyed before
// returning. Callers must treat creation as fallible and fall back to
// the software path.
func NewContext(width, height uint32) (*Context, error) {
	p, err := loadTable()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", backend.ErrNotAvailable, err)
	}

	handle := p.contextCreate(width, height)
	if handle == 0 {
		return nil, fmt.Errorf("%w: context creation returned null", backend.ErrNotAvailable)
	}
	if !p.contextIsValid(handle) {
		p.contextDestroy(handle)
		return nil, fmt.Errorf("%w: context failed validation", backend.ErrNotAvailable)
	}

	ctx := &Context{procs: p, handle: handle}
	info := ctx.DeviceInfo()
	render.Logger().Info("gpu context created",
		"backend", ctx.Backend().String(),
		"device", info.DeviceName(),
		"driver", info.DriverVersion())
	return ctx, nil
}

// Close destroys the native handle. It is the only release path and is
// safe to call more than once; only the first call reaches the native
// library. The context must not be used after Close.
func (c *Context) Close() {
	if c.handle == 0 {
		return
	}
	c.procs.contextDestroy(c.handle)
	c.handle = 0
}

// Backend reports which native backend the context runs on.
func (c *Context) Backend() backend.Type {
	return backendTypeFromCode(c.procs.contextGetBackend(c.handle))
}

// DeviceInfo queries the device description record.
func (c *Context) DeviceInfo() DeviceInfo {
	var info DeviceInfo
	c.procs.contextGetDeviceInfo(c.handle, unsafe.Pointer(&info))
	return info
}

// Clear fills the target with a normalized RGBA color.
func (c *Context) Clear(r, g, b, a float32) {
	c.procs.clear(c.handle, r, g, b, a)
}

// Viewport sets the rendering viewport.
func (c *Context) Viewport(x, y int32, width, height uint32) {
	c.procs.viewport(c.handle, x, y, width, height)
}

// Present flips the rendered frame to the surface.
func (c *Context) Present() {
	c.procs.present(c.handle)
}

// CreateShader compiles and links a shader program. The sources cross
// the boundary null-terminated. A zero handle from the native side is
// reported as ErrNoHandle.
func (c *Context) CreateShader(vertexSrc, fragmentSrc string) (uint32, error) {
	shader := c.procs.createShader(c.handle, vertexSrc, fragmentSrc)
	if shader == 0 {
		return 0, fmt.Errorf("%w: shader", backend.ErrNoHandle)
	}
	return shader, nil
}

// UseShader binds a shader program for subsequent draws.
func (c *Context) UseShader(shader uint32) {
	c.procs.useShader(c.handle, shader)
}

// DeleteShader releases a shader program handle.
func (c *Context) DeleteShader(shader uint32) {
	c.procs.deleteShader(c.handle, shader)
}

// SetUniformFloat sets a float uniform on the bound shader.
func (c *Context) SetUniformFloat(name string, value float32) {
	c.procs.setUniformFloat(c.handle, name, value)
}

// SetUniformVec2 sets a vec2 uniform on the bound shader.
func (c *Context) SetUniformVec2(name string, x, y float32) {
	c.procs.setUniformVec2(c.handle, name, x, y)
}

// SetUniformVec3 sets a vec3 uniform on the bound shader.
func (c *Context) SetUniformVec3(name string, x, y, z float32) {
	c.procs.setUniformVec3(c.handle, name, x, y, z)
}

// SetUniformVec4 sets a vec4 uniform on the bound shader.
func (c *Context) SetUniformVec4(name string, x, y, z, w float32) {
	c.procs.setUniformVec4(c.handle, name, x, y, z, w)
}

// SetUniformMat4 sets a 4x4 matrix uniform (column-major, 16 floats).
func (c *Context) SetUniformMat4(name string, matrix *[16]float32) {
	c.procs.setUniformMat4(c.handle, name, unsafe.Pointer(matrix))
}

// CreateBuffer uploads vertex data and returns its handle, or ErrNoHandle
// when the native side reports failure.
func (c *Context) CreateBuffer(data []float32) (uint32, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: empty buffer", backend.ErrNoHandle)
	}
	buffer := c.procs.createBuffer(c.handle, unsafe.Pointer(&data[0]), uint32(len(data)*4))
	if buffer == 0 {
		return 0, fmt.Errorf("%w: buffer", backend.ErrNoHandle)
	}
	return buffer, nil
}

// BindBuffer binds a vertex buffer for subsequent draws.
func (c *Context) BindBuffer(buffer uint32) {
	c.procs.bindBuffer(c.handle, buffer)
}

// DeleteBuffer releases a vertex buffer handle.
func (c *Context) DeleteBuffer(buffer uint32) {
	c.procs.deleteBuffer(c.handle, buffer)
}

// CreateTexture uploads RGBA texture data and returns its handle, or
// ErrNoHandle when the native side reports failure.
func (c *Context) CreateTexture(width, height uint32, data []byte) (uint32, error) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = unsafe.Pointer(&data[0])
	}
	texture := c.procs.createTexture(c.handle, width, height, ptr)
	if texture == 0 {
		return 0, fmt.Errorf("%w: texture", backend.ErrNoHandle)
	}
	return texture, nil
}

// BindTexture binds a texture to a sampler slot.
func (c *Context) BindTexture(texture, slot uint32) {
	c.procs.bindTexture(c.handle, texture, slot)
}

// DeleteTexture releases a texture handle.
func (c *Context) DeleteTexture(texture uint32) {
	c.procs.deleteTexture(c.handle, texture)
}

// DrawArrays issues a non-indexed draw call.
func (c *Context) DrawArrays(mode backend.DrawMode, first, count int32) {
	c.procs.drawArrays(c.handle, drawModeCode(mode), first, count)
}

// DrawElements issues an indexed draw call.
func (c *Context) DrawElements(mode backend.DrawMode, indices []uint32) {
	if len(indices) == 0 {
		return
	}
	c.procs.drawElements(c.handle, drawModeCode(mode), int32(len(indices)), unsafe.Pointer(&indices[0]))
}

// SubmitGraph encodes a compiled render graph into flat tag and
// parameter arrays and submits them across the boundary in one call.
func (c *Context) SubmitGraph(g *effect.Graph) {
	tags, params := g.Encode()
	if len(tags) == 0 {
		return
	}
	var paramPtr unsafe.Pointer
	if len(params) > 0 {
		paramPtr = unsafe.Pointer(&params[0])
	}
	c.procs.executeGraph(c.handle, unsafe.Pointer(&tags[0]), uint32(len(tags)), paramPtr)
}

// drawModeCode maps DrawMode to its ABI value.
func drawModeCode(m backend.DrawMode) uint32 {
	switch m {
	case backend.DrawTriangleStrip:
		return 1
	case backend.DrawLines:
		return 2
	case backend.DrawPoints:
		return 3
	default:
		return 0 // triangles
	}
}
