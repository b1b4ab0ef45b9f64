package backend

import "errors"

// Common backend errors.
var (
	// ErrNotAvailable is returned when a requested backend cannot be
	// created, typically because the native library is missing.
	ErrNotAvailable = errors.New("backend: not available")

	// ErrNoHandle is returned when a shader, buffer or texture creation
	// call reports the sentinel "no handle" value. Callers must treat
	// resource creation as fallible and choose the software path.
	ErrNoHandle = errors.New("backend: native resource creation failed")
)

// Type identifies which native graphics backend, if any, is bound.
type Type int

const (
	// TypeNone means no native backend; rendering happens in software.
	TypeNone Type = iota
	// TypeVulkan is a native Vulkan context.
	TypeVulkan
	// TypeOpenGL is a native OpenGL context.
	TypeOpenGL
	// TypeOpenGLES is a native OpenGL ES context.
	TypeOpenGLES
)

// String returns the backend type name.
func (t Type) String() string {
	switch t {
	case TypeVulkan:
		return "vulkan"
	case TypeOpenGL:
		return "opengl"
	case TypeOpenGLES:
		return "opengles"
	default:
		return "none"
	}
}

// DrawMode selects the primitive topology for a draw call.
type DrawMode int

const (
	// DrawTriangles draws independent triangles.
	DrawTriangles DrawMode = iota
	// DrawTriangleStrip draws a connected triangle strip.
	DrawTriangleStrip
	// DrawLines draws independent line segments.
	DrawLines
	// DrawPoints draws points.
	DrawPoints
)

// Backend is the capability interface for a rendering target. All
// operations are accepted by every implementation; backends that cannot
// service an operation treat it as a no-op rather than an error, keeping
// callers independent of the execution target.
//
// Shader, buffer and texture handles are caller-managed small integers
// scoped to one backend instance. Deleting a handle still bound for a
// pending draw call is a caller error; this layer adds no synchronization.
type Backend interface {
	// Type reports which native backend is bound, or TypeNone.
	Type() Type

	// CreateShader compiles and links a shader program from GLSL
	// sources. The GPU backend reports creation failure as an error;
	// the software backend returns a dummy handle.
	CreateShader(vertexSrc, fragmentSrc string) (uint32, error)
	UseShader(shader uint32)
	DeleteShader(shader uint32)

	// CreateBuffer uploads vertex data and returns its handle.
	CreateBuffer(data []float32) (uint32, error)
	BindBuffer(buffer uint32)
	DeleteBuffer(buffer uint32)

	SetUniformFloat(name string, value float32)
	SetUniformVec2(name string, x, y float32)
	SetUniformVec3(name string, x, y, z float32)
	SetUniformVec4(name string, x, y, z, w float32)
	SetUniformMat4(name string, matrix *[16]float32)

	DrawArrays(mode DrawMode, first, count int32)

	// Clear fills the target with a normalized RGBA color.
	Clear(r, g, b, a float32)

	// Viewport sets the target dimensions.
	Viewport(x, y, width, height int32)
}
