package shader

// Uniform is a named shader parameter value: a float or a 2/3/4-vector.
type Uniform struct {
	kind uniformKind
	f    float32
	v2   Vec2
	v3   Vec3
	v4   Vec4
}

type uniformKind int

const (
	uniformFloat uniformKind = iota
	uniformVec2
	uniformVec3
	uniformVec4
)

// Float wraps a float32 uniform value.
func Float(v float32) Uniform { return Uniform{kind: uniformFloat, f: v} }

// Vec2Uniform wraps a Vec2 uniform value.
func Vec2Uniform(v Vec2) Uniform { return Uniform{kind: uniformVec2, v2: v} }

// Vec3Uniform wraps a Vec3 uniform value.
func Vec3Uniform(v Vec3) Uniform { return Uniform{kind: uniformVec3, v3: v} }

// Vec4Uniform wraps a Vec4 uniform value.
func Vec4Uniform(v Vec4) Uniform { return Uniform{kind: uniformVec4, v4: v} }

// Context carries the per-invocation state a shader evaluates against.
// Resolution and Time are fixed for one ExecuteShader invocation;
// FragCoord is updated by the driver for every pixel.
type Context struct {
	FragCoord  Vec2
	Resolution Vec2
	Time       float32

	uniforms map[string]Uniform
}

// NewContext creates a shader context for a region of the given size.
func NewContext(resolution Vec2) *Context {
	return &Context{
		Resolution: resolution,
		uniforms:   make(map[string]Uniform),
	}
}

// SetUniform stores a named uniform value.
func (c *Context) SetUniform(name string, value Uniform) {
	c.uniforms[name] = value
}

// GetFloat returns the named float uniform, or 0 if absent or mistyped.
func (c *Context) GetFloat(name string) float32 {
	if u, ok := c.uniforms[name]; ok && u.kind == uniformFloat {
		return u.f
	}
	return 0
}

// GetVec2 returns the named Vec2 uniform, or the zero vector.
func (c *Context) GetVec2(name string) Vec2 {
	if u, ok := c.uniforms[name]; ok && u.kind == uniformVec2 {
		return u.v2
	}
	return Vec2{}
}

// GetVec3 returns the named Vec3 uniform, or the zero vector.
func (c *Context) GetVec3(name string) Vec3 {
	if u, ok := c.uniforms[name]; ok && u.kind == uniformVec3 {
		return u.v3
	}
	return Vec3{}
}

// GetVec4 returns the named Vec4 uniform, or the zero vector.
func (c *Context) GetVec4(name string) Vec4 {
	if u, ok := c.uniforms[name]; ok && u.kind == uniformVec4 {
		return u.v4
	}
	return Vec4{}
}

// Shader is a per-pixel evaluator: given the context for one fragment it
// produces an RGBA color with channels in [0, 1].
type Shader interface {
	Evaluate(ctx *Context) Vec4
}
