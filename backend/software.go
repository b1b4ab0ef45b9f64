package backend

// BackendSoftware is the registry name of the CPU fallback backend.
const BackendSoftware = "software"

func init() {
	Register(BackendSoftware, func(width, height int) Backend {
		return NewSoftware(width, height)
	})
}

// Software is the CPU fallback backend. It owns a B,G,R,A backing buffer
// sized by Viewport and fills it on Clear; every other operation is
// accepted and ignored, since the Canvas primitives already cover CPU
// rendering directly.
type Software struct {
	width  int
	height int
	buffer []byte
}

// NewSoftware creates a software backend with a backing buffer of the
// given size.
func NewSoftware(width, height int) *Software {
	return &Software{
		width:  width,
		height: height,
		buffer: make([]byte, width*height*4),
	}
}

// Type reports TypeNone: no native backend is bound.
func (s *Software) Type() Type { return TypeNone }

// Buffer returns the backing buffer (B,G,R,A byte order).
func (s *Software) Buffer() []byte { return s.buffer }

// Width returns the current buffer width in pixels.
func (s *Software) Width() int { return s.width }

// Height returns the current buffer height in pixels.
func (s *Software) Height() int { return s.height }

// CreateShader accepts the sources and returns a dummy handle; software
// rendering does not execute shader programs.
func (s *Software) CreateShader(_, _ string) (uint32, error) { return 0, nil }

// UseShader is a no-op.
func (s *Software) UseShader(uint32) {}

// DeleteShader is a no-op.
func (s *Software) DeleteShader(uint32) {}

// CreateBuffer accepts the data and returns a dummy handle.
func (s *Software) CreateBuffer([]float32) (uint32, error) { return 0, nil }

// BindBuffer is a no-op.
func (s *Software) BindBuffer(uint32) {}

// DeleteBuffer is a no-op.
func (s *Software) DeleteBuffer(uint32) {}

// SetUniformFloat is a no-op.
func (s *Software) SetUniformFloat(string, float32) {}

// SetUniformVec2 is a no-op.
func (s *Software) SetUniformVec2(string, float32, float32) {}

// SetUniformVec3 is a no-op.
func (s *Software) SetUniformVec3(string, float32, float32, float32) {}

// SetUniformVec4 is a no-op.
func (s *Software) SetUniformVec4(string, float32, float32, float32, float32) {}

// SetUniformMat4 is a no-op.
func (s *Software) SetUniformMat4(string, *[16]float32) {}

// DrawArrays is a no-op.
func (s *Software) DrawArrays(DrawMode, int32, int32) {}

// Clear fills the backing buffer with the given color (B,G,R,A order).
func (s *Software) Clear(r, g, b, a float32) {
	bb := uint8(clamp01(b) * 255)
	gb := uint8(clamp01(g) * 255)
	rb := uint8(clamp01(r) * 255)
	ab := uint8(clamp01(a) * 255)
	for i := 0; i+3 < len(s.buffer); i += 4 {
		s.buffer[i+0] = bb
		s.buffer[i+1] = gb
		s.buffer[i+2] = rb
		s.buffer[i+3] = ab
	}
}

// Viewport resizes the backing buffer when the dimensions change.
func (s *Software) Viewport(_, _, width, height int32) {
	w, h := int(width), int(height)
	if w == s.width && h == s.height {
		return
	}
	s.width = w
	s.height = h
	s.buffer = make([]byte, w*h*4)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
