package gpu

import (
	"errors"
	"testing"

	"github.com/mochi-sh/render/backend"
)

func TestNewContextUnavailable(t *testing.T) {
	// Force the loader at a library that cannot exist. The load result is
	// cached per process, so this also covers the registered factory path.
	t.Setenv("MOCHI_GPU_LIB", "/nonexistent/libmochigpu.so")

	ctx, err := NewContext(100, 100)
	if err == nil {
		ctx.Close()
		t.Skip("native library present, skipping unavailable-path test")
	}
	if !errors.Is(err, backend.ErrNotAvailable) {
		t.Errorf("err = %v, want ErrNotAvailable", err)
	}
}

func TestFactoryFallsBackToNil(t *testing.T) {
	t.Setenv("MOCHI_GPU_LIB", "/nonexistent/libmochigpu.so")

	b := backend.Get(BackendGPU, 100, 100)
	if b != nil {
		t.Skip("native library present, skipping fallback test")
	}

	// With the GPU factory unavailable Default lands on software.
	def := backend.Default(100, 100)
	if def == nil {
		t.Fatal("Default returned nil")
	}
	if def.Type() != backend.TypeNone {
		t.Errorf("fallback backend type = %v, want TypeNone", def.Type())
	}
}
