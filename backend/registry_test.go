package backend

import (
	"slices"
	"testing"
)

func TestRegistryGet(t *testing.T) {
	b := Get(BackendSoftware, 4, 4)
	if b == nil {
		t.Fatal("software backend not registered")
	}
	if _, ok := b.(*Software); !ok {
		t.Errorf("Get(software) = %T", b)
	}
	if Get("no-such-backend", 4, 4) != nil {
		t.Error("unknown name should return nil")
	}
}

func TestRegistryAvailable(t *testing.T) {
	if !slices.Contains(Available(), BackendSoftware) {
		t.Errorf("Available() = %v, want to contain %q", Available(), BackendSoftware)
	}
}

func TestRegistryDefaultFallsBack(t *testing.T) {
	// Without the gpu package imported only the software factory is
	// registered, so Default lands on it.
	b := Default(4, 4)
	if b == nil {
		t.Fatal("Default returned nil")
	}
	if b.Type() != TypeNone {
		t.Errorf("default backend type = %v, want TypeNone", b.Type())
	}
}

func TestRegistryUnavailableFactorySkipped(t *testing.T) {
	Register("always-broken", func(int, int) Backend { return nil })
	defer func() {
		registryMu.Lock()
		delete(backends, "always-broken")
		registryMu.Unlock()
	}()

	if Get("always-broken", 4, 4) != nil {
		t.Error("unavailable factory should yield nil")
	}
	if Default(4, 4) == nil {
		t.Error("Default must still fall back to software")
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{TypeNone, "none"},
		{TypeVulkan, "vulkan"},
		{TypeOpenGL, "opengl"},
		{TypeOpenGLES, "opengles"},
		{Type(99), "none"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
