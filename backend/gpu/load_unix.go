//go:build darwin || freebsd || linux

package gpu

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
)

var (
	loadOnce sync.Once
	table    *procs
	loadErr  error
)

// libraryName returns the shared library to load. MOCHI_GPU_LIB
// overrides the platform default.
func libraryName() string {
	if name := os.Getenv("MOCHI_GPU_LIB"); name != "" {
		return name
	}
	if runtime.GOOS == "darwin" {
		return "libmochigpu.dylib"
	}
	return "libmochigpu.so"
}

// loadTable resolves the gpu_context_* function table once per process.
func loadTable() (*procs, error) {
	loadOnce.Do(func() {
		name := libraryName()
		lib, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			loadErr = fmt.Errorf("loading %s: %w", name, err)
			return
		}

		p := &procs{}
		purego.RegisterLibFunc(&p.contextCreate, lib, "gpu_context_create")
		purego.RegisterLibFunc(&p.contextDestroy, lib, "gpu_context_destroy")
		purego.RegisterLibFunc(&p.contextIsValid, lib, "gpu_context_is_valid")
		purego.RegisterLibFunc(&p.contextGetBackend, lib, "gpu_context_get_backend")
		purego.RegisterLibFunc(&p.contextGetDeviceInfo, lib, "gpu_context_get_device_info")

		purego.RegisterLibFunc(&p.clear, lib, "gpu_context_clear")
		purego.RegisterLibFunc(&p.viewport, lib, "gpu_context_viewport")
		purego.RegisterLibFunc(&p.present, lib, "gpu_context_present")

		purego.RegisterLibFunc(&p.createShader, lib, "gpu_context_create_shader")
		purego.RegisterLibFunc(&p.useShader, lib, "gpu_context_use_shader")
		purego.RegisterLibFunc(&p.deleteShader, lib, "gpu_context_delete_shader")

		purego.RegisterLibFunc(&p.setUniformFloat, lib, "gpu_context_set_uniform_float")
		purego.RegisterLibFunc(&p.setUniformVec2, lib, "gpu_context_set_uniform_vec2")
		purego.RegisterLibFunc(&p.setUniformVec3, lib, "gpu_context_set_uniform_vec3")
		purego.RegisterLibFunc(&p.setUniformVec4, lib, "gpu_context_set_uniform_vec4")
		purego.RegisterLibFunc(&p.setUniformMat4, lib, "gpu_context_set_uniform_mat4")

		purego.RegisterLibFunc(&p.createBuffer, lib, "gpu_context_create_buffer")
		purego.RegisterLibFunc(&p.bindBuffer, lib, "gpu_context_bind_buffer")
		purego.RegisterLibFunc(&p.deleteBuffer, lib, "gpu_context_delete_buffer")

		purego.RegisterLibFunc(&p.createTexture, lib, "gpu_context_create_texture")
		purego.RegisterLibFunc(&p.bindTexture, lib, "gpu_context_bind_texture")
		purego.RegisterLibFunc(&p.deleteTexture, lib, "gpu_context_delete_texture")

		purego.RegisterLibFunc(&p.drawArrays, lib, "gpu_context_draw_arrays")
		purego.RegisterLibFunc(&p.drawElements, lib, "gpu_context_draw_elements")

		purego.RegisterLibFunc(&p.executeGraph, lib, "gpu_execute_render_graph")

		table = p
	})
	return table, loadErr
}
