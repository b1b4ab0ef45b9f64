//go:build !(darwin || freebsd || linux)

package gpu

import "github.com/mochi-sh/render/backend"

// loadTable reports the native library as unavailable on platforms
// without dlopen support; callers fall back to the software path.
func loadTable() (*procs, error) {
	return nil, backend.ErrNotAvailable
}
