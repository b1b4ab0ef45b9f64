package backend

import (
	"sync"

	"github.com/mochi-sh/render"
)

// Factory creates a backend sized for the given dimensions. A factory
// returns nil when its backend is unavailable (for the GPU backend,
// when no native context can be created).
type Factory func(width, height int) Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)

	// Selection priority: first available wins.
	priority = []string{"gpu", BackendSoftware}
)

// Register registers a backend factory under a name. Typically called
// from init functions in backend packages; a factory registered under an
// existing name replaces it.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Available returns the registered backend names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	return names
}

// Get creates the named backend, or returns nil when it is not
// registered or not available.
func Get(name string, width, height int) Backend {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()
	if !ok {
		return nil
	}
	return factory(width, height)
}

// Default returns the best available backend in priority order
// (gpu before software). Absence of the native library is not an error:
// the software backend always remains as the fallback.
func Default(width, height int) Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range priority {
		factory, ok := backends[name]
		if !ok {
			continue
		}
		if b := factory(width, height); b != nil {
			if name != BackendSoftware {
				render.Logger().Info("render backend selected", "backend", name)
			}
			return b
		}
		render.Logger().Warn("render backend unavailable, trying next", "backend", name)
	}

	for _, factory := range backends {
		if b := factory(width, height); b != nil {
			return b
		}
	}
	return nil
}
