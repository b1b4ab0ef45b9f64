// Package gpu wraps the native graphics context reached through the
// mochi gpu_context_* C-ABI function table.
//
// The table is resolved at runtime from libmochigpu (overridable via the
// MOCHI_GPU_LIB environment variable) with purego, so the package builds
// and runs without cgo and without the library present. Context creation
// is fallible by design: when the library is missing, creation returns a
// null handle, or the new context fails validation, NewContext reports
// an error and callers fall back to the software path. A *Context owns
// its native handle exclusively and releases it exactly once in Close.
package gpu
