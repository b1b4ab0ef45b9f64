// Package backend abstracts the rendering target behind a capability
// interface independent of whether execution happens on the CPU or a
// native graphics device.
//
// Two implementations exist: the Software backend in this package, which
// only services clear and viewport (the Canvas primitives already cover
// CPU rendering directly), and the GPU wrapper in backend/gpu, which
// forwards every operation across the foreign function boundary to a
// native graphics context. Backends register themselves by name; Default
// selects the best available one, falling back to software when no
// native context can be created.
package backend
