// Package render is the 2D rendering core shared by the mochi shell
// variants: a software rasterizer drawing into a caller-owned pixel
// buffer, a per-pixel shader evaluation engine, and an effect compiler
// that lowers declarative effect stacks into ordered render passes.
//
// A Canvas borrows a BGRA pixel buffer for the duration of one frame and
// exposes pixel-level primitives (fill, rounded rectangles, gradients,
// lines, shadows). The shader subpackage provides a minimal interpreted
// fragment-shader abstraction driven by Canvas.ExecuteShader. The effect
// subpackage compiles effect stacks into render graphs that execute
// either directly against a Canvas or, encoded as flat arrays, against a
// native GPU context (backend/gpu).
//
// All primitives are best-effort: out-of-bounds coordinates are silently
// skipped, never reported as errors.
package render
