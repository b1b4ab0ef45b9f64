// Package shader provides a minimal interpreted fragment-shader
// abstraction for the software path: a per-invocation Context carrying
// the fragment coordinate, resolution, time and named uniforms, a
// single-method Shader capability, GLSL-style numeric helpers, and a
// library of built-in evaluators.
//
// The blur and shadow evaluators are analytic approximations: they
// attenuate by distance instead of sampling neighbouring pixels, since a
// true convolution needs an already-rendered buffer. That is a documented
// limitation of the per-pixel model, not a defect.
package shader
