// Package effect compiles declarative effect stacks into render graphs.
//
// A Stack is an ordered list of effects (blur, shadow, glow, gradient,
// color adjustments) attached to a rectangular region. Compile lowers the
// stack into a Graph of primitive render passes with a fixed composition
// rule: effect passes in stack order first, the base fill last. The same
// graph either executes directly against a render.Canvas (CPU path) or is
// encoded into flat tag/parameter arrays for one-call submission to the
// native GPU context (backend/gpu).
package effect
