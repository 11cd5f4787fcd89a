// Package component implements the component runtime: instance
// creation, disposal-scope-backed lifecycle, the $ref protocol,
// expose(), and context propagation. It is the Go counterpart of the
// teacher's comps package, generalized from Mount/ComponentFactory's
// registry-keyed model to the renderer-driven model the spec requires.
package component
