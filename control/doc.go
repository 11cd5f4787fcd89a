// Package control implements the reactive branch/subtree primitives:
// If (exclusive branch swap, spec §4.4) and Fn (dynamic subtree with an
// error boundary and identity-stable remount avoidance, spec §4.5).
// Both are grounded on the anchor-plus-watch pattern already used by
// renderer.R's "signal tag" dispatch, generalized from the teacher's
// Show/Switch/Dynamic registry-and-reconcile helpers in comps/helpers.go.
package control
