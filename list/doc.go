// Package list implements the keyed and positional list reconciliation
// primitives: For (identity-tracked, minimal-move reordering) and
// UnKeyed (per-position identity, value updated in place). Both are the
// Go counterpart of the teacher's For/Index helpers in comps/helpers.go,
// rebuilt around renderer.NodeOps instead of direct DOM calls and, for
// For, around a real ordered reconciliation pass rather than the
// teacher's clear-and-reappend approach.
package list
