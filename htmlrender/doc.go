// Package htmlrender is a renderer.NodeOps implementation that
// serializes a tree to an HTML string. It keeps a mutable internal
// tree (so signal-bound props and text can be updated in place after
// creation, the way a live DOM renderer would) and renders that tree
// to its final string form through maragu.dev/gomponents, the
// teacher's SSR dependency.
package htmlrender
