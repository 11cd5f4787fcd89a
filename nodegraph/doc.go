// Package nodegraph is a pure-Go, in-memory renderer.NodeOps
// implementation: every "node" is a *Node holding a tag, attributes,
// text, and a child list. It carries no build tags and is the default
// host for this module's own test suite, standing in for a live DOM or
// an HTML string when a test only needs to assert tree shape.
package nodegraph
