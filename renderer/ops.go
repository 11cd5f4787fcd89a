package renderer

// NodeOps is the contract any host must provide: live DOM, an HTML
// string builder, or an in-memory node graph. The core never inspects
// a host node beyond what this vtable exposes.
type NodeOps interface {
	// IsNode reports whether x is a node this host produced.
	IsNode(x any) bool
	// CreateNode creates an element by tag, in the given namespace URI
	// (empty for the host's default namespace).
	CreateNode(tag, namespace string) any
	// CreateTextNode creates a text node. v is the initial value; the
	// caller is responsible for updating it later via SetProps or a
	// host-specific text-update path when bound to a signal.
	CreateTextNode(v string) any
	// CreateAnchor creates an empty placeholder node, used to mark a
	// position in the tree that currently renders nothing (an absent
	// If branch, an empty For list).
	CreateAnchor(name string) any
	// CreateFragment creates a group of siblings anchored by a marker,
	// movable and removable as a unit.
	CreateFragment() any
	// AppendNode appends nodes as children of parent, in order.
	AppendNode(parent any, nodes ...any)
	// InsertBefore inserts node immediately before ref in ref's parent.
	// If ref is nil, node is appended to whatever the host considers
	// the relevant container (used when mounting the render root).
	InsertBefore(node, ref any)
	// RemoveNode detaches node from its parent. Removing a fragment
	// detaches every node currently grouped under it.
	RemoveNode(node any)
	// SetProps applies the given props to node per the prop-naming
	// protocol (see props.go).
	SetProps(node any, props map[string]any)
}

// FragmentChecker is implemented by hosts that can distinguish a
// fragment node from an element node by inspecting it. Optional: a host
// that never needs to tell the two apart from an opaque node value
// (because it tags fragments at creation and normalizeChildren never
// needs to ask) can omit it.
type FragmentChecker interface {
	IsFragment(x any) bool
}

// NodeSwapper is implemented by hosts that can swap two nodes' host
// positions without a remove+insert round trip (spec §6, optional
// "swapNodes").
type NodeSwapper interface {
	SwapNodes(a, b any)
}

// Serializer is implemented by hosts that can render a node back to a
// wire format (htmlrender's string serialization).
type Serializer interface {
	Serialize(node any) string
}

// MacroHost is implemented by hosts that support renderer-registered
// macros for the "m:<name>" prop protocol entry.
type MacroHost interface {
	UseMacro(name string, node any, value any) bool
}

func isFragment(ops NodeOps, x any) bool {
	if fc, ok := ops.(FragmentChecker); ok {
		return fc.IsFragment(x)
	}
	return false
}
