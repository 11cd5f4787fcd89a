//go:build js && wasm

package domrender

import "syscall/js"

// Kind distinguishes the handful of node shapes domrender produces.
type Kind int

const (
	KindElement Kind = iota
	KindText
	KindAnchor
	KindFragment
)

// Node wraps a live DOM value (empty for a fragment, which exists only
// as Go-side bookkeeping — see Ops.RemoveNode's doc comment for why a
// fragment can never carry a JS value of its own) alongside the parent/
// children links every NodeOps host needs regardless of what it's
// backed by.
type Node struct {
	Kind      Kind
	JS        js.Value
	Namespace string
	Listeners map[string][]*binding
	Parent    *Node
	Children  []*Node
}

type binding struct {
	fn js.Func
}

func newNode(kind Kind) *Node {
	return &Node{Kind: kind, Listeners: map[string][]*binding{}}
}

// IndexOf returns the index of child within n's children, or -1.
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

func (n *Node) removeChild(child *Node) {
	idx := n.IndexOf(child)
	if idx < 0 {
		return
	}
	n.Children = append(n.Children[:idx], n.Children[idx+1:]...)
	child.Parent = nil
	if !child.JS.IsUndefined() && !child.JS.IsNull() {
		child.JS.Call("remove")
	}
}

func (n *Node) insertChildBefore(child, ref *Node) {
	if child.Parent != nil {
		child.Parent.removeChild(child)
	}
	child.Parent = n

	if ref == nil {
		n.Children = append(n.Children, child)
	} else {
		idx := n.IndexOf(ref)
		if idx < 0 {
			n.Children = append(n.Children, child)
		} else {
			n.Children = append(n.Children[:idx], append([]*Node{child}, n.Children[idx:]...)...)
		}
	}

	// A fragment never owns a JS value of its own; its children's JS
	// values were already placed in the real tree (or will be, the next
	// time one of them is itself attached). Only a concrete node's own
	// JS value needs moving here.
	if n.JS.IsUndefined() || n.JS.IsNull() || child.JS.IsUndefined() || child.JS.IsNull() {
		return
	}
	if ref == nil || ref.JS.IsUndefined() || ref.JS.IsNull() {
		n.JS.Call("appendChild", child.JS)
	} else {
		n.JS.Call("insertBefore", child.JS, ref.JS)
	}
}

// releaseListeners frees every js.Func this node registered via
// addEventListener, recursing into a fragment's tracked children.
// Plain Go garbage collection never reclaims a js.Func on its own —
// the wasm bridge keeps a permanent handle to it until Release is
// called — so this has to run explicitly from Ops.RemoveNode rather
// than being left to happen implicitly the way it does for nodegraph's
// pure-Go node values.
func (n *Node) releaseListeners() {
	for name, bindings := range n.Listeners {
		for _, b := range bindings {
			if !n.JS.IsUndefined() && !n.JS.IsNull() {
				n.JS.Call("removeEventListener", name, b.fn)
			}
			b.fn.Release()
		}
	}
	n.Listeners = map[string][]*binding{}
	for _, c := range n.Children {
		c.releaseListeners()
	}
}
