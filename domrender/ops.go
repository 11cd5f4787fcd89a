//go:build js && wasm

package domrender

import (
	"fmt"
	"syscall/js"

	"github.com/corewireui/retcore/renderer"
)

// Ops implements renderer.NodeOps, renderer.FragmentChecker and
// renderer.MacroHost over the live browser DOM.
type Ops struct {
	doc        js.Value
	namespaces map[string]string
	macros     map[string]func(n *Node, value any)
}

// New returns a host bound to the current document. namespaces maps a
// prop-key prefix ("xlink", say) to its URI, the same table passed as
// renderer.Options.Namespaces, so a "<ns>:<name>" prop resolves to a
// real setAttributeNS call instead of being flattened to a plain
// attribute name the way nodegraph and htmlrender do it.
func New(namespaces map[string]string) *Ops {
	o := &Ops{
		doc:        js.Global().Get("document"),
		namespaces: namespaces,
		macros:     map[string]func(n *Node, value any){},
	}
	registerDefaultMacros(o)
	return o
}

var _ renderer.NodeOps = (*Ops)(nil)
var _ renderer.FragmentChecker = (*Ops)(nil)
var _ renderer.MacroHost = (*Ops)(nil)

func (o *Ops) IsNode(x any) bool {
	_, ok := x.(*Node)
	return ok
}

func (o *Ops) IsFragment(x any) bool {
	n, ok := x.(*Node)
	return ok && n.Kind == KindFragment
}

func (o *Ops) CreateNode(tag, namespace string) any {
	n := newNode(KindElement)
	n.Namespace = namespace
	if namespace != "" {
		n.JS = o.doc.Call("createElementNS", namespace, tag)
	} else {
		n.JS = o.doc.Call("createElement", tag)
	}
	return n
}

func (o *Ops) CreateTextNode(v string) any {
	n := newNode(KindText)
	n.JS = o.doc.Call("createTextNode", v)
	return n
}

func (o *Ops) CreateAnchor(name string) any {
	n := newNode(KindAnchor)
	n.JS = o.doc.Call("createComment", name)
	return n
}

func (o *Ops) CreateFragment() any {
	return newNode(KindFragment)
}

func (o *Ops) FragmentChildren(x any) []any {
	n, ok := x.(*Node)
	if !ok {
		return []any{x}
	}
	out := make([]any, len(n.Children))
	for i, c := range n.Children {
		out[i] = c
	}
	return out
}

func (o *Ops) AppendNode(parent any, nodes ...any) {
	p, ok := parent.(*Node)
	if !ok {
		return
	}
	for _, raw := range nodes {
		o.appendOne(p, raw)
	}
}

func (o *Ops) appendOne(p *Node, raw any) {
	n, ok := raw.(*Node)
	if !ok {
		return
	}
	if n.Kind == KindFragment {
		for _, child := range append([]*Node{}, n.Children...) {
			p.insertChildBefore(child, nil)
		}
		return
	}
	p.insertChildBefore(n, nil)
}

func (o *Ops) InsertBefore(node, ref any) {
	n, ok := node.(*Node)
	if !ok {
		return
	}
	var refNode *Node
	if ref != nil {
		refNode, _ = ref.(*Node)
	}
	parent := n.Parent
	if refNode != nil {
		parent = refNode.Parent
	}
	if parent == nil {
		return
	}
	if n.Kind == KindFragment {
		for _, child := range append([]*Node{}, n.Children...) {
			parent.insertChildBefore(child, refNode)
		}
		return
	}
	parent.insertChildBefore(n, refNode)
}

// RemoveNode detaches node from its parent, releasing any event
// listeners it (or, for a fragment, anything grouped under it) holds.
// A fragment's own Children list is never updated when its members get
// flattened into a real parent on first attach (see appendOne/
// InsertBefore), so it still names every node ever grouped under it —
// exactly the invariant nodegraph's RemoveNode relies on, carried over
// here rather than rediscovered independently.
func (o *Ops) RemoveNode(node any) {
	n, ok := node.(*Node)
	if !ok {
		return
	}
	if n.Kind == KindFragment {
		for _, child := range append([]*Node{}, n.Children...) {
			o.RemoveNode(child)
		}
		return
	}
	n.releaseListeners()
	if n.Parent == nil {
		return
	}
	n.Parent.removeChild(n)
}

func (o *Ops) SetProps(node any, props map[string]any) {
	n, ok := node.(*Node)
	if !ok {
		return
	}
	for key, val := range props {
		o.setProp(n, key, val)
	}
}

func (o *Ops) setProp(n *Node, key string, val any) {
	if key == "text:" {
		if s, ok := val.(string); ok {
			n.JS.Set("textContent", s)
		}
		return
	}

	parsed := renderer.ParseProp(key, o.namespaces)
	switch parsed.Kind {
	case renderer.KindEvent:
		handler, ok := val.(func(Event))
		if !ok {
			return
		}
		o.bindEvent(n, parsed.Name, parsed.Options, handler)

	case renderer.KindAttr:
		setAttr(n, parsed.Name, val)

	case renderer.KindProp:
		n.JS.Set(parsed.Name, jsValueOf(val))

	case renderer.KindNamespaced:
		uri := o.namespaces[parsed.Namespace]
		if val == nil {
			n.JS.Call("removeAttributeNS", uri, parsed.Name)
			return
		}
		n.JS.Call("setAttributeNS", uri, parsed.Name, stringify(val))

	case renderer.KindPlain:
		// Spec §6: a dash in the name routes to an attribute; anything
		// else is set as a live DOM property, matching how the browser
		// itself tells "custom-attr" apart from "className"/"value".
		if containsDash(key) {
			setAttr(n, key, val)
		} else {
			n.JS.Set(key, jsValueOf(val))
		}

	case renderer.KindClass:
		classList := n.JS.Get("classList")
		enabled, _ := val.(bool)
		if enabled {
			classList.Call("add", parsed.Name)
		} else {
			classList.Call("remove", parsed.Name)
		}

	case renderer.KindStyle:
		style := n.JS.Get("style")
		if val == nil || val == false {
			style.Call("removeProperty", parsed.Name)
			return
		}
		style.Call("setProperty", parsed.Name, stringify(val))

	case renderer.KindMacro:
		o.UseMacro(parsed.Name, n, val)

	case renderer.KindRef:
		renderer.ApplyRef(val, n)
	}
}

func setAttr(n *Node, name string, val any) {
	switch v := val.(type) {
	case nil:
		n.JS.Call("removeAttribute", name)
	case bool:
		if v {
			n.JS.Call("setAttribute", name, "")
		} else {
			n.JS.Call("removeAttribute", name)
		}
	default:
		n.JS.Call("setAttribute", name, stringify(val))
	}
}

func containsDash(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			return true
		}
	}
	return false
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// jsValueOf converts a Go value bound as a plain DOM property into the
// js.Value js.Value.Set expects, falling back to a string for anything
// syscall/js can't wrap natively.
func jsValueOf(v any) any {
	switch v.(type) {
	case nil, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64, string,
		js.Value, js.Wrapper:
		return v
	default:
		return stringify(v)
	}
}
