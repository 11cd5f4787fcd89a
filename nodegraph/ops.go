package nodegraph

import (
	"fmt"

	"github.com/corewireui/retcore/renderer"
)

// Ops implements renderer.NodeOps, renderer.FragmentChecker and
// renderer.Serializer over the in-memory *Node tree.
type Ops struct{}

// New returns a fresh nodegraph host. Stateless: every *Node it
// produces carries its own tree links, so one Ops value can back any
// number of independent renderer.R instances.
func New() *Ops { return &Ops{} }

var _ renderer.NodeOps = (*Ops)(nil)
var _ renderer.FragmentChecker = (*Ops)(nil)
var _ renderer.Serializer = (*Ops)(nil)

func (o *Ops) IsNode(x any) bool {
	_, ok := x.(*Node)
	return ok
}

func (o *Ops) IsFragment(x any) bool {
	n, ok := x.(*Node)
	return ok && n.Kind == KindFragment
}

func (o *Ops) CreateNode(tag, namespace string) any {
	n := newNode(KindElement, tag)
	n.Namespace = namespace
	return n
}

func (o *Ops) CreateTextNode(v string) any {
	n := newNode(KindText, "")
	n.Text = v
	return n
}

func (o *Ops) CreateAnchor(name string) any {
	return newNode(KindAnchor, name)
}

func (o *Ops) CreateFragment() any {
	return newNode(KindFragment, "")
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

func (o *Ops) RemoveNode(node any) {
	n, ok := node.(*Node)
	if !ok {
		return
	}
	if n.Kind == KindFragment {
		// A fragment's own Children list is never updated when its
		// members get flattened into a real parent on first attach,
		// so it still names every node that was ever grouped under
		// it; detach each in turn instead of trying to detach the
		// (parentless) fragment node itself.
		for _, child := range append([]*Node{}, n.Children...) {
			o.RemoveNode(child)
		}
		return
	}
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
	parsed := renderer.ParseProp(key, nil)
	switch parsed.Kind {
	case renderer.KindEvent:
		handler, ok := val.(func(Event))
		if !ok {
			return
		}
		n.Listeners[parsed.Name] = append(n.Listeners[parsed.Name], handler)
	case renderer.KindAttr, renderer.KindProp, renderer.KindPlain, renderer.KindNamespaced:
		name := parsed.Name
		if parsed.Kind == renderer.KindPlain {
			name = key
		}
		switch v := val.(type) {
		case nil:
			delete(n.Attrs, name)
		case bool:
			if v {
				n.Attrs[name] = ""
			} else {
				delete(n.Attrs, name)
			}
		case string:
			if key == "text:" {
				n.Text = v
				return
			}
			n.Attrs[name] = v
		default:
			n.Attrs[name] = stringify(v)
		}
	case renderer.KindClass:
		enabled, _ := val.(bool)
		n.Classes[parsed.Name] = enabled
	case renderer.KindStyle:
		if val == nil || val == false {
			delete(n.Styles, parsed.Name)
			return
		}
		n.Styles[parsed.Name] = stringify(val)
	case renderer.KindMacro, renderer.KindRef:
		// No host-level macros registered by default; $ref is applied
		// by the component/control-flow layer directly against the
		// node value, not through SetProps.
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
