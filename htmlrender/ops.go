package htmlrender

import (
	"fmt"

	"github.com/corewireui/retcore/renderer"
)

// Ops implements renderer.NodeOps, renderer.FragmentChecker and
// renderer.Serializer for HTML string output.
type Ops struct {
	selfClosing map[string]bool
}

// New returns a host configured with the given self-closing (void) tag
// set, matching spec §6's createHTMLRenderer({selfClosingTags}).
// Callers normally source this from renderer.Options.SelfClosingTags.
func New(selfClosingTags map[string]bool) *Ops {
	if selfClosingTags == nil {
		selfClosingTags = DefaultSelfClosingTags()
	}
	return &Ops{selfClosing: selfClosingTags}
}

// DefaultSelfClosingTags returns the standard HTML void element set.
func DefaultSelfClosingTags() map[string]bool {
	tags := []string{
		"area", "base", "br", "col", "embed", "hr", "img", "input",
		"link", "meta", "param", "source", "track", "wbr",
	}
	out := make(map[string]bool, len(tags))
	for _, t := range tags {
		out[t] = true
	}
	return out
}

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
	n.SelfClose = o.selfClosing[tag]
	return n
}

func (o *Ops) CreateTextNode(v string) any {
	n := newNode(KindText, "")
	n.Text = v
	return n
}

// RawHTML wraps html so Serialize emits it verbatim, the Go substitute
// for the spec's `` rawHTML`...` `` tagged-template helper. The caller
// is responsible for ensuring html is trusted.
func RawHTML(html string) any {
	n := newNode(KindRaw, "")
	n.Text = html
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
	if !ok || n.Parent == nil {
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
			n.Text = s
		}
		return
	}

	parsed := renderer.ParseProp(key, nil)
	switch parsed.Kind {
	case renderer.KindEvent:
		// Event props are no-ops in the HTML renderer, per spec §6.
	case renderer.KindAttr, renderer.KindProp, renderer.KindPlain, renderer.KindNamespaced:
		name := parsed.Name
		if parsed.Kind == renderer.KindPlain {
			name = key
		}
		switch v := val.(type) {
		case nil:
			delete(n.Attrs, name)
			delete(n.BoolAttrs, name)
		case bool:
			if v {
				n.BoolAttrs[name] = true
			} else {
				delete(n.BoolAttrs, name)
			}
		case string:
			n.Attrs[name] = v
		default:
			n.Attrs[name] = fmt.Sprint(v)
		}
	case renderer.KindClass:
		enabled, _ := val.(bool)
		n.Classes[parsed.Name] = enabled
	case renderer.KindStyle:
		if val == nil || val == false {
			delete(n.Styles, parsed.Name)
			return
		}
		n.Styles[parsed.Name] = fmt.Sprint(val)
	case renderer.KindMacro, renderer.KindRef:
		// No macros registered for static HTML output; $ref targets a
		// host node that never exists once serialized.
	}
}
