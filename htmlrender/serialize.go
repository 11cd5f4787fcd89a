package htmlrender

import (
	"sort"
	"strings"

	g "maragu.dev/gomponents"
)

// Serialize deep-flattens node (and its descendants) to an HTML string,
// per spec §6's `serialize(node)`. Escaping and attribute/text
// rendering are delegated to gomponents so this package never
// hand-rolls HTML escaping.
func (o *Ops) Serialize(node any) string {
	n, ok := node.(*Node)
	if !ok {
		return ""
	}
	var b strings.Builder
	_ = toGomponents(n).Render(&b)
	return b.String()
}

func toGomponents(n *Node) g.Node {
	switch n.Kind {
	case KindText:
		return g.Text(n.Text)
	case KindRaw:
		return g.Raw(n.Text)
	case KindAnchor:
		return g.Group(nil)
	case KindFragment:
		return g.Group(childNodes(n))
	case KindElement:
		parts := append([]g.Node{}, elementAttrs(n)...)
		if !n.SelfClose {
			parts = append(parts, childNodes(n)...)
		}
		return g.El(n.Tag, parts...)
	default:
		return g.Group(nil)
	}
}

func childNodes(n *Node) []g.Node {
	out := make([]g.Node, len(n.Children))
	for i, c := range n.Children {
		out[i] = toGomponents(c)
	}
	return out
}

func elementAttrs(n *Node) []g.Node {
	var attrs []g.Node

	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, g.Attr(k, n.Attrs[k]))
	}

	boolKeys := make([]string, 0, len(n.BoolAttrs))
	for k := range n.BoolAttrs {
		boolKeys = append(boolKeys, k)
	}
	sort.Strings(boolKeys)
	for _, k := range boolKeys {
		attrs = append(attrs, g.Attr(k))
	}

	if len(n.Classes) > 0 {
		var classes []string
		for c, on := range n.Classes {
			if on {
				classes = append(classes, c)
			}
		}
		sort.Strings(classes)
		if len(classes) > 0 {
			attrs = append([]g.Node{g.Attr("class", strings.Join(classes, " "))}, attrs...)
		}
	}

	if len(n.Styles) > 0 {
		props := make([]string, 0, len(n.Styles))
		for k := range n.Styles {
			props = append(props, k)
		}
		sort.Strings(props)
		decls := make([]string, len(props))
		for i, k := range props {
			decls[i] = k + ": " + n.Styles[k]
		}
		attrs = append(attrs, g.Attr("style", strings.Join(decls, "; ")))
	}

	return attrs
}
