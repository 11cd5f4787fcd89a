package nodegraph

import (
	"fmt"
	"sort"
	"strings"
)

// Serialize renders node and its descendants to an HTML-ish string, for
// assertions in tests that want a readable snapshot rather than
// traversing *Node by hand.
func (o *Ops) Serialize(node any) string {
	n, ok := node.(*Node)
	if !ok {
		return ""
	}
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n *Node) {
	switch n.Kind {
	case KindText:
		b.WriteString(n.Text)
	case KindAnchor:
		// anchors render nothing
	case KindFragment:
		for _, c := range n.Children {
			writeNode(b, c)
		}
	case KindElement:
		b.WriteByte('<')
		b.WriteString(n.Tag)
		writeAttrs(b, n)
		b.WriteByte('>')
		for _, c := range n.Children {
			writeNode(b, c)
		}
		b.WriteString("</")
		b.WriteString(n.Tag)
		b.WriteByte('>')
	}
}

func writeAttrs(b *strings.Builder, n *Node) {
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := n.Attrs[k]
		if v == "" {
			fmt.Fprintf(b, " %s", k)
			continue
		}
		fmt.Fprintf(b, " %s=%q", k, v)
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
			fmt.Fprintf(b, " class=%q", strings.Join(classes, " "))
		}
	}

	if len(n.Styles) > 0 {
		props := make([]string, 0, len(n.Styles))
		for k := range n.Styles {
			props = append(props, k)
		}
		sort.Strings(props)
		parts := make([]string, len(props))
		for i, k := range props {
			parts[i] = fmt.Sprintf("%s: %s", k, n.Styles[k])
		}
		fmt.Fprintf(b, " style=%q", strings.Join(parts, "; "))
	}
}
