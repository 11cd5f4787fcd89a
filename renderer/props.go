package renderer

import "strings"

// PropKind classifies a prop key per the prop-naming protocol (spec §6).
type PropKind int

const (
	// KindPlain is a bare name with no recognized prefix; hosts decide
	// attribute-vs-property routing themselves (domrender routes names
	// containing '-' to attributes by default).
	KindPlain PropKind = iota
	KindEvent
	KindAttr
	KindProp
	KindNamespaced
	KindClass
	KindStyle
	KindMacro
	KindRef
)

// ParsedProp is the decomposed form of a prop key.
type ParsedProp struct {
	Kind      PropKind
	Name      string // event name, attribute name, class name, style property, macro name, or namespace-local name
	Namespace string // set only for KindNamespaced
	Options   []string // event option flags parsed from "on:<event>--<opts>"
}

// RefPropKey is the well-known prop name for the ref protocol.
const RefPropKey = "$ref"

// ParseProp classifies key per the protocol. namespaces lists the
// configured namespace prefixes (from Options.Namespaces) so a
// "<ns>:<name>" prop can be told apart from an unrecognized prefix,
// which falls back to KindPlain.
func ParseProp(key string, namespaces map[string]string) ParsedProp {
	if key == RefPropKey {
		return ParsedProp{Kind: KindRef, Name: key}
	}

	if rest, ok := cutPrefix(key, "on:"); ok {
		name, opts := splitEventOptions(rest)
		return ParsedProp{Kind: KindEvent, Name: name, Options: opts}
	}
	if rest, ok := cutPrefix(key, "attr:"); ok {
		return ParsedProp{Kind: KindAttr, Name: rest}
	}
	if rest, ok := cutPrefix(key, "prop:"); ok {
		return ParsedProp{Kind: KindProp, Name: rest}
	}
	if rest, ok := cutPrefix(key, "class:"); ok {
		return ParsedProp{Kind: KindClass, Name: rest}
	}
	if rest, ok := cutPrefix(key, "style:"); ok {
		return ParsedProp{Kind: KindStyle, Name: rest}
	}
	if rest, ok := cutPrefix(key, "m:"); ok {
		return ParsedProp{Kind: KindMacro, Name: rest}
	}

	if idx := strings.IndexByte(key, ':'); idx > 0 {
		prefix, rest := key[:idx], key[idx+1:]
		if _, ok := namespaces[prefix]; ok {
			return ParsedProp{Kind: KindNamespaced, Namespace: prefix, Name: rest}
		}
	}

	return ParsedProp{Kind: KindPlain, Name: key}
}

func cutPrefix(s, prefix string) (string, bool) {
	if strings.HasPrefix(s, prefix) {
		return s[len(prefix):], true
	}
	return "", false
}

// splitEventOptions splits "click--once--passive" into ("click",
// ["once", "passive"]).
func splitEventOptions(s string) (name string, opts []string) {
	parts := strings.Split(s, "--")
	return parts[0], parts[1:]
}

// ApplyRef runs the $ref protocol: if v is a reactivity.Signal-shaped
// setter, it's set to node; if it's a function, it's called with node.
// Renderer-agnostic so both the element and component paths share it.
func ApplyRef(v any, node any) {
	switch ref := v.(type) {
	case func(any):
		ref(node)
	case interface{ Set(any) }:
		ref.Set(node)
	}
}
