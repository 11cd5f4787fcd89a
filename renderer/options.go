package renderer

import "strings"

// Options configures a renderer instance. Built explicitly and passed to
// CreateRenderer rather than read from package-level state, matching
// the teacher's explicit-constructor style (bridge.Manager,
// appmanager's registries) everywhere except the reactivity scheduler,
// which is process-global by necessity.
type Options struct {
	// RendererID distinguishes renderer instances in diagnostics and in
	// data attributes a host renderer may stamp onto nodes it creates.
	RendererID string

	// Namespaces maps a namespace prefix (as used in "<ns>:<tag>" or
	// "<ns>:<name>" prop keys) to its URI, e.g. "svg" ->
	// "http://www.w3.org/2000/svg".
	Namespaces map[string]string

	// TagNamespaceMap maps a bare tag name to the namespace it should be
	// created in even without an explicit "<ns>:" prefix, e.g.
	// "circle" -> "svg".
	TagNamespaceMap map[string]string

	// TagAliases remaps a tag name before it reaches NodeOps.CreateNode,
	// e.g. collapsing a deprecated tag onto its replacement.
	TagAliases map[string]string

	// SelfClosingTags lists tags a host renderer should serialize with
	// no closing tag (used by htmlrender's void-tag handling).
	SelfClosingTags map[string]bool
}

func mergeOptions(opts []Options) Options {
	if len(opts) == 0 {
		return Options{}
	}
	o := opts[0]
	if o.Namespaces == nil {
		o.Namespaces = map[string]string{}
	}
	if o.TagNamespaceMap == nil {
		o.TagNamespaceMap = map[string]string{}
	}
	if o.TagAliases == nil {
		o.TagAliases = map[string]string{}
	}
	if o.SelfClosingTags == nil {
		o.SelfClosingTags = map[string]bool{}
	}
	return o
}

func (o Options) resolveTag(tag string) (name string, namespace string) {
	name = tag
	if alias, ok := o.TagAliases[tag]; ok {
		name = alias
	}
	if idx := strings.IndexByte(name, ':'); idx >= 0 {
		prefix, rest := name[:idx], name[idx+1:]
		if uri, ok := o.Namespaces[prefix]; ok {
			return rest, uri
		}
	}
	if ns, ok := o.TagNamespaceMap[name]; ok {
		if uri, ok := o.Namespaces[ns]; ok {
			return name, uri
		}
	}
	return name, ""
}
