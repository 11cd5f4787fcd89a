//go:build js && wasm

package domrender

// UseMacro implements renderer.MacroHost for the "m:<name>" prop
// protocol entry (spec §6). A handful of common directives ship
// registered by default (grounded on the small, Alpine/Vue-style
// directive set the teacher's widgets hand-roll inline); a host
// embedder can register more with RegisterMacro before any rendering
// happens.
func (o *Ops) UseMacro(name string, node any, value any) bool {
	n, ok := node.(*Node)
	if !ok {
		return false
	}
	fn, ok := o.macros[name]
	if !ok {
		return false
	}
	fn(n, value)
	return true
}

// RegisterMacro installs (or replaces) the handler for "m:<name>".
func (o *Ops) RegisterMacro(name string, fn func(n *Node, value any)) {
	o.macros[name] = fn
}

func registerDefaultMacros(o *Ops) {
	// m:show toggles display without tearing the element out of the
	// tree, for content that's cheap to keep mounted but expensive to
	// remount on every flip (the DOM-specific middle ground between
	// always rendering and control.If's full unmount).
	o.RegisterMacro("show", func(n *Node, value any) {
		visible, _ := value.(bool)
		style := n.JS.Get("style")
		if visible {
			style.Call("removeProperty", "display")
		} else {
			style.Set("display", "none")
		}
	})

	// m:focus calls element.focus() the next time value is true.
	o.RegisterMacro("focus", func(n *Node, value any) {
		if focus, _ := value.(bool); focus {
			n.JS.Call("focus")
		}
	})
}
