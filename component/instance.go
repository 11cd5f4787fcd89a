package component

import (
	"github.com/corewireui/retcore/reactivity"
	"github.com/corewireui/retcore/renderer"
)

// Template is a component's setup function: it receives its props (the
// same map[string]any shape an element's props take, so the same
// "$ref"/"expose" keys work uniformly across elements and components)
// and its children, and returns either a func(*renderer.R) any render
// function or a primitive/node value, per spec §4.2/§4.3.
type Template func(props map[string]any, children ...any) any

// Instance is a component instance: its template, resolved props, its
// disposal scope, its setup-time output, the host node it eventually
// produces, and the context entries it owns (as opposed to inherited).
type Instance struct {
	Template   Template
	Props      map[string]any
	Scope      *reactivity.Scope
	Output     any
	Node       any
	ExposedAPI any

	parent  *Instance
	context map[contextKeyType]any
}

// currentSelf is the instance currently setting up or materializing its
// output, swapped in and out around CreateComponent's call to tmpl and
// r.EnsureElement, mirroring reactivity's currentScope/currentEffect
// pattern. It stays active across both steps (not just tmpl's own
// call) so that a component instantiated lazily inside a parent's
// render function — the common case, since most templates return a
// func(*renderer.R) any — still links to that parent for context
// lookups and ownership.
var currentSelf *Instance

// GetCurrentSelf returns the instance currently setting up, or nil
// outside of any component's setup phase. Used by primitives like
// Portal and Expose.
func GetCurrentSelf() *Instance { return currentSelf }

// CreateComponent constructs an instance: allocates a scope as a child
// of the caller's scope, sets the current self to the instance for the
// duration of setup and node materialization, runs
// tmpl(props, children...), resolves the result to a host node via r,
// and returns the instance with Output and Node populated. Disposing
// the returned instance's Scope disposes every descendant it
// accumulated, per the ownership summary in spec §3.
func CreateComponent(r *renderer.R, tmpl Template, props map[string]any, children ...any) *Instance {
	if props == nil {
		props = map[string]any{}
	}
	scope := reactivity.NewScope(reactivity.CurrentScope())
	inst := &Instance{
		Template: tmpl,
		Props:    props,
		Scope:    scope,
		parent:   currentSelf,
	}

	prevSelf := currentSelf
	currentSelf = inst
	reactivity.RunInScope(scope, func() {
		inst.Output = tmpl(props, children...)
		inst.Node = r.EnsureElement(inst.Output)
	})
	currentSelf = prevSelf

	return inst
}

// OnDispose registers fn on the current scope, per spec §4.2. Distinct
// from reactivity.OnCleanup, which, called directly in a watcher body,
// registers on that watcher (running before each rerun) rather than on
// a component's lifetime.
func OnDispose(fn func()) {
	reactivity.CurrentScope().OnDispose(fn)
}

// Dispose tears down inst's scope. Idempotent.
func Dispose(inst *Instance) {
	if inst == nil {
		return
	}
	inst.Scope.Dispose()
}

// Expose publishes api to the enclosing parent via the "expose" prop
// callback, if the instance currently setting up received one, and
// records it on the instance for Render's/componentDispatch's caller
// to read back. Used by For to publish getItem/remove/clear and by
// Cached to publish its weak cache.
func Expose(api any) {
	self := currentSelf
	if self == nil {
		return
	}
	self.ExposedAPI = api
	if cb, ok := self.Props["expose"].(func(any)); ok {
		cb(api)
	}
}
